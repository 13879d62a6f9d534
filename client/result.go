package client

// Result is the outcome of one form submission. Values are created only
// through Success and Failure, so submitted-state UI updates can key off
// nothing but a confirmed success payload. There is no settable success
// flag to flip on error paths.
type Result struct {
	ok      bool
	emailID string
	message string
}

// Success returns a successful Result carrying the provider email id,
// which may be empty when the provider reported none.
func Success(emailID string) Result {
	return Result{ok: true, emailID: emailID}
}

// Failure returns a failed Result with the given message.
// An empty message is normalized to "Unknown error".
func Failure(message string) Result {
	if message == "" {
		message = "Unknown error"
	}
	return Result{message: message}
}

// OK reports whether the submission succeeded and returns the provider
// email id when present.
func (r Result) OK() (string, bool) {
	return r.emailID, r.ok
}

// ErrorMessage returns the failure message, empty for successful results.
func (r Result) ErrorMessage() string {
	return r.message
}
