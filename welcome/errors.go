package welcome

import "errors"

var (
	// ErrInvalidSubmission indicates a submission with a missing required field.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrComposeFailed indicates the welcome email could not be rendered.
	ErrComposeFailed = errors.New("failed to compose welcome email")
)
