package welcome

import "fmt"

// Submission is the lead-capture form payload.
// It exists for a single request/response cycle and is never persisted.
type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Industry string `json:"industry"`
}

// Validate checks that all required fields are present. Presence is the whole
// contract here; email format problems surface later at the sending boundary.
func (s Submission) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	}
	if s.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidSubmission)
	}
	if s.Industry == "" {
		return fmt.Errorf("%w: industry is required", ErrInvalidSubmission)
	}
	return nil
}
