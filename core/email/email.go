package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender abstracts a transactional email provider.
// Implementations must validate params before contacting the provider
// and report the provider-assigned message identifier on success.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) (SendResult, error)
}

// SendEmailParams defines the email content and metadata.
type SendEmailParams struct {
	SendTo   string // Recipient email address (required)
	Subject  string // Email subject line (required)
	BodyHTML string // HTML email body (required)
	Tag      string // Optional tag for analytics and tracking
}

// SendResult reports an accepted send.
type SendResult struct {
	// MessageID is the identifier the provider assigned to the accepted
	// message. Empty when the provider reports none.
	MessageID string
}

// emailRegex covers the practical address shape; exhaustive RFC 5322
// validation is left to the provider.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks that the params carry everything a provider needs.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: recipient email is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: invalid recipient email format", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: HTML body is required", ErrInvalidParams)
	}
	return nil
}
