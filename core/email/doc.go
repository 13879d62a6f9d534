// Package email provides email sending functionality with support for different
// providers and development mode. It includes parameter validation and a small
// interface design that enables easy testing and provider switching.
//
// # Usage
//
// The package centers around the EmailSender interface, which is implemented
// by the provider integrations and the local development sender:
//
//	import "github.com/dmitrymomot/greetmail/core/email"
//
//	// For development
//	sender := email.NewDevSender("./dev_emails")
//
//	params := email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome to our service",
//		BodyHTML: "<h1>Welcome!</h1><p>Thanks for joining us.</p>",
//		Tag:      "welcome_email",
//	}
//
//	result, err := sender.SendEmail(context.Background(), params)
//	if err != nil {
//		log.Error("Failed to send email", logger.Error(err))
//	}
//	log.Info("Email accepted", logger.MessageID(result.MessageID))
//
// # EmailSender Interface
//
// Implementations validate params, contact the provider, and return the
// provider-assigned message identifier:
//
//	type EmailSender interface {
//		SendEmail(ctx context.Context, params SendEmailParams) (SendResult, error)
//	}
//
// Real providers live under integration/email; this package additionally ships
// two local implementations:
//
//   - DevSender saves emails as HTML and JSON files instead of sending them,
//     keeping the credential-free development loop fully runnable.
//   - DisabledSender stands in when provider construction failed. Every send
//     fails with the original configuration error, so a missing credential
//     surfaces on the first send attempt rather than at startup.
//
// # Parameter Validation
//
// SendEmailParams.Validate is called by every implementation before any
// provider contact. Recipient, subject, and HTML body are required; the
// recipient must look like an email address. Validation failures wrap
// ErrInvalidParams, provider failures wrap ErrFailedToSendEmail, so callers
// can branch with errors.Is.
//
// # Testing
//
// The single-method interface keeps test doubles trivial:
//
//	type stubSender struct {
//		sent []email.SendEmailParams
//	}
//
//	func (s *stubSender) SendEmail(ctx context.Context, params email.SendEmailParams) (email.SendResult, error) {
//		s.sent = append(s.sent, params)
//		return email.SendResult{MessageID: "stub-1"}, nil
//	}
package email
