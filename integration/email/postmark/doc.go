// Package postmark provides Postmark email service integration for the
// transactional emails this service sends.
//
// It implements the core email.EmailSender interface using Postmark's API and
// returns the Postmark-assigned MessageID on every accepted send, so the HTTP
// layer can include it in its response payload.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
//		PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
//		SenderName           string `env:"SENDER_NAME"`
//		SenderEmail          string `env:"SENDER_EMAIL,required"`
//		SupportEmail         string `env:"SUPPORT_EMAIL,required"`
//	}
//
// The tokens are optional at the struct level to support environments where
// email sending is disabled, but New rejects a config without them: the
// application wiring falls back to a local sender in that case instead of
// starting with a half-configured Postmark client.
//
// # Usage Example
//
//	cfg := postmark.Config{
//		PostmarkServerToken:  "your-server-token",
//		PostmarkAccountToken: "your-account-token",
//		SenderName:           "Community Welcome",
//		SenderEmail:          "welcome@example.com",
//		SupportEmail:         "support@example.com",
//	}
//
//	sender, err := postmark.New(cfg)
//	if err != nil {
//		log.Fatal("Failed to create email client:", err)
//	}
//
//	result, err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Welcome to the Community!",
//		BodyHTML: "<h1>Welcome!</h1>",
//		Tag:      "welcome_email",
//	})
//	if err != nil {
//		log.Printf("Failed to send email: %v", err)
//	} else {
//		log.Printf("Email accepted, id=%s", result.MessageID)
//	}
//
// # Tracking
//
// Every send enables open tracking and HTML-only link tracking, and sets
// Reply-To to the configured support address so replies reach a monitored
// mailbox rather than the sending identity.
//
// # Error Handling
//
// Configuration failures wrap email.ErrInvalidConfig; transport and API-level
// failures wrap email.ErrFailedToSendEmail with the Postmark error code and
// message preserved, so callers can branch with errors.Is while logging the
// provider detail.
package postmark
