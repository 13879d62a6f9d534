package welcome

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/greetmail/core/copywriter"
	"github.com/dmitrymomot/greetmail/core/email"
	"github.com/dmitrymomot/greetmail/core/logger"
)

// Service orchestrates one welcome flow: validate the submission, produce the
// welcome paragraph, compose the HTML email, and send it. Both outbound calls
// happen strictly in sequence and at most once per submission; the paragraph
// step is total, so copy generation failures never prevent the send.
type Service struct {
	copywriter *copywriter.Copywriter
	sender     email.EmailSender
	log        *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used for send diagnostics.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a Service around a copywriter and an email sender.
func NewService(cw *copywriter.Copywriter, sender email.EmailSender, opts ...ServiceOption) *Service {
	s := &Service{
		copywriter: cw,
		sender:     sender,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendWelcome runs the welcome flow for a submission and returns the provider
// send result. Invalid submissions fail with ErrInvalidSubmission before any
// outbound call is made.
func (s *Service) SendWelcome(ctx context.Context, sub Submission) (email.SendResult, error) {
	if err := sub.Validate(); err != nil {
		return email.SendResult{}, err
	}

	paragraph := s.copywriter.WelcomeParagraph(ctx, copywriter.Params{
		Name:     sub.Name,
		Industry: sub.Industry,
	})

	params, err := ComposeWelcomeEmail(sub, paragraph)
	if err != nil {
		return email.SendResult{}, err
	}

	result, err := s.sender.SendEmail(ctx, params)
	if err != nil {
		return email.SendResult{}, err
	}

	s.log.InfoContext(ctx, "Welcome email sent",
		logger.Component("welcome"),
		logger.Event("email_sent"),
		logger.MessageID(result.MessageID),
	)
	return result, nil
}
