package email

import (
	"context"
	"errors"
)

// DisabledSender implements EmailSender when no provider could be configured,
// typically because a credential is missing. The process still starts and
// serves traffic; every send fails with the configuration error, so the
// misconfiguration surfaces on the first send attempt with full context.
type DisabledSender struct {
	err error
}

// NewDisabledSender creates a sender that fails every send with the given
// configuration error. A nil err falls back to ErrInvalidConfig.
func NewDisabledSender(err error) EmailSender {
	if err == nil {
		err = ErrInvalidConfig
	}
	return &DisabledSender{err: err}
}

// SendEmail always fails with the configuration error captured at construction.
func (d *DisabledSender) SendEmail(ctx context.Context, params SendEmailParams) (SendResult, error) {
	return SendResult{}, errors.Join(ErrFailedToSendEmail, d.err)
}
