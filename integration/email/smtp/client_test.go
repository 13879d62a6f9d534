package smtp_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greetmail/core/email"
	"github.com/dmitrymomot/greetmail/integration/email/smtp"
)

func TestNewClient_Validation(t *testing.T) {
	t.Parallel()

	validConfig := smtp.Config{
		Host:         "smtp.example.com",
		Port:         587,
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "starttls",
		SenderName:   "Community Welcome",
		SenderEmail:  "welcome@example.com",
		SupportEmail: "support@example.com",
	}

	tests := []struct {
		name    string
		config  smtp.Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  validConfig,
			wantErr: false,
		},
		{
			name: "sender name is optional",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.SenderName = ""
				return cfg
			}(),
			wantErr: false,
		},
		{
			name: "empty host",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Host = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Host is required",
		},
		{
			name: "invalid port - zero",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Port = 0
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Port must be between 1 and 65535",
		},
		{
			name: "invalid port - too high",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Port = 70000
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Port must be between 1 and 65535",
		},
		{
			name: "empty username",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Username = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Username is required",
		},
		{
			name: "empty password",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.Password = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "Password is required",
		},
		{
			name: "invalid TLS mode",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.TLSMode = "ssl"
				return cfg
			}(),
			wantErr: true,
			errMsg:  "TLSMode must be starttls, tls, or plain",
		},
		{
			name: "valid TLS mode - tls",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.TLSMode = "tls"
				return cfg
			}(),
			wantErr: false,
		},
		{
			name: "valid TLS mode - plain",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.TLSMode = "plain"
				return cfg
			}(),
			wantErr: false,
		},
		{
			name: "empty sender email",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.SenderEmail = ""
				return cfg
			}(),
			wantErr: true,
			errMsg:  "SenderEmail must be a valid email address",
		},
		{
			name: "invalid sender email",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.SenderEmail = "not-an-email"
				return cfg
			}(),
			wantErr: true,
			errMsg:  "SenderEmail must be a valid email address",
		},
		{
			name: "invalid support email",
			config: func() smtp.Config {
				cfg := validConfig
				cfg.SupportEmail = "invalid@"
				return cfg
			}(),
			wantErr: true,
			errMsg:  "SupportEmail must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := smtp.New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				assert.ErrorIs(t, err, email.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestMustNewClient(t *testing.T) {
	t.Parallel()

	validConfig := smtp.Config{
		Host:         "smtp.example.com",
		Port:         587,
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "starttls",
		SenderEmail:  "welcome@example.com",
		SupportEmail: "support@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			client := smtp.MustNewClient(validConfig)
			assert.NotNil(t, client)
		})
	})

	t.Run("invalid config panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			smtp.MustNewClient(smtp.Config{})
		})
	})
}

func TestClient_SendEmail_Validation(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(smtp.Config{
		Host:         "smtp.example.com",
		Port:         587,
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "starttls",
		SenderEmail:  "welcome@example.com",
		SupportEmail: "support@example.com",
	})
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name   string
		params email.SendEmailParams
	}{
		{
			name: "empty SendTo",
			params: email.SendEmailParams{
				Subject:  "Test",
				BodyHTML: "<p>Test</p>",
			},
		},
		{
			name: "invalid email",
			params: email.SendEmailParams{
				SendTo:   "invalid-email",
				Subject:  "Test",
				BodyHTML: "<p>Test</p>",
			},
		},
		{
			name: "empty subject",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				BodyHTML: "<p>Test</p>",
			},
		},
		{
			name: "empty body",
			params: email.SendEmailParams{
				SendTo:  "user@example.com",
				Subject: "Test",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := client.SendEmail(ctx, tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Empty(t, result.MessageID)
		})
	}
}

func TestClient_SendEmail_ConnectionError(t *testing.T) {
	t.Parallel()

	// Find an unused port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	client, err := smtp.New(smtp.Config{
		Host:         "127.0.0.1",
		Port:         port, // Use the unused port
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "plain",
		SenderEmail:  "welcome@example.com",
		SupportEmail: "support@example.com",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := client.SendEmail(ctx, email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Test Email",
		BodyHTML: "<p>Test content</p>",
		Tag:      "test",
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.Contains(t, err.Error(), "failed to connect to SMTP server")
	assert.Empty(t, result.MessageID)
}

func TestClient_SendEmail_CancelledContext(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(smtp.Config{
		Host:         "smtp.example.com",
		Port:         587,
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "starttls",
		SenderEmail:  "welcome@example.com",
		SupportEmail: "support@example.com",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.SendEmail(ctx, email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Test Email",
		BodyHTML: "<p>Test content</p>",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
	assert.ErrorIs(t, err, context.Canceled)
}
