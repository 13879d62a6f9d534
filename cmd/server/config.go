package main

import (
	"github.com/dmitrymomot/greetmail/core/server"
)

type appConfig struct {
	AppName string `env:"APP_NAME" envDefault:"greetmail"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	Server     server.Config
	Copywriter copywriterConfig
	Mailer     mailerConfig
}

// copywriterConfig selects the text-generation provider. With provider "none"
// or a missing credential the service still runs and uses fallback copy.
type copywriterConfig struct {
	Provider     string `env:"COPYWRITER_PROVIDER" envDefault:"none"` // openai, google or none
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`
}

// mailerConfig selects the email transport. Provider-specific settings load
// from their own env configs at wiring time.
type mailerConfig struct {
	Provider string `env:"MAILER_PROVIDER" envDefault:"dev"` // postmark, smtp or dev
	DevDir   string `env:"MAILER_DEV_DIR" envDefault:"./tmp/emails"`
}
