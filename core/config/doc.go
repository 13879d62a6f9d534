// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/greetmail/core/config"
//
//	type MailerConfig struct {
//		Provider    string `env:"MAILER_PROVIDER" envDefault:"dev"`
//		ServerToken string `env:"POSTMARK_SERVER_TOKEN"`
//		SenderEmail string `env:"SENDER_EMAIL,required"`
//	}
//
//	func main() {
//		var cfg MailerConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 MailerConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 MailerConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so server, mailer, and copywriter
// configurations each resolve their own variables exactly once.
package config
