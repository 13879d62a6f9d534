// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers a small factory for environment-specific configurations and a set of
// pre-built, nil-safe attribute helpers for common logging scenarios.
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/dmitrymomot/greetmail/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("greetmail"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("greetmail"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("Server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, so they can be used
// without guarding call sites:
//
//	log.Error("Send failed",
//		logger.Error(err),
//		logger.Component("mailer"),
//	)
//
//	log.Info("Request processed",
//		logger.Method("POST"),
//		logger.Path("/welcome"),
//		logger.StatusCode(200),
//		logger.Latency(time.Since(start)),
//	)
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
//
// # Global Logger Setup
//
// Install a logger as the process-wide slog default:
//
//	logger.SetAsDefault(logger.New(logger.WithProduction("greetmail")))
//	slog.Info("Using global logger", logger.Component("global"))
package logger
