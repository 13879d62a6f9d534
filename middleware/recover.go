package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/greetmail/core/logger"
	"github.com/dmitrymomot/greetmail/core/response"
)

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// ErrorMessage is the message returned to the client after a panic.
	// Defaults to "Unknown error". Panic values are never exposed.
	ErrorMessage string
}

// Recover creates a panic recovery middleware with default configuration.
// Recovered panics are logged with a stack trace and answered with a
// 500 JSON error body. http.ErrAbortHandler is re-raised so that the
// standard library can abort the connection as intended.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return RecoverWithConfig(RecoverConfig{Logger: log})
}

// RecoverWithConfig creates a panic recovery middleware with custom configuration.
func RecoverWithConfig(cfg RecoverConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.ErrorMessage == "" {
		cfg.ErrorMessage = "Unknown error"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if err, ok := rec.(error); ok && err == http.ErrAbortHandler {
					panic(rec)
				}

				cfg.Logger.ErrorContext(r.Context(), "Panic recovered",
					logger.Component("http"),
					logger.Event("panic"),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					slog.String("panic", fmt.Sprintf("%v", rec)),
					logger.Stack(),
				)

				_ = response.JSONError(w, http.StatusInternalServerError, cfg.ErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
