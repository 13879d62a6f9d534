package healthcheck

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/greetmail/core/logger"
)

// Handler creates a health check handler that can serve as both a liveness
// and readiness probe depending on the provided dependency functions.
//
// When no dependency functions are provided, it acts as a liveness probe and
// returns "ALIVE" to indicate the service is running.
//
// When dependency functions are provided, it acts as a readiness probe and
// executes each function in sequence. If all succeed, it returns "READY".
// If any function fails, it logs the error and returns 503 Service Unavailable.
//
// Example:
//
//	// Liveness probe - no dependencies
//	r.Get("/health", healthcheck.Handler(log))
//
//	// Readiness probe - with a mailer connectivity check
//	r.Get("/health/ready", healthcheck.Handler(log, mailer.Ping))
func Handler(log *slog.Logger, fn ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// Liveness probe: no dependency functions supplied.
		if len(fn) == 0 {
			w.WriteHeader(http.StatusOK)
			io.WriteString(w, "ALIVE")
			return
		}

		// Readiness probe: verify all dependency functions succeed.
		for _, f := range fn {
			if err := f(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed", logger.Error(err))
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "READY")
	}
}
