package middleware

import (
	"net/http"
	"strconv"

	"github.com/dmitrymomot/greetmail/core/response"
)

// Common size constants for convenience
const (
	// KB represents 1 kilobyte
	KB int64 = 1024
	// MB represents 1 megabyte
	MB = 1024 * KB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// MaxSize is the maximum allowed body size in bytes (default: 1MB)
	MaxSize int64

	// ErrorHandler handles requests whose declared Content-Length exceeds
	// the limit. Defaults to a 413 JSON error response.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, contentLength, maxSize int64)
}

// BodyLimit creates a body limit middleware with the default 1MB limit.
// It prevents processing of requests with excessively large bodies.
func BodyLimit() func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize(maxSize int64) func(http.Handler) http.Handler {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig creates a body limit middleware with custom configuration.
// Requests declaring an oversized Content-Length are rejected up front; bodies
// without a declared length are bounded during reading via http.MaxBytesReader,
// which surfaces as a read error in the handler.
func BodyLimitWithConfig(cfg BodyLimitConfig) func(http.Handler) http.Handler {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 1 * MB
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, contentLength, maxSize int64) {
			_ = response.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			if contentLengthStr := r.Header.Get("Content-Length"); contentLengthStr != "" {
				contentLength, err := strconv.ParseInt(contentLengthStr, 10, 64)
				if err == nil && contentLength > cfg.MaxSize {
					cfg.ErrorHandler(w, r, contentLength, cfg.MaxSize)
					return
				}
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxSize)
			}

			next.ServeHTTP(w, r)
		})
	}
}
