package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig defines configuration options for the CORS middleware.
//
// Unlike negotiating CORS implementations, this middleware emits a fixed
// header set on every response. Browser clients of the form endpoint send
// their submissions from arbitrary origins, so the policy is static.
type CORSConfig struct {
	// Skip allows bypassing CORS handling for specific requests
	Skip func(r *http.Request) bool

	// AllowOrigin is the value of Access-Control-Allow-Origin.
	// Defaults to "*".
	AllowOrigin string

	// AllowHeaders lists the request headers permitted in cross-origin calls.
	// Defaults to the headers browser form clients send alongside submissions.
	AllowHeaders []string

	// AllowMethods lists permitted methods. When set, the
	// Access-Control-Allow-Methods header is emitted on preflight responses.
	AllowMethods []string

	// MaxAge specifies how long preflight responses can be cached (in seconds)
	MaxAge int
}

// CORS returns a CORS middleware with default configuration: any origin,
// and the authorization, x-client-info, apikey and content-type headers.
//
// Every response passing through the middleware carries the CORS headers,
// including error responses produced further down the chain. Any OPTIONS
// request is answered immediately with 204 and an empty body, without
// reaching the wrapped handler.
func CORS() func(http.Handler) http.Handler {
	return CORSWithConfig(CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration.
func CORSWithConfig(cfg CORSConfig) func(http.Handler) http.Handler {
	if cfg.AllowOrigin == "" {
		cfg.AllowOrigin = "*"
	}

	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"authorization",
			"x-client-info",
			"apikey",
			"content-type",
		}
	}

	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	allowMethods := strings.Join(cfg.AllowMethods, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			// Headers are set before the handler runs so that error
			// responses written downstream carry them too.
			headers := w.Header()
			headers.Set("Access-Control-Allow-Origin", cfg.AllowOrigin)
			headers.Set("Access-Control-Allow-Headers", allowHeaders)

			if r.Method == http.MethodOptions {
				if allowMethods != "" {
					headers.Set("Access-Control-Allow-Methods", allowMethods)
				}
				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
