// Package response provides the JSON response utilities this service's HTTP
// handlers share: direct-to-writer encoding with proper headers and status
// codes, and the single error payload shape the API exposes.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/greetmail/core/response"
//
//	// JSON response with 200 OK
//	_ = response.JSON(w, map[string]any{
//		"success": true,
//	})
//
//	// JSON with custom status code
//	_ = response.JSONWithStatus(w, payload, http.StatusCreated)
//
//	// Error payload, always {"error": "<message>"}
//	_ = response.JSONError(w, http.StatusBadRequest, "Invalid JSON input")
//
// Encoding streams straight to the ResponseWriter; the returned error only
// fires when the client connection breaks mid-write, so callers typically
// discard it.
//
// Statuses 204 and 304 are written without a body per the HTTP spec.
package response
