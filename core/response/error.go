package response

import "net/http"

// ErrorResponse is the wire shape for every failure payload this service emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONError writes {"error": message} as application/json with the given status.
func JSONError(w http.ResponseWriter, status int, message string) error {
	return JSONWithStatus(w, ErrorResponse{Error: message}, status)
}
