package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as an application/json response with 200 OK status.
// JSON encoding is performed directly to the response writer for optimal memory usage.
func JSON(w http.ResponseWriter, v any) error {
	return JSONWithStatus(w, v, http.StatusOK)
}

// JSONWithStatus writes v as an application/json response with a custom status code.
// JSON encoding is performed directly to the response writer for optimal memory usage.
func JSONWithStatus(w http.ResponseWriter, v any, status int) error {
	w.Header().Set("Content-Type", "application/json")

	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	w.WriteHeader(status)

	// No body for statuses that must not carry one per HTTP spec.
	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	return json.NewEncoder(w).Encode(v)
}
