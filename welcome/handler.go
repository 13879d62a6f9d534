package welcome

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/greetmail/core/logger"
	"github.com/dmitrymomot/greetmail/core/response"
)

// invalidInputMessage is the exact error body browser clients key off for
// validation failures. Both undecodable payloads and missing fields are
// reported the same way.
const invalidInputMessage = "Invalid JSON input"

// submissionAccepted is the success payload. The emailId field is omitted
// when the provider reported no identifier.
type submissionAccepted struct {
	Success bool   `json:"success"`
	EmailID string `json:"emailId,omitempty"`
}

// Handler returns the POST handler for form submissions.
//
// The body is read raw first and logged at debug level, so empty or
// malformed payloads become controlled 400 responses instead of decode
// faults. Send failures map to 500 with the failure message; everything
// else is left to the recovery middleware.
func Handler(svc *Service, log *slog.Logger) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.ErrorContext(r.Context(), "Failed to read request body",
				logger.Component("welcome"),
				logger.Error(err),
			)
			_ = response.JSONError(w, http.StatusInternalServerError, errorMessage(err))
			return
		}

		log.DebugContext(r.Context(), "Received submission",
			logger.Component("welcome"),
			logger.BytesIn(int64(len(body))),
			logger.Key("body", string(body)),
		)

		var sub Submission
		if err := json.Unmarshal(body, &sub); err != nil {
			_ = response.JSONError(w, http.StatusBadRequest, invalidInputMessage)
			return
		}

		result, err := svc.SendWelcome(r.Context(), sub)
		if err != nil {
			if errors.Is(err, ErrInvalidSubmission) {
				_ = response.JSONError(w, http.StatusBadRequest, invalidInputMessage)
				return
			}

			log.ErrorContext(r.Context(), "Welcome flow failed",
				logger.Component("welcome"),
				logger.Error(err),
			)
			_ = response.JSONError(w, http.StatusInternalServerError, errorMessage(err))
			return
		}

		_ = response.JSON(w, submissionAccepted{
			Success: true,
			EmailID: result.MessageID,
		})
	}
}

// errorMessage extracts a client-safe message from an error.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error"
	}
	return err.Error()
}
