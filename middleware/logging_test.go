package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greetmail/middleware"
)

// decodeLogLine decodes the single JSON log record written to buf.
func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs completed request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("hello"))
		}))

		req := httptest.NewRequest(http.MethodPost, "/welcome", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		record := decodeLogLine(t, &buf)
		assert.Equal(t, "HTTP request completed", record["msg"])
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "POST", record["method"])
		assert.Equal(t, "/welcome", record["path"])
		assert.Equal(t, float64(http.StatusOK), record["status_code"])
		assert.Equal(t, float64(5), record["bytes_out"])
		assert.Equal(t, "http", record["component"])
	})

	t.Run("server errors logged at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		req := httptest.NewRequest(http.MethodGet, "/welcome", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		record := decodeLogLine(t, &buf)
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, float64(http.StatusInternalServerError), record["status_code"])
	})

	t.Run("client errors logged at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))

		req := httptest.NewRequest(http.MethodPost, "/welcome", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		record := decodeLogLine(t, &buf)
		assert.Equal(t, "WARN", record["level"])
	})

	t.Run("slow requests flagged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger:               log,
			SlowRequestThreshold: time.Nanosecond,
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/welcome", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		record := decodeLogLine(t, &buf)
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, true, record["slow_request"])
	})

	t.Run("includes request id when present", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		inner := middleware.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		handler := chimiddleware.RequestID(inner)

		req := httptest.NewRequest(http.MethodGet, "/welcome", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		record := decodeLogLine(t, &buf)
		assert.NotEmpty(t, record["request_id"])
	})

	t.Run("skip suppresses logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))

		handler := middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: log,
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Zero(t, buf.Len())
	})
}
