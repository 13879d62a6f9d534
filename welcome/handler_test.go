package welcome_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/greetmail/core/copywriter"
	"github.com/dmitrymomot/greetmail/core/email"
	"github.com/dmitrymomot/greetmail/core/healthcheck"
	"github.com/dmitrymomot/greetmail/middleware"
	"github.com/dmitrymomot/greetmail/welcome"
)

// newTestRouter assembles the same stack cmd/server mounts.
func newTestRouter(svc *welcome.Service) http.Handler {
	log := discardLogger()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.CORS())
	r.Use(middleware.BodyLimitWithSize(middleware.MB))
	r.Post("/welcome", welcome.Handler(svc, log))
	r.Get("/health", healthcheck.Handler(log))
	return r
}

func newTestService(provider copywriter.Provider, sender email.EmailSender) *welcome.Service {
	opts := []copywriter.Option{copywriter.WithLogger(discardLogger())}
	if provider != nil {
		opts = append(opts, copywriter.WithProvider(provider))
	}
	return welcome.NewService(
		copywriter.New(opts...),
		sender,
		welcome.WithServiceLogger(discardLogger()),
	)
}

func postSubmission(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/welcome", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandlerValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "garbage body", body: "not json at all"},
		{name: "empty object", body: "{}"},
		{name: "missing name", body: `{"email":"ava@example.com","industry":"fintech"}`},
		{name: "missing email", body: `{"name":"Ava","industry":"fintech"}`},
		{name: "missing industry", body: `{"name":"Ava","email":"ava@example.com"}`},
		{name: "empty name", body: `{"name":"","email":"ava@example.com","industry":"fintech"}`},
		{name: "empty email", body: `{"name":"Ava","email":"","industry":"fintech"}`},
		{name: "empty industry", body: `{"name":"Ava","email":"ava@example.com","industry":""}`},
		{name: "wrong field types", body: `{"name":1,"email":2,"industry":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &stubProvider{text: "hi"}
			sender := &stubSender{}
			handler := newTestRouter(newTestService(provider, sender))

			rec := postSubmission(t, handler, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "{\"error\":\"Invalid JSON input\"}\n", rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Zero(t, provider.calls, "no outbound calls on validation failure")
			assert.Zero(t, sender.calls, "no outbound calls on validation failure")
		})
	}
}

func TestHandlerSuccess(t *testing.T) {
	t.Parallel()

	t.Run("end to end with fallback copy", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{}
		handler := newTestRouter(newTestService(nil, sender))

		rec := postSubmission(t, handler, `{"name":"Ava","email":"ava@example.com","industry":"fintech"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))

		var payload struct {
			Success bool   `json:"success"`
			EmailID string `json:"emailId"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.True(t, payload.Success)
		assert.NotEmpty(t, payload.EmailID)

		require.Equal(t, 1, sender.calls)
		assert.Equal(t, "ava@example.com", sender.last.SendTo)
		assert.Equal(t, "Welcome to the community, Ava!", sender.last.Subject)
		assert.Contains(t, sender.last.BodyHTML, "Ava")
		assert.Contains(t, sender.last.BodyHTML, "fintech")
		assert.Contains(t, sender.last.BodyHTML, "Welcome to our community, Ava!")
	})

	t.Run("provider completion used verbatim", func(t *testing.T) {
		t.Parallel()

		provider := &stubProvider{text: "Personalized greeting for Ava."}
		sender := &stubSender{}
		handler := newTestRouter(newTestService(provider, sender))

		rec := postSubmission(t, handler, `{"name":"Ava","email":"ava@example.com","industry":"fintech"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, provider.calls)
		assert.Contains(t, sender.last.BodyHTML, "Personalized greeting for Ava.")
	})

	t.Run("identical submissions yield distinct email ids", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{}
		handler := newTestRouter(newTestService(nil, sender))
		body := `{"name":"Ava","email":"ava@example.com","industry":"fintech"}`

		first := postSubmission(t, handler, body)
		second := postSubmission(t, handler, body)

		var p1, p2 struct {
			EmailID string `json:"emailId"`
		}
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &p1))
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &p2))
		assert.NotEmpty(t, p1.EmailID)
		assert.NotEmpty(t, p2.EmailID)
		assert.NotEqual(t, p1.EmailID, p2.EmailID)
	})

	t.Run("email id omitted when provider reports none", func(t *testing.T) {
		t.Parallel()

		handler := newTestRouter(newTestService(nil, noIDSender{}))

		rec := postSubmission(t, handler, `{"name":"Ava","email":"ava@example.com","industry":"fintech"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "{\"success\":true}\n", rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "emailId")
	})
}

func TestHandlerSendFailure(t *testing.T) {
	t.Parallel()

	sender := &stubSender{err: errors.Join(email.ErrFailedToSendEmail, errors.New("postmark error: 406 - inactive recipient"))}
	handler := newTestRouter(newTestService(nil, sender))

	rec := postSubmission(t, handler, `{"name":"Ava","email":"ava@example.com","industry":"fintech"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	errMsg, ok := payload["error"].(string)
	require.True(t, ok, "error field must be present")
	assert.Contains(t, errMsg, "failed to send email")
	assert.Contains(t, errMsg, "inactive recipient")

	_, hasSuccess := payload["success"]
	assert.False(t, hasSuccess, "failure responses never claim success")
}

func TestHandlerPreflight(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(newTestService(nil, &stubSender{}))

	req := httptest.NewRequest(http.MethodOptions, "/welcome", nil)
	req.Header.Set("Origin", "https://forms.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestHandlerPanicRecovery(t *testing.T) {
	t.Parallel()

	// A sender that panics exercises the outer error boundary.
	handler := newTestRouter(newTestService(nil, panickySender{}))

	rec := postSubmission(t, handler, `{"name":"Ava","email":"ava@example.com","industry":"fintech"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "{\"error\":\"Unknown error\"}\n", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	handler := newTestRouter(newTestService(nil, &stubSender{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

// panickySender simulates an unanticipated fault in the pipeline.
type panickySender struct{}

func (panickySender) SendEmail(ctx context.Context, params email.SendEmailParams) (email.SendResult, error) {
	panic("unexpected provider state")
}

// noIDSender acknowledges sends without a provider message id, as SMTP-like
// transports without queue visibility do.
type noIDSender struct{}

func (noIDSender) SendEmail(ctx context.Context, params email.SendEmailParams) (email.SendResult, error) {
	return email.SendResult{}, nil
}
