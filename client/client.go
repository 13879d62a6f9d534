package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/greetmail/welcome"
)

// ErrMissingBaseURL is returned when the client is constructed without a base URL.
var ErrMissingBaseURL = errors.New("base URL is required")

const defaultTimeout = 30 * time.Second

// Client submits lead-capture forms to the welcome service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a Client for the welcome service at baseURL
// (for example "https://api.example.com").
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Submit posts one submission to the welcome endpoint and folds every
// outcome into a Result. Transport failures, non-2xx statuses and error
// payloads are all Failures regardless of each other; only a success
// payload on a 2xx response produces Success.
func (c *Client) Submit(ctx context.Context, sub welcome.Submission) Result {
	body, err := json.Marshal(sub)
	if err != nil {
		return Failure(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/welcome", bytes.NewReader(body))
	if err != nil {
		return Failure(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Failure(err.Error())
	}
	defer resp.Body.Close()

	var payload struct {
		Success bool   `json:"success"`
		EmailID string `json:"emailId"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Failure("invalid response from server")
	}

	if payload.Error != "" {
		return Failure(payload.Error)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Failure(resp.Status)
	}
	if !payload.Success {
		return Failure("Unknown error")
	}

	return Success(payload.EmailID)
}
