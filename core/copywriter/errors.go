package copywriter

import "errors"

var (
	// ErrInvalidAPIKey indicates an invalid or missing API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrClientCreationFailed indicates a failure in creating the API client.
	ErrClientCreationFailed = errors.New("failed to create API client")

	// ErrGenerationFailed indicates the completion request failed.
	ErrGenerationFailed = errors.New("failed to generate welcome copy")

	// ErrEmptyCompletion indicates the API returned no usable text.
	ErrEmptyCompletion = errors.New("empty completion returned")
)
