package copywriter

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// Google model constants.
const (
	GoogleGemini25Flash = "gemini-2.5-flash"
	GoogleGemini25Pro   = "gemini-2.5-pro"
)

// Google implements the Provider interface using Google's Gemini API.
type Google struct {
	client *genai.Client
	model  string
}

// GoogleOption is a functional option for configuring Google.
type GoogleOption func(*Google)

// WithGoogleModel sets the model to use.
func WithGoogleModel(model string) GoogleOption {
	return func(g *Google) {
		if model != "" {
			g.model = model
		}
	}
}

// NewGoogle creates a new Google copywriting provider with Gemini API
// and API key authentication.
func NewGoogle(ctx context.Context, apiKey string, opts ...GoogleOption) (*Google, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	g := &Google{
		model: GoogleGemini25Flash, // Fast and cheap, plenty for 150-word copy
	}
	for _, opt := range opts {
		opt(g)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Join(ErrClientCreationFailed, err)
	}
	g.client = client

	return g, nil
}

// Generate requests a welcome paragraph and returns the combined response text.
func (g *Google) Generate(ctx context.Context, params Params) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](creativityTemperature),
		MaxOutputTokens:   maxCompletionTokens,
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userPrompt(params)), config)
	if err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
