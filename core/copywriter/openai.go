package copywriter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements the Provider interface using OpenAI's chat completion API.
type OpenAI struct {
	client     openai.Client
	model      openai.ChatModel
	baseURL    string
	httpClient *http.Client
}

// OpenAIOption is a functional option for configuring OpenAI.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel sets the chat model to use.
func WithOpenAIModel(model openai.ChatModel) OpenAIOption {
	return func(o *OpenAI) {
		if model != "" {
			o.model = model
		}
	}
}

// WithOpenAIBaseURL points the client at a different API endpoint,
// mainly for tests and OpenAI-compatible gateways.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(o *OpenAI) {
		o.baseURL = url
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(o *OpenAI) {
		o.httpClient = client
	}
}

// NewOpenAI creates a new OpenAI copywriting provider.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	o := &OpenAI{
		model: openai.ChatModelGPT4oMini, // Fast and cheap, plenty for 150-word copy
	}
	for _, opt := range opts {
		opt(o)
	}

	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if o.baseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(o.baseURL))
	}
	if o.httpClient != nil {
		requestOpts = append(requestOpts, option.WithHTTPClient(o.httpClient))
	}
	o.client = openai.NewClient(requestOpts...)

	return o, nil
}

// Generate requests a welcome paragraph and returns the first choice's text.
func (o *OpenAI) Generate(ctx context.Context, params Params) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(userPrompt(params)),
		},
		Temperature: openai.Float(creativityTemperature),
		MaxTokens:   openai.Int(maxCompletionTokens),
	})
	if err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
