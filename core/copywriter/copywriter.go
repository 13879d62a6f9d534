package copywriter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/greetmail/core/logger"
)

// Generation parameters tuned for short, lively welcome copy.
const (
	creativityTemperature = 0.8
	maxCompletionTokens   = 200
)

// systemInstruction fixes the voice of every generated welcome message.
const systemInstruction = "You are an enthusiastic community manager who writes warm, " +
	"personalized welcome messages for new members of a professional community. " +
	"Your tone is friendly and energetic. Keep the message under 150 words and " +
	"make the member feel excited about the connections and opportunities ahead."

// userPrompt renders the per-member generation request.
func userPrompt(p Params) string {
	return fmt.Sprintf(
		"Write a personalized welcome paragraph for %s, who just joined our community and works in the %s industry. Highlight how the community supports professionals in %s.",
		p.Name, p.Industry, p.Industry,
	)
}

// Params carries the inputs for welcome-paragraph generation.
type Params struct {
	Name     string
	Industry string
}

// Provider generates welcome copy through an external model API.
type Provider interface {
	Generate(ctx context.Context, params Params) (string, error)
}

// Copywriter produces a welcome paragraph for every request.
// Generation is total: with no provider configured it uses the deterministic
// fallback without any network call, and any provider failure or blank
// completion falls back the same way. Failures are logged, never returned.
type Copywriter struct {
	provider Provider
	log      *slog.Logger
}

// Option configures the Copywriter.
type Option func(*Copywriter)

// WithProvider sets the generation provider. A nil provider keeps
// fallback-only behavior.
func WithProvider(p Provider) Option {
	return func(c *Copywriter) {
		c.provider = p
	}
}

// WithLogger sets the logger for fallback diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Copywriter) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Copywriter. Without WithProvider every paragraph comes from
// the fallback template.
func New(opts ...Option) *Copywriter {
	c := &Copywriter{
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WelcomeParagraph returns generated or fallback welcome copy. It never fails.
func (c *Copywriter) WelcomeParagraph(ctx context.Context, params Params) string {
	if c.provider == nil {
		return FallbackParagraph(params)
	}

	text, err := c.provider.Generate(ctx, params)
	if err != nil {
		c.log.WarnContext(ctx, "Welcome copy generation failed, using fallback",
			logger.Component("copywriter"),
			logger.Error(err),
		)
		return FallbackParagraph(params)
	}
	if strings.TrimSpace(text) == "" {
		c.log.WarnContext(ctx, "Welcome copy generation returned empty text, using fallback",
			logger.Component("copywriter"),
		)
		return FallbackParagraph(params)
	}

	c.log.DebugContext(ctx, "Welcome copy generated",
		logger.Component("copywriter"),
		logger.Key("text", text),
	)
	return text
}

// FallbackParagraph returns the deterministic welcome text used when no
// provider is configured or generation fails. It depends only on the params.
func FallbackParagraph(p Params) string {
	return fmt.Sprintf(
		"Welcome to our community, %s! We're thrilled to have someone from the %s industry join us. You'll find great connections, fresh ideas, and plenty of opportunities to share your expertise here. We can't wait to see the impact you'll make!",
		p.Name, p.Industry,
	)
}
