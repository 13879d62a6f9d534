// Package copywriter generates personalized welcome copy for new community
// members using different AI providers, with a deterministic local fallback.
//
// The package abstracts away the differences between completion APIs behind
// the Provider interface and wraps any provider in a Copywriter whose
// WelcomeParagraph method is total: it always returns usable text. A missing
// provider, a failed request, or a blank completion all produce the fallback
// paragraph, so the welcome flow never stalls on the AI dependency.
//
// # Basic Usage
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/dmitrymomot/greetmail/core/copywriter"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		provider, err := copywriter.NewOpenAI("your-openai-api-key")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		writer := copywriter.New(copywriter.WithProvider(provider))
//
//		text := writer.WelcomeParagraph(ctx, copywriter.Params{
//			Name:     "Ava",
//			Industry: "fintech",
//		})
//		fmt.Println(text)
//	}
//
// # Provider Switching
//
// Both OpenAI and Google Gemini are supported; the application wiring picks
// one from configuration:
//
//	func createProvider(ctx context.Context, cfg Config) (copywriter.Provider, error) {
//		switch cfg.Provider {
//		case "openai":
//			return copywriter.NewOpenAI(cfg.OpenAIAPIKey)
//		case "google":
//			return copywriter.NewGoogle(ctx, cfg.GeminiAPIKey)
//		default:
//			return nil, nil // fallback-only copywriter
//		}
//	}
//
// # Generation Parameters
//
// Every provider sends the same fixed system instruction (an enthusiastic
// community-manager persona capped at 150 words) and a user prompt built from
// the member's name and industry, with temperature 0.8 and a 200-token output
// limit. The first choice's text is used verbatim.
//
// # Error Handling
//
// Provider constructors fail loudly (ErrInvalidAPIKey, ErrClientCreationFailed)
// so wiring can decide between a real provider and fallback-only mode. Generate
// failures wrap ErrGenerationFailed or ErrEmptyCompletion; the Copywriter
// wrapper logs them at warn level and falls back rather than surfacing them.
package copywriter
