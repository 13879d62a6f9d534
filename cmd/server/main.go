package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/openai/openai-go"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/greetmail/core/config"
	"github.com/dmitrymomot/greetmail/core/copywriter"
	"github.com/dmitrymomot/greetmail/core/email"
	"github.com/dmitrymomot/greetmail/core/healthcheck"
	"github.com/dmitrymomot/greetmail/core/logger"
	"github.com/dmitrymomot/greetmail/core/server"
	"github.com/dmitrymomot/greetmail/integration/email/postmark"
	"github.com/dmitrymomot/greetmail/integration/email/smtp"
	"github.com/dmitrymomot/greetmail/middleware"
	"github.com/dmitrymomot/greetmail/welcome"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := welcome.NewService(
		newCopywriter(ctx, cfg.Copywriter, log),
		newSender(cfg.Mailer, log),
		welcome.WithServiceLogger(log),
	)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Error("Failed to configure server", logger.Error(err))
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(gctx, newRouter(svc, log)))

	if err := g.Wait(); err != nil {
		log.Error("Server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	if cfg.Env == "production" {
		return logger.New(logger.WithProduction(cfg.AppName))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName))
}

// newCopywriter wires the configured text-generation provider. Construction
// failures degrade to fallback-only copy so the service keeps accepting
// submissions without personalization.
func newCopywriter(ctx context.Context, cfg copywriterConfig, log *slog.Logger) *copywriter.Copywriter {
	var provider copywriter.Provider

	switch cfg.Provider {
	case "openai":
		p, err := copywriter.NewOpenAI(cfg.OpenAIAPIKey,
			copywriter.WithOpenAIModel(openai.ChatModel(cfg.OpenAIModel)),
		)
		if err != nil {
			log.Warn("Copywriter provider unavailable, using fallback copy",
				logger.Component("copywriter"),
				logger.Error(err),
			)
		} else {
			provider = p
		}
	case "google":
		p, err := copywriter.NewGoogle(ctx, cfg.GeminiAPIKey,
			copywriter.WithGoogleModel(cfg.GeminiModel),
		)
		if err != nil {
			log.Warn("Copywriter provider unavailable, using fallback copy",
				logger.Component("copywriter"),
				logger.Error(err),
			)
		} else {
			provider = p
		}
	case "none", "":
	default:
		log.Warn("Unknown copywriter provider, using fallback copy",
			logger.Component("copywriter"),
			logger.Key("provider", cfg.Provider),
		)
	}

	return copywriter.New(
		copywriter.WithProvider(provider),
		copywriter.WithLogger(log),
	)
}

// newSender wires the configured email transport. A misconfigured provider
// yields a disabled sender: the process starts and answers requests, but
// every send fails with the construction error.
func newSender(cfg mailerConfig, log *slog.Logger) email.EmailSender {
	switch cfg.Provider {
	case "postmark":
		var pmCfg postmark.Config
		if err := config.Load(&pmCfg); err != nil {
			log.Warn("Mailer misconfigured, sends will fail",
				logger.Component("mailer"),
				logger.Error(err),
			)
			return email.NewDisabledSender(err)
		}
		sender, err := postmark.New(pmCfg)
		if err != nil {
			log.Warn("Mailer misconfigured, sends will fail",
				logger.Component("mailer"),
				logger.Error(err),
			)
			return email.NewDisabledSender(err)
		}
		return sender
	case "smtp":
		var smtpCfg smtp.Config
		if err := config.Load(&smtpCfg); err != nil {
			log.Warn("Mailer misconfigured, sends will fail",
				logger.Component("mailer"),
				logger.Error(err),
			)
			return email.NewDisabledSender(err)
		}
		sender, err := smtp.New(smtpCfg)
		if err != nil {
			log.Warn("Mailer misconfigured, sends will fail",
				logger.Component("mailer"),
				logger.Error(err),
			)
			return email.NewDisabledSender(err)
		}
		return sender
	default:
		log.Info("Using development mailer, emails are written to disk",
			logger.Component("mailer"),
			logger.Key("dir", cfg.DevDir),
		)
		return email.NewDevSender(cfg.DevDir)
	}
}

func newRouter(svc *welcome.Service, log *slog.Logger) http.Handler {
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
