package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pr-review-relay/config"
	_ "pr-review-relay/docs" // Swagger docs
	"pr-review-relay/internal/httpserver"
	reviewUC "pr-review-relay/internal/review/usecase"
	"pr-review-relay/internal/webhook"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/llmprovider"
	"pr-review-relay/pkg/log"
	"pr-review-relay/pkg/otel"
	"pr-review-relay/pkg/retry"
)

// @title       PR Review Relay API
// @description Receives GitHub pull request webhooks and publishes generated reviews.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting PR Review Relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	telemetry, err := otel.Setup(ctx, otel.Config{
		Endpoint:       cfg.OTel.Endpoint,
		Headers:        cfg.OTel.Headers,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.OTel.ServiceVersion,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warnf(shutdownCtx, "Tracing shutdown: %v", err)
		}
	}()

	// 4. Storage
	stores, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open stores: ", err)
		return
	}
	defer stores.Close()
	logger.Infof(ctx, "Storage: sessions=%s registrations=%s", cfg.Storage.Sessions, cfg.Storage.Registrations)

	// 5. GitHub
	githubFactory, err := github.New(github.Config{APIBaseURL: cfg.GitHub.APIBaseURL})
	if err != nil {
		logger.Error(ctx, "Failed to initialize GitHub client: ", err)
		return
	}

	var githubOAuth github.IOAuth
	if cfg.GitHub.ClientID != "" && cfg.GitHub.ClientSecret != "" {
		githubOAuth, err = github.NewOAuth(github.OAuthConfig{
			ClientID:     cfg.GitHub.ClientID,
			ClientSecret: cfg.GitHub.ClientSecret,
			RedirectURL:  cfg.GitHub.RedirectURL,
			TokenURL:     cfg.GitHub.OAuthTokenURL,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize GitHub OAuth: ", err)
			return
		}
	} else {
		logger.Warn(ctx, "GITHUB_CLIENT_ID or GITHUB_CLIENT_SECRET is missing, login disabled")
	}

	// Public webhook address: explicit config, else an ngrok tunnel
	webhookURL := cfg.GitHub.WebhookURL
	if webhookURL == "" && cfg.GitHub.NgrokAPIURL != "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.GitHub.NgrokAPIURL)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		logger.Warn(ctx, "github.webhook_url is not set, /create-webhook will fail")
	}

	// 6. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		Retry:           newRetryConfig(cfg.LLM),
		MaxTotalTimeout: config.ParseDuration(cfg.LLM.MaxTotalTimeout, 0),
	}, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ReadTimeout:      cfg.HTTPServer.ReadTimeout,
		WriteTimeout:     cfg.HTTPServer.WriteTimeout,
		CORSOrigins:      cfg.CORS.AllowedOrigins,
		Tracing:          cfg.OTel.Endpoint != "",
		ServiceName:      cfg.OTel.ServiceName,
		SessionRepo:      stores.sessions,
		RegistrationRepo: stores.registrations,
		GitHubFactory:    githubFactory,
		GitHubOAuth:      githubOAuth,
		WebhookURL:       webhookURL,
		Session: httpserver.SessionConfig{
			CookieName:   cfg.Session.CookieName,
			CookieSecure: cfg.Session.CookieSecure,
			TTL:          cfg.Session.TTL,
		},
		Generator: manager,
		ReviewConfig: reviewUC.Config{
			DiffMode:         cfg.Review.DiffMode,
			MaxDiffChars:     cfg.Review.MaxDiffChars,
			MinBodyChars:     cfg.Review.MinBodyChars,
			MinBodyLines:     cfg.Review.MinBodyLines,
			PatchTitle:       cfg.Review.PatchTitle,
			PatchDescription: cfg.Review.PatchDescription,
			FallbackTitle:    cfg.Review.FallbackTitle,
			Temperature:      cfg.LLM.Temperature,
			MaxTokens:        cfg.LLM.MaxTokens,
		},
		WebhookSecurity: webhook.SecurityConfig{
			SecretMode:      cfg.Webhook.SecretMode,
			Secret:          cfg.Webhook.Secret,
			BotToken:        cfg.GitHub.BotToken,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		WebhookHandler: webhook.HandlerConfig{
			Async:          cfg.Webhook.Async,
			ProcessTimeout: cfg.Webhook.ProcessTimeout,
			MaxBodyBytes:   cfg.Webhook.MaxBodyBytes,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newRetryConfig maps llm.* onto the retry controller. A configured
// max_retries of 0 disables retrying; retry.Config would read 0 as the default.
func newRetryConfig(cfg config.LLMConfig) retry.Config {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = retry.NoRetries.MaxRetries
	}
	return retry.Config{
		MaxRetries:   maxRetries,
		InitialDelay: config.ParseDuration(cfg.InitialDelay, retry.DefaultInitialDelay),
	}
}
