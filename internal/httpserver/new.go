package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	authRepo "pr-review-relay/internal/auth/repository"
	registrationRepo "pr-review-relay/internal/registration/repository"
	reviewUC "pr-review-relay/internal/review/usecase"
	"pr-review-relay/internal/webhook"
	"pr-review-relay/pkg/github"
	"pr-review-relay/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration
	corsOrigins  []string
	tracing      bool
	serviceName  string

	// Storage
	sessionRepo      authRepo.Repository
	registrationRepo registrationRepo.Repository

	// GitHub
	githubFactory github.IFactory
	githubOAuth   github.IOAuth
	webhookURL    string

	// Auth domain
	session SessionConfig

	// Review domain
	generator    reviewUC.Generator
	reviewConfig reviewUC.Config

	// Webhook domain
	webhookSecurity webhook.SecurityConfig
	webhookHandler  webhook.HandlerConfig
}

// SessionConfig controls session cookies.
type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger       log.Logger
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
	// Tracing enables otelgin spans for every request
	Tracing     bool
	ServiceName string

	SessionRepo      authRepo.Repository
	RegistrationRepo registrationRepo.Repository

	GitHubFactory github.IFactory
	GitHubOAuth   github.IOAuth
	WebhookURL    string

	Session SessionConfig

	Generator    reviewUC.Generator
	ReviewConfig reviewUC.Config

	WebhookSecurity webhook.SecurityConfig
	WebhookHandler  webhook.HandlerConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		readTimeout:      cfg.ReadTimeout,
		writeTimeout:     cfg.WriteTimeout,
		corsOrigins:      cfg.CORSOrigins,
		tracing:          cfg.Tracing,
		serviceName:      cfg.ServiceName,
		sessionRepo:      cfg.SessionRepo,
		registrationRepo: cfg.RegistrationRepo,
		githubFactory:    cfg.GitHubFactory,
		githubOAuth:      cfg.GitHubOAuth,
		webhookURL:       cfg.WebhookURL,
		session:          cfg.Session,
		generator:        cfg.Generator,
		reviewConfig:     cfg.ReviewConfig,
		webhookSecurity:  cfg.WebhookSecurity,
		webhookHandler:   cfg.WebhookHandler,
	}
	if srv.serviceName == "" {
		srv.serviceName = ServiceName
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionRepo == nil || srv.registrationRepo == nil {
		return errors.New("session and registration stores are required")
	}
	if srv.githubFactory == nil {
		return errors.New("github client factory is required")
	}
	if srv.generator == nil {
		return errors.New("review generator is required")
	}
	return nil
}
