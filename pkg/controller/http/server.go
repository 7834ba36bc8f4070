package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/domain/model"
)

// config holds internal HTTP server configuration
type config struct {
	addr          string
	webhookSecret string
	releaseConfig *model.ReleaseConfig
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWebhookSecret sets the webhook secret
func WithWebhookSecret(secret string) Option {
	return func(c *config) {
		c.webhookSecret = secret
	}
}

// WithReleaseConfig sets the release config served by the config endpoints
func WithReleaseConfig(cfg *model.ReleaseConfig) Option {
	return func(c *config) {
		c.releaseConfig = cfg
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	webhookUC interfaces.WebhookUseCase,
	labelUC interfaces.LabelUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:          "localhost:8080",
		releaseConfig: model.DefaultReleaseConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := ValidationMiddleware(doc)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(validator)

	// Health check
	router.Get("/health", handleHealth)

	// Label and config API
	labelHandler := NewLabelHandler(labelUC)
	configHandler := NewConfigHandler(cfg.releaseConfig)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/labels/{kind}", labelHandler.Handle)
		r.Get("/config/changelog", configHandler.HandleChangelog)
		r.Get("/config/commitlint", configHandler.HandleCommitlint)
	})

	// Webhook endpoint
	if cfg.webhookSecret != "" {
		if webhookUC == nil {
			return nil, goerr.New("webhook use case is required when a webhook secret is set")
		}
		webhookHandler := NewWebhookHandler(cfg.webhookSecret, webhookUC)
		router.Post("/hooks/github", webhookHandler.Handle)
	} else if webhookUC != nil {
		return nil, goerr.New("webhook secret is required to serve GitHub webhooks")
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
