// Package server provides the public entry point for composing the
// WorkMate gateway: configuration, telemetry, persona registry,
// provider adapter, fallback responder, resolution engine, and router.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/workmate-ai/gateway/internal/agents"
	"github.com/workmate-ai/gateway/internal/api"
	"github.com/workmate-ai/gateway/internal/api/handlers"
	"github.com/workmate-ai/gateway/internal/chat"
	"github.com/workmate-ai/gateway/internal/config"
	"github.com/workmate-ai/gateway/internal/fallback"
	"github.com/workmate-ai/gateway/internal/provider"
	"github.com/workmate-ai/gateway/internal/telemetry"
)

// Server holds the initialized WorkMate gateway.
type Server struct {
	// Handler is the HTTP handler with all routes and middleware.
	Handler http.Handler

	// Config is the loaded configuration.
	Config *config.Config

	// Port is the port the server should listen on.
	Port int

	// ShutdownFunc should be called on graceful shutdown to flush telemetry.
	ShutdownFunc func(context.Context) error
}

// New loads configuration from the environment and initializes all
// components. This is the primary entry point for main.go.
func New(ctx context.Context) (*Server, error) {
	return NewWithConfig(ctx, config.Load())
}

// NewWithConfig initializes the gateway with an explicit configuration.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*Server, error) {
	shutdown, err := telemetry.Init(cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	registry := agents.NewRegistry()
	if cfg.AgentsFile != "" {
		registry, err = agents.LoadRegistry(cfg.AgentsFile)
		if err != nil {
			return nil, fmt.Errorf("load agents: %w", err)
		}
		log.Info().Str("file", cfg.AgentsFile).Int("agents", registry.Len()).Msg("Persona registry loaded from file")
	} else {
		log.Info().Int("agents", registry.Len()).Msg("Built-in persona registry loaded")
	}

	gen := provider.FromConfig(cfg)
	if gen == nil {
		log.Info().Msg("Provider selection: mock (no backend calls)")
	} else {
		log.Info().Str("provider", gen.Name()).Dur("timeout", cfg.RequestTimeout).Msg("Provider adapter initialized")
	}

	engine := chat.NewEngine(registry, gen, fallback.NewResponder(), cfg.Provider)

	h := handlers.New(engine, registry, cfg)
	router := api.NewRouter(cfg, h)

	return &Server{
		Handler:      router,
		Config:       cfg,
		Port:         cfg.Port,
		ShutdownFunc: shutdown,
	}, nil
}
