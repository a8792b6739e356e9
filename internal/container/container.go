package container

import (
	"context"
	"fmt"

	"animexplorer/internal/config"
	"animexplorer/internal/handlers"
	"animexplorer/internal/logger"
	"animexplorer/internal/render"
	"animexplorer/internal/services"
	"animexplorer/internal/session"

	"github.com/sirupsen/logrus"
)

type Container struct {
	Config       config.ServerConfig
	Sessions     session.Store
	Logger       *logrus.Logger
	AnimeService *services.Client
	Renderer     *render.Renderer
	Explorer     *handlers.Explorer
}

func New(ctx context.Context) (*Container, error) {
	// Initialize logger first
	log := logger.Get()
	cfg := config.Server()
	logger.SetLevel(cfg.LogLevel)

	sessions, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		sessions.Close()
		return nil, err
	}

	jikan := config.Jikan()
	animeService := services.NewClientWithConfig(&services.ClientConfig{
		BaseURL:    jikan.BaseURL,
		Timeout:    jikan.Timeout,
		RatePerSec: jikan.RatePerSec,
		UserAgent:  jikan.UserAgent,
		Logger:     log,
	})

	return &Container{
		Config:       cfg,
		Sessions:     sessions,
		Logger:       log,
		AnimeService: animeService,
		Renderer:     renderer,
		Explorer:     handlers.NewExplorer(animeService, sessions, renderer, log, cfg.SessionTTL),
	}, nil
}

func (c *Container) Close() {
	if c.Sessions != nil {
		if err := c.Sessions.Close(); err != nil {
			c.Logger.WithError(err).Warn("Failed to close session store")
			return
		}
		c.Logger.Info("Session store closed")
	}
}

func newSessionStore(ctx context.Context, cfg config.ServerConfig, log *logrus.Logger) (session.Store, error) {
	switch cfg.SessionStore {
	case "redis":
		client, err := session.NewRedisClient(ctx)
		if err != nil {
			return nil, err
		}
		log.Info("Redis connection successful")
		return session.NewRedisStore(client, cfg.SessionTTL, log), nil
	case "memory", "":
		log.Info("Using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
