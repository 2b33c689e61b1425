package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quiz-generator/internal/aiquiz"
	"github.com/saulo-duarte/quiz-generator/internal/auth"
	"github.com/saulo-duarte/quiz-generator/internal/catalog"
	"github.com/saulo-duarte/quiz-generator/internal/config"
	"github.com/saulo-duarte/quiz-generator/internal/health"
	"github.com/saulo-duarte/quiz-generator/internal/imagegen"
	"github.com/saulo-duarte/quiz-generator/internal/router"
)

type Container struct {
	Config            *config.Config
	AIQuizContainer   *aiquiz.AIQuizContainer
	ImageGenContainer *imagegen.ImageGenContainer
	HealthHandler     *health.Handler
	CatalogHandler    *catalog.Handler
	Auth              *auth.Authenticator
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var authenticator *auth.Authenticator
	if cfg.JWTSecret != "" {
		authenticator, err = auth.NewAuthenticator(cfg.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticator: %w", err)
		}
	}

	config.Logger().WithField("provider", cfg.LLM.Provider).
		WithField("auth", authenticator != nil).
		Info("Container initialized")

	return &Container{
		Config:            cfg,
		AIQuizContainer:   aiQuizContainer,
		ImageGenContainer: imagegen.NewImageGenContainer(cfg.Image),
		HealthHandler:     health.NewHandler(),
		CatalogHandler:    catalog.NewHandler(),
		Auth:              authenticator,
	}, nil
}

func (c *Container) Router() *chi.Mux {
	return router.New(router.RouterConfig{
		HealthHandler:   c.HealthHandler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
		CatalogHandler:  c.CatalogHandler,
		ImageGenHandler: c.ImageGenContainer.Handler,
		Auth:            c.Auth,
		AllowedOrigins:  c.Config.CORSAllowedOrigins,
	})
}
