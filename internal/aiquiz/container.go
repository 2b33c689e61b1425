package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, cfg *config.Config) (*AIQuizContainer, error) {
	provider, err := NewProvider(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", cfg.LLM.Provider, err)
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	service := NewService(provider, validator, DefaultFallbackTable(), ServiceConfig{
		Timeout:      cfg.LLM.Timeout,
		StrictMode:   cfg.StrictMode,
		MaxQuestions: cfg.MaxQuestions,
	})
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}, nil
}
