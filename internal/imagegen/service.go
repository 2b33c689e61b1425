package imagegen

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

var (
	ErrPromptRequired  = errors.New("prompt is required")
	ErrInvalidProvider = errors.New("invalid provider")
)

type Service interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error)
}

type service struct {
	generators map[string]Generator
}

// NewService registers openai (which may be nil when no key is configured)
// next to the always-available placeholder generator.
func NewService(openAI Generator) Service {
	return &service{
		generators: map[string]Generator{
			ProviderOpenAI:      openAI,
			ProviderPlaceholder: placeholderGenerator{},
		},
	}
}

func (s *service) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrPromptRequired
	}

	provider := req.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	generator, ok := s.generators[provider]
	if !ok {
		return nil, ErrInvalidProvider
	}
	if generator == nil {
		return nil, ErrNotConfigured
	}

	url, err := generator.GenerateImage(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}

	config.WithContext(ctx).WithField("provider", provider).Info("[IMAGEGEN] Image generated")
	return &ImageResponse{ImageURL: url}, nil
}
