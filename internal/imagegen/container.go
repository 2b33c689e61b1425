package imagegen

import (
	"github.com/saulo-duarte/quiz-generator/internal/config"
)

type ImageGenContainer struct {
	Handler *Handler
	Service Service
}

func NewImageGenContainer(cfg config.ImageConfig) *ImageGenContainer {
	service := NewService(NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.BaseURL, cfg.Model, cfg.Timeout))
	handler := NewHandler(service)

	return &ImageGenContainer{
		Handler: handler,
		Service: service,
	}
}
