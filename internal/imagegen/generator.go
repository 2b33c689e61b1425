package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var ErrNotConfigured = errors.New("image backend is not configured")

// Generator turns a prompt into a publicly reachable image URL.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type openAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator returns nil when apiKey is empty so callers can report
// the backend as unconfigured.
func NewOpenAIGenerator(apiKey, baseURL, model string, timeout time.Duration) Generator {
	if apiKey == "" {
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	return &openAIGenerator{client: openai.NewClientWithConfig(cfg), model: model}
}

func (g *openAIGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("openai image generation: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("openai image generation: empty response")
	}
	return resp.Data[0].URL, nil
}

const placeholderBaseURL = "https://via.placeholder.com/512x512/667eea/ffffff"

type placeholderGenerator struct{}

func (placeholderGenerator) GenerateImage(_ context.Context, prompt string) (string, error) {
	return PlaceholderURL(prompt), nil
}

// PlaceholderURL renders the prompt as the caption of a fixed-size
// placeholder image.
func PlaceholderURL(prompt string) string {
	text := strings.ReplaceAll(url.QueryEscape(prompt), "+", "%20")
	return placeholderBaseURL + "?text=" + text
}
