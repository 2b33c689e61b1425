package aiquiz

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/saulo-duarte/quiz-generator/internal/config"
)

type anthropicProvider struct {
	client anthropic.Client
	model  string
}

func NewAnthropicProvider(cfg config.LLMConfig) Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}

	return &anthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (p *anthropicProvider) Name() string { return config.ProviderAnthropic }

func (p *anthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 4096,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &BackendError{Provider: p.Name(), StatusCode: apiErr.StatusCode, Body: apiErr.Error()}
		}
		log.WithError(err).Warn("Anthropic call failed")
		return "", unavailable(p.Name(), err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	log.Debugf("[AIQUIZ] Raw Anthropic response:\n%s", sb.String())
	return sb.String(), nil
}
