package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quiz-generator/internal/config"
	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

// openAIProvider uses the chat-completion API of OpenAI or of any server that
// speaks the same protocol when LLM_ENDPOINT is set.
type openAIProvider struct {
	llm llms.Model
}

func NewOpenAIProvider(cfg config.LLMConfig) (Provider, error) {
	token := cfg.APIKey
	if token == "" && cfg.Endpoint != "" {
		// local OpenAI-compatible servers usually ignore the token
		token = "local"
	}

	opts := []lcopenai.Option{
		lcopenai.WithModel(cfg.Model),
		lcopenai.WithToken(token),
		lcopenai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, lcopenai.WithBaseURL(cfg.Endpoint))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return &openAIProvider{llm: llm}, nil
}

func (p *openAIProvider) Name() string { return config.ProviderOpenAI }

func (p *openAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := p.llm.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		if wrapped := unavailable(p.Name(), err); errors.Is(wrapped, ErrBackendUnavailable) {
			return "", wrapped
		}
		log.WithError(err).Warn("OpenAI chat completion failed")
		return "", &BackendError{Provider: p.Name(), StatusCode: http.StatusBadGateway, Body: err.Error()}
	}

	var sb strings.Builder
	for _, choice := range resp.Choices {
		sb.WriteString(choice.Content)
	}
	log.Debugf("[AIQUIZ] Raw OpenAI response:\n%s", sb.String())
	return sb.String(), nil
}
