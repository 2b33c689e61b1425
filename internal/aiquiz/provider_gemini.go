package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/quiz-generator/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: cfg.Model}, nil
}

func (p *geminiProvider) Name() string { return config.ProviderGemini }

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		if status, ok := geminiStatus(err); ok {
			return "", &BackendError{Provider: p.Name(), StatusCode: status, Body: err.Error()}
		}
		log.WithError(err).Warn("Gemini call failed")
		return "", unavailable(p.Name(), err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	return raw, nil
}

func geminiStatus(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return apiErrPtr.Code, true
	}
	return 0, false
}
