package aiquiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

const maxResponseBytes = 1 << 20

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// httpProvider talks to a local inference server that accepts {"prompt": ...}
// and answers with either a JSON string or an already structured JSON value.
type httpProvider struct {
	client   *http.Client
	endpoint string
}

func NewHTTPProvider(endpoint string, timeout time.Duration) Provider {
	return &httpProvider{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

func (p *httpProvider) Name() string { return config.ProviderHTTP }

func (p *httpProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", unavailable(p.Name(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", unavailable(p.Name(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &BackendError{Provider: p.Name(), StatusCode: resp.StatusCode, Body: truncate(string(raw), 200)}
	}

	log.Debugf("[AIQUIZ] Raw backend response:\n%s", raw)

	var payload json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: backend payload is not JSON: %v", ErrInvalidJSON, err)
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return text, nil
	}
	return string(trimmed), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
