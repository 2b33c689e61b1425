package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

var ErrBackendUnavailable = errors.New("model backend unavailable")

// BackendError reports a non-success status returned by a reachable backend.
type BackendError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s backend returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s backend returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Provider is a text-generation backend. Generate makes exactly one attempt.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewProvider builds the backend selected in cfg. A nil Provider with a nil
// error means generation is disabled and every request uses the fallback table.
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderHTTP:
		return NewHTTPProvider(cfg.Endpoint, cfg.Timeout), nil
	case config.ProviderGemini:
		return NewGeminiProvider(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case config.ProviderAnthropic:
		return NewAnthropicProvider(cfg), nil
	case config.ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// unavailable wraps transport-level failures (dial errors, timeouts, cancelled
// contexts) as ErrBackendUnavailable and returns other errors unchanged.
func unavailable(provider string, err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %v", provider, ErrBackendUnavailable, err)
	}
	return err
}

func isBackendFailure(err error) bool {
	var backendErr *BackendError
	return errors.Is(err, ErrBackendUnavailable) || errors.As(err, &backendErr)
}
