package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderHTTP      = "http"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type LLMConfig struct {
	Provider string
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

type ImageConfig struct {
	OpenAIAPIKey string
	BaseURL      string
	Model        string
	Timeout      time.Duration
}

type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	LLM                LLMConfig
	Image              ImageConfig
	StrictMode         bool
	MaxQuestions       int
	JWTSecret          string
	CORSAllowedOrigins []string
}

// Load reads the process environment once and returns the resulting
// configuration. Encrypted variants of secrets (suffix _ENC) are decrypted
// with CRYPTO_KEY when present.
func Load() (*Config, error) {
	timeout, err := getDuration("LLM_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	imageTimeout, err := getDuration("IMAGE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}
	maxQuestions, err := getInt("MAX_QUESTIONS", 20)
	if err != nil {
		return nil, err
	}
	if maxQuestions <= 0 {
		return nil, fmt.Errorf("%w: MAX_QUESTIONS must be positive", ErrInvalidConfig)
	}
	strict, err := getBool("STRICT_MODE", false)
	if err != nil {
		return nil, err
	}

	secrets, err := newSecretReader(os.Getenv("CRYPTO_KEY"))
	if err != nil {
		return nil, err
	}
	llmKey, err := secrets.read("LLM_API_KEY")
	if err != nil {
		return nil, err
	}
	openAIKey, err := secrets.read("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}
	jwtSecret, err := secrets.read("JWT_SECRET")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LLM: LLMConfig{
			Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderHTTP)),
			Endpoint: os.Getenv("LLM_ENDPOINT"),
			Model:    os.Getenv("LLM_MODEL"),
			APIKey:   llmKey,
			Timeout:  timeout,
		},
		Image: ImageConfig{
			OpenAIAPIKey: openAIKey,
			BaseURL:      os.Getenv("OPENAI_BASE_URL"),
			Model:        getEnv("IMAGE_MODEL", "dall-e-3"),
			Timeout:      imageTimeout,
		},
		StrictMode:         strict,
		MaxQuestions:       maxQuestions,
		JWTSecret:          jwtSecret,
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	cfg.LLM.applyDefaults()
	if err := cfg.LLM.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *LLMConfig) applyDefaults() {
	switch c.Provider {
	case ProviderHTTP:
		if c.Endpoint == "" {
			c.Endpoint = "http://localhost:8080/generate"
		}
	case ProviderGemini:
		if c.Model == "" {
			c.Model = "gemini-2.0-flash"
		}
	case ProviderOpenAI:
		if c.Model == "" {
			c.Model = "gpt-4o-mini"
		}
	case ProviderAnthropic:
		if c.Model == "" {
			c.Model = "claude-sonnet-4-20250514"
		}
	}
}

func (c LLMConfig) validate() error {
	switch c.Provider {
	case ProviderHTTP, ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderNone:
	default:
		return fmt.Errorf("%w: unknown LLM_PROVIDER %q", ErrInvalidConfig, c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: LLM_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
