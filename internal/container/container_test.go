package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:      "8000",
		LogLevel:  "error",
		LogFormat: "text",
		LLM: config.LLMConfig{
			Provider: config.ProviderNone,
			Timeout:  time.Second,
		},
		Image:              config.ImageConfig{Model: "dall-e-3", Timeout: time.Second},
		MaxQuestions:       20,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewWithoutAuth(t *testing.T) {
	c, err := New(context.Background(), testConfig())
	require.NoError(t, err)
	require.Nil(t, c.Auth)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"topic":"Music History","num_questions":1}`))
	c.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Music History Quiz")
}

func TestNewWithAuth(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "container-secret"

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, c.Auth)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(`{"topic":"Music History"}`))
	c.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewUnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.Provider = "mystery"

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}
