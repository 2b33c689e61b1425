package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	h := &Handler{now: func() time.Time { return fixed }}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{name: "root", handler: h.Root, want: `{"message":"Quiz Generator API","status":"running"}`},
		{name: "health", handler: h.Health, want: `{"status":"healthy","service":"quiz-generator"}`},
		{name: "api health", handler: h.APIHealth, want: `{"status":"OK","timestamp":"2024-03-01T12:30:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestNewHandlerUsesWallClock(t *testing.T) {
	before := time.Now().Add(-time.Second)
	got := NewHandler().now()
	require.True(t, got.After(before))
}
