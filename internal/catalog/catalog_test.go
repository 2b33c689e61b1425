package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchTopics(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains []string
		excludes []string
	}{
		{name: "empty query returns all", query: "", contains: Topics},
		{name: "case insensitive", query: "MATH", contains: []string{"Mathematics"}, excludes: []string{"Oceanography"}},
		{name: "subsequence", query: "astro", contains: []string{"Space and Astronomy"}, excludes: []string{"Mathematics"}},
		{name: "no match", query: "zzzz", excludes: Topics},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchTopics(tt.query)
			for _, c := range tt.contains {
				require.Contains(t, got, c)
			}
			for _, e := range tt.excludes {
				require.NotContains(t, got, e)
			}
		})
	}
}

func TestSearchTopicsDoesNotAliasCatalog(t *testing.T) {
	got := SearchTopics("")
	got[0] = "changed"
	require.Equal(t, "Historical Events", Topics[0])
}

func TestIsKnownDifficulty(t *testing.T) {
	require.True(t, IsKnownDifficulty("easy"))
	require.True(t, IsKnownDifficulty("HARD"))
	require.False(t, IsKnownDifficulty("nightmare"))
}

func TestHandlers(t *testing.T) {
	h := NewHandler()

	t.Run("topics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ListTopics(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TopicsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Topics, 15)
	})

	t.Run("topics without match", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ListTopics(rec, httptest.NewRequest(http.MethodGet, "/api/topics?q=zzzz", nil))
		require.JSONEq(t, `{"topics":[]}`, rec.Body.String())
	})

	t.Run("difficulties", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ListDifficulties(rec, httptest.NewRequest(http.MethodGet, "/api/difficulties", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"difficulties":["easy","medium","hard"]}`, rec.Body.String())
	})
}
