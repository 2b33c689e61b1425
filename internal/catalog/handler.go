package catalog

import (
	"net/http"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

type TopicsResponse struct {
	Topics []string `json:"topics"`
}

type DifficultiesResponse struct {
	Difficulties []string `json:"difficulties"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListTopics godoc
// @Summary  Suggested quiz topics
// @Tags     catalog
// @Produce  json
// @Param    q    query     string  false  "Fuzzy filter"
// @Success  200  {object}  TopicsResponse
// @Router   /api/topics [get]
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := SearchTopics(r.URL.Query().Get("q"))
	if topics == nil {
		topics = []string{}
	}
	config.JSON(w, http.StatusOK, TopicsResponse{Topics: topics})
}

// ListDifficulties godoc
// @Summary  Available difficulty levels
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  DifficultiesResponse
// @Router   /api/difficulties [get]
func (h *Handler) ListDifficulties(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, DifficultiesResponse{Difficulties: Difficulties})
}
