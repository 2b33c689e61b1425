package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuiz godoc
// @Summary      Generate a quiz
// @Description  Generates a multiple choice quiz with the configured model, falling back to a pre-authored quiz when the model fails.
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request  body      QuizRequest  true  "Quiz request"
// @Success      200      {object}  Quiz
// @Failure      400      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /api/generate-quiz [post]
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz generation")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quiz, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			config.Error(w, http.StatusBadRequest, err.Error())
		case isExtractionError(err):
			config.Error(w, http.StatusInternalServerError, "invalid quiz returned by model: "+err.Error())
		default:
			log.WithError(err).Error("Failed to generate quiz")
			config.Error(w, http.StatusInternalServerError, "failed to generate quiz")
		}
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}
