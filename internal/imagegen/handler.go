package imagegen

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

// GenerateImage godoc
// @Summary      Generate an illustration
// @Description  Generates an image for a prompt with DALL-E, or returns a placeholder image URL.
// @Tags         image
// @Accept       json
// @Produce      json
// @Param        request  body      ImageRequest  true  "Image request"
// @Success      200      {object}  ImageResponse
// @Failure      400      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /api/generate-image [post]
func (h *Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.GenerateImage(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPromptRequired):
			config.Error(w, http.StatusBadRequest, "Prompt is required")
		case errors.Is(err, ErrInvalidProvider):
			config.Error(w, http.StatusBadRequest, "Invalid provider")
		default:
			log.WithError(err).Error("Image generation error")
			config.Error(w, http.StatusInternalServerError, "Failed to generate image")
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
