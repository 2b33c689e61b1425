package health

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/quiz-generator/internal/config"
)

const ServiceName = "quiz-generator"

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type APIStatusResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// Root godoc
// @Summary  Service banner
// @Tags     health
// @Produce  json
// @Success  200  {object}  RootResponse
// @Router   / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, RootResponse{Message: "Quiz Generator API", Status: "running"})
}

// Health godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  StatusResponse
// @Router   /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, StatusResponse{Status: "healthy", Service: ServiceName})
}

// APIHealth godoc
// @Summary  API health with server time
// @Tags     health
// @Produce  json
// @Success  200  {object}  APIStatusResponse
// @Router   /api/health [get]
func (h *Handler) APIHealth(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, APIStatusResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
