package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/quiz-generator/docs"
	"github.com/saulo-duarte/quiz-generator/internal/aiquiz"
	"github.com/saulo-duarte/quiz-generator/internal/auth"
	"github.com/saulo-duarte/quiz-generator/internal/catalog"
	"github.com/saulo-duarte/quiz-generator/internal/health"
	"github.com/saulo-duarte/quiz-generator/internal/imagegen"
	"github.com/saulo-duarte/quiz-generator/internal/middlewares"
)

type RouterConfig struct {
	HealthHandler   *health.Handler
	AIQuizHandler   *aiquiz.Handler
	CatalogHandler  *catalog.Handler
	ImageGenHandler *imagegen.Handler
	// Auth is optional. When nil the generation routes are open.
	Auth           *auth.Authenticator
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", cfg.HealthHandler.Root)
	r.Get("/health", cfg.HealthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", cfg.HealthHandler.APIHealth)
		r.Get("/topics", cfg.CatalogHandler.ListTopics)
		r.Get("/difficulties", cfg.CatalogHandler.ListDifficulties)

		r.Group(func(r chi.Router) {
			if cfg.Auth != nil {
				r.Use(cfg.Auth.Middleware)
			}

			r.Mount("/generate-quiz", aiquiz.Routes(cfg.AIQuizHandler))
			r.Mount("/generate-image", imagegen.Routes(cfg.ImageGenHandler))
		})
	})
	return r
}
