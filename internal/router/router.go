package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/aiquiz"
	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
	"github.com/saulo-duarte/grammar-quiz-lambda/internal/middlewares"
)

type RouterConfig struct {
	AIQuizHandler     *aiquiz.Handler
	CorsAllowedOrigin string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsAllowedOrigin))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusMethodNotAllowed, aiquiz.NewMethodError(r.Method).Response())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/api/generate-questions", aiquiz.Routes(cfg.AIQuizHandler))

	return r
}
