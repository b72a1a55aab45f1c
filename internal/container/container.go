package container

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/aiquiz"
	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
	"github.com/saulo-duarte/grammar-quiz-lambda/internal/router"
)

type Container struct {
	Config          *config.AppConfig
	AIQuizContainer *aiquiz.AIQuizContainer
	Router          *chi.Mux
}

func New(ctx context.Context, cfg *config.AppConfig) (*Container, error) {
	config.Init(cfg.LogLevel)

	aiQuizContainer, err := aiquiz.NewAIQuizContainer(ctx, cfg, http.DefaultClient)
	if err != nil {
		return nil, err
	}

	if cfg.Gemini.APIKey == "" {
		config.Logger.Warn("GEMINI_API_KEY is not set; generation requests will fail")
	}

	r := router.New(router.RouterConfig{
		AIQuizHandler:     aiQuizContainer.Handler,
		CorsAllowedOrigin: cfg.CorsAllowedOrigin,
	})

	return &Container{
		Config:          cfg,
		AIQuizContainer: aiQuizContainer,
		Router:          r,
	}, nil
}
