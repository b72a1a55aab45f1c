package aiquiz

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
)

type AIQuizContainer struct {
	Provider Provider
	Service  Service
	Handler  *Handler
}

// NewAIQuizContainer wires provider, service and handler. Without an API key
// no provider is built; the handler reports the missing key per request.
func NewAIQuizContainer(ctx context.Context, cfg *config.AppConfig, httpClient *http.Client) (*AIQuizContainer, error) {
	var provider Provider
	if cfg.Gemini.APIKey != "" {
		switch cfg.Gemini.Transport {
		case config.TransportSDK:
			p, err := NewGeminiProvider(ctx, cfg.Gemini, httpClient)
			if err != nil {
				return nil, err
			}
			provider = p
		default:
			provider = NewRESTProvider(cfg.Gemini, httpClient)
		}
	}

	service := NewService(provider, cfg.StrictSchema)
	handler := NewHandler(service, cfg.Gemini)

	return &AIQuizContainer{
		Provider: provider,
		Service:  service,
		Handler:  handler,
	}, nil
}
