package aiquiz

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a Provider on top of the genai SDK. The SDK sends
// the key in a header rather than in the query string.
func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig, httpClient *http.Client) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: cfg.Model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini SDK call failed")
		return "", &GenerationError{Kind: KindUpstream, Details: err.Error(), Err: err}
	}

	raw, ok := firstPartText(result)
	if !ok {
		return "", ErrEmptyCandidate
	}

	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	return raw, nil
}

// firstPartText reads candidates[0].content.parts[0].text, the same field the
// REST provider uses. Later parts are ignored.
func firstPartText(result *genai.GenerateContentResponse) (string, bool) {
	if result == nil || len(result.Candidates) == 0 {
		return "", false
	}
	c := result.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 || c.Parts[0] == nil {
		return "", false
	}
	return c.Parts[0].Text, true
}
