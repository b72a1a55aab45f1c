package aiquiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
)

var ErrEmptyCandidate = errors.New("gemini response has no candidate text")

// Provider sends one prompt to the generation service and returns the raw
// text of its first candidate.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *generateContentResponse) firstText() (string, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	return r.Candidates[0].Content.Parts[0].Text, true
}

type restProvider struct {
	cfg    config.GeminiConfig
	client *http.Client
}

func NewRESTProvider(cfg config.GeminiConfig, client *http.Client) Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &restProvider{cfg: cfg, client: client}
}

func (p *restProvider) endpoint() string {
	base := strings.TrimRight(p.cfg.BaseURL, "/")
	query := url.Values{"key": []string{p.cfg.APIKey}}
	return fmt.Sprintf("%s/%s/models/%s:generateContent?%s", base, p.cfg.APIVersion, p.cfg.Model, query.Encode())
}

func (p *restProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		// url.Error carries the request URL, and with it the key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithField("status", resp.StatusCode).Warn("Gemini returned a non-success status")
		return "", NewUpstreamError(resp.StatusCode, serializeUpstreamBody(payload))
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	text, ok := decoded.firstText()
	if !ok {
		return "", ErrEmptyCandidate
	}

	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", text)
	return text, nil
}

// serializeUpstreamBody renders an error payload as compact JSON, or as
// trimmed text when it is not JSON.
func serializeUpstreamBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(body))
}
