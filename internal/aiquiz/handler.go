package aiquiz

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service       Service
	apiKeyPresent bool
}

func NewHandler(s Service, cfg config.GeminiConfig) *Handler {
	return &Handler{service: s, apiKeyPresent: cfg.APIKey != ""}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if r.Method != http.MethodPost {
		h.fail(w, log, NewMethodError(r.Method))
		return
	}

	if !h.apiKeyPresent {
		h.fail(w, log, NewConfigurationError())
		return
	}

	var req *GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, log, NewUnknownError(fmt.Errorf("invalid request body: %w", err)))
		return
	}
	if req == nil {
		h.fail(w, log, NewUnknownError(ErrNullRequestBody))
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), *req)
	if err != nil {
		h.fail(w, log, AsGenerationError(err))
		return
	}

	config.JSON(w, http.StatusOK, QuestionResponse{Questions: questions})
}

func (h *Handler) fail(w http.ResponseWriter, log *logrus.Entry, genErr *GenerationError) {
	entry := log.WithError(genErr).WithField("kind", genErr.Kind)
	switch genErr.Kind {
	case KindMethod:
		entry.Warn("Rejected request with unsupported method")
	case KindConfiguration:
		entry.Error("GEMINI_API_KEY is not set")
	default:
		entry.Error("Failed to generate questions")
	}

	config.JSON(w, genErr.StatusCode(), genErr.Response())
}
