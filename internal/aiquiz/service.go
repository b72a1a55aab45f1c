package aiquiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/grammar-quiz-lambda/internal/config"
)

type Service interface {
	// GenerateQuestions returns the parsed questions, or a *GenerationError.
	GenerateQuestions(ctx context.Context, req GenerationRequest) (QuestionSet, error)
}

type service struct {
	provider     Provider
	strictSchema bool
}

func NewService(provider Provider, strictSchema bool) Service {
	return &service{provider: provider, strictSchema: strictSchema}
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerationRequest) (QuestionSet, error) {
	log := config.WithContext(ctx).WithField("generation_id", uuid.NewString())

	if s.provider == nil {
		return QuestionSet{}, NewConfigurationError()
	}

	log.WithField("unit", req.Unit).
		WithField("textbook", req.Textbook).
		WithField("count", req.Count.String()).
		Info("[AIQUIZ] Generating questions")

	raw, err := s.provider.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return QuestionSet{}, AsGenerationError(err)
	}

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Errorf("[AIQUIZ] Failed to decode JSON. Cleaned content:\n%s", StripFence(raw))
		return QuestionSet{}, NewParseError(err)
	}

	if s.strictSchema {
		if !questions.IsList() {
			return QuestionSet{}, NewParseError(fmt.Errorf("%w: expected a JSON array", ErrInvalidQuestion))
		}
		for i, q := range questions.Items {
			if err := q.Validate(); err != nil {
				return QuestionSet{}, NewParseError(fmt.Errorf("question %d: %w", i, err))
			}
		}
	}

	if !questions.IsList() {
		log.Warn("[AIQUIZ] Model output is not a JSON array, relaying it unchanged")
		return questions, nil
	}

	log.Infof("[AIQUIZ] Generated %d questions", len(questions.Items))
	return questions, nil
}
