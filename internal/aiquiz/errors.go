package aiquiz

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindMethod        ErrorKind = "method"
	KindConfiguration ErrorKind = "configuration"
	KindUpstream      ErrorKind = "upstream"
	KindParse         ErrorKind = "parse"
	KindUnknown       ErrorKind = "unknown"
)

const (
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageMissingAPIKey    = "APIキーが設定されていません。"
	MessageGenerationFailed = "問題の生成中にエラーが発生しました。"
)

var (
	ErrMissingAPIKey   = errors.New("gemini api key is not configured")
	ErrNullRequestBody = errors.New("request body is null")
)

// GenerationError is the failure side of a generation. Details is what the
// client sees in the "details" field.
type GenerationError struct {
	Kind    ErrorKind
	Details string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Details)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) StatusCode() int {
	if e.Kind == KindMethod {
		return http.StatusMethodNotAllowed
	}
	return http.StatusInternalServerError
}

func (e *GenerationError) Response() ErrorResponse {
	switch e.Kind {
	case KindMethod:
		return ErrorResponse{Error: MessageMethodNotAllowed}
	case KindConfiguration:
		return ErrorResponse{Error: MessageMissingAPIKey}
	default:
		return ErrorResponse{Error: MessageGenerationFailed, Details: e.Details}
	}
}

func NewMethodError(method string) *GenerationError {
	return &GenerationError{
		Kind: KindMethod,
		Err:  fmt.Errorf("method %s not allowed", method),
	}
}

func NewConfigurationError() *GenerationError {
	return &GenerationError{Kind: KindConfiguration, Err: ErrMissingAPIKey}
}

// NewUpstreamError reports a non-2xx answer from the generation service.
// body is the serialized error payload it sent back.
func NewUpstreamError(status int, body string) *GenerationError {
	return &GenerationError{
		Kind:    KindUpstream,
		Details: body,
		Err:     fmt.Errorf("gemini responded with status %d", status),
	}
}

func NewParseError(err error) *GenerationError {
	return &GenerationError{Kind: KindParse, Details: err.Error(), Err: err}
}

func NewUnknownError(err error) *GenerationError {
	return &GenerationError{Kind: KindUnknown, Details: err.Error(), Err: err}
}

// AsGenerationError returns err as a *GenerationError, classifying anything
// else as unknown.
func AsGenerationError(err error) *GenerationError {
	if err == nil {
		return nil
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	return NewUnknownError(err)
}
