package aiquiz_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/aiquiz"
)

func TestGenerationErrorMapping(t *testing.T) {
	parseErr := errors.New("unexpected end of JSON input")

	cases := []struct {
		name        string
		err         *aiquiz.GenerationError
		wantKind    aiquiz.ErrorKind
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{"Method", aiquiz.NewMethodError(http.MethodGet), aiquiz.KindMethod, http.StatusMethodNotAllowed, aiquiz.MessageMethodNotAllowed, ""},
		{"Configuration", aiquiz.NewConfigurationError(), aiquiz.KindConfiguration, http.StatusInternalServerError, aiquiz.MessageMissingAPIKey, ""},
		{"Upstream", aiquiz.NewUpstreamError(http.StatusBadRequest, `{"error":{"code":400}}`), aiquiz.KindUpstream, http.StatusInternalServerError, aiquiz.MessageGenerationFailed, `{"error":{"code":400}}`},
		{"Parse", aiquiz.NewParseError(parseErr), aiquiz.KindParse, http.StatusInternalServerError, aiquiz.MessageGenerationFailed, "unexpected end of JSON input"},
		{"Unknown", aiquiz.NewUnknownError(errors.New("boom")), aiquiz.KindUnknown, http.StatusInternalServerError, aiquiz.MessageGenerationFailed, "boom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", tc.err.Kind, tc.wantKind)
			}
			if got := tc.err.StatusCode(); got != tc.wantStatus {
				t.Errorf("status = %d, want %d", got, tc.wantStatus)
			}
			resp := tc.err.Response()
			if resp.Error != tc.wantError {
				t.Errorf("error = %q, want %q", resp.Error, tc.wantError)
			}
			if resp.Details != tc.wantDetails {
				t.Errorf("details = %q, want %q", resp.Details, tc.wantDetails)
			}
		})
	}

	t.Run("ParseUnwraps", func(t *testing.T) {
		if !errors.Is(aiquiz.NewParseError(parseErr), parseErr) {
			t.Error("parse error should unwrap to the parser error")
		}
	})
}

func TestAsGenerationError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		if aiquiz.AsGenerationError(nil) != nil {
			t.Error("nil should stay nil")
		}
	})

	t.Run("Wrapped", func(t *testing.T) {
		upstream := aiquiz.NewUpstreamError(http.StatusTooManyRequests, "quota")
		got := aiquiz.AsGenerationError(fmt.Errorf("calling gemini: %w", upstream))
		if got != upstream {
			t.Errorf("expected the wrapped upstream error, got %v", got)
		}
	})

	t.Run("Plain", func(t *testing.T) {
		got := aiquiz.AsGenerationError(errors.New("connection reset"))
		if got.Kind != aiquiz.KindUnknown || got.Details != "connection reset" {
			t.Errorf("unexpected classification: %+v", got)
		}
	})
}
