package aiquiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type QuestionType string

const (
	QuestionTypeChoice     QuestionType = "choice"
	QuestionTypeReorder    QuestionType = "reorder"
	QuestionTypeFormChange QuestionType = "form-change"
	QuestionTypeFillIn     QuestionType = "fill-in"
)

var AllQuestionTypes = []QuestionType{
	QuestionTypeChoice,
	QuestionTypeReorder,
	QuestionTypeFormChange,
	QuestionTypeFillIn,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}

const choiceOptionCount = 3

var ErrInvalidQuestion = errors.New("invalid question")

// Count is the requested number of questions. Strings are kept as sent;
// numbers are normalized to the way a browser prints them.
type Count string

func (c *Count) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Count(s)
	default:
		if n, ok := formatNumber(b); ok {
			*c = Count(n)
			return nil
		}
		*c = Count(b)
	}
	return nil
}

// formatNumber renders a JSON number the way a browser would print it:
// 1.0 is "1", 1e21 is "1e+21", 1e-7 is "1e-7".
func formatNumber(lit []byte) (string, bool) {
	if len(lit) == 0 || (lit[0] != '-' && (lit[0] < '0' || lit[0] > '9')) {
		return "", false
	}
	f, err := strconv.ParseFloat(string(lit), 64)
	if err != nil {
		return "", false
	}
	if f == 0 {
		return "0", true
	}

	abs := math.Abs(f)
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1), true
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

func (c Count) String() string {
	return string(c)
}

type GenerationRequest struct {
	Unit     string `json:"unit"`
	Textbook string `json:"textbook"`
	Count    Count  `json:"count"`
}

// Prompt is the "question" field of a Question: plain text, or the word
// tokens of a reorder exercise.
type Prompt struct {
	Text   string
	Tokens []string
}

func (p Prompt) IsTokens() bool {
	return p.Tokens != nil
}

func (p Prompt) IsEmpty() bool {
	return p.Text == "" && len(p.Tokens) == 0
}

func (p *Prompt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	// Anything else leaves the prompt empty instead of aborting the decode of
	// the surrounding question.
	*p = Prompt{}
	if len(b) > 0 && b[0] == '[' {
		tokens := []string{}
		if err := json.Unmarshal(b, &tokens); err == nil {
			p.Tokens = tokens
		}
		return nil
	}
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		p.Text = text
	}
	return nil
}

func (p Prompt) MarshalJSON() ([]byte, error) {
	if p.IsTokens() {
		return json.Marshal(p.Tokens)
	}
	return json.Marshal(p.Text)
}

// Question is one generated exercise. A decoded Question remembers the JSON
// it came from and encodes back to exactly that, so whatever the model
// produced reaches the client untouched even when the typed fields could not
// all be filled.
type Question struct {
	ID          int          `json:"id"`
	Type        QuestionType `json:"type"`
	Question    Prompt       `json:"question"`
	Options     []string     `json:"options,omitempty"`
	Answer      string       `json:"answer"`
	Translation string       `json:"translation"`
	Unit        string       `json:"unit"`

	raw json.RawMessage
}

type questionFields Question

func (q *Question) UnmarshalJSON(b []byte) error {
	var fields questionFields
	// Type mismatches leave the affected fields zeroed; the raw payload is
	// what gets relayed.
	_ = json.Unmarshal(b, &fields)

	*q = Question(fields)
	q.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (q Question) MarshalJSON() ([]byte, error) {
	if len(q.raw) > 0 {
		return q.raw, nil
	}
	return json.Marshal(questionFields(q))
}

// Validate checks the question against the schema the prompt asks for.
func (q Question) Validate() error {
	if !q.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidQuestion, q.Type)
	}
	if q.Question.IsEmpty() {
		return fmt.Errorf("%w: empty question", ErrInvalidQuestion)
	}
	if q.Answer == "" {
		return fmt.Errorf("%w: empty answer", ErrInvalidQuestion)
	}

	switch q.Type {
	case QuestionTypeChoice:
		if len(q.Options) != choiceOptionCount {
			return fmt.Errorf("%w: choice needs %d options, got %d", ErrInvalidQuestion, choiceOptionCount, len(q.Options))
		}
		if q.Question.IsTokens() {
			return fmt.Errorf("%w: choice question must be text", ErrInvalidQuestion)
		}
	case QuestionTypeReorder:
		if !q.Question.IsTokens() {
			return fmt.Errorf("%w: reorder question must be a token list", ErrInvalidQuestion)
		}
	}
	return nil
}

// QuestionSet is what the model returned: normally a list of questions, but
// any other JSON value it produced is kept in Other and relayed unchanged.
type QuestionSet struct {
	Items []Question
	Other json.RawMessage
}

func (s QuestionSet) IsList() bool {
	return s.Other == nil
}

func (s QuestionSet) MarshalJSON() ([]byte, error) {
	if s.Other != nil {
		return s.Other, nil
	}
	if s.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Items)
}

type QuestionResponse struct {
	Questions QuestionSet `json:"questions"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
