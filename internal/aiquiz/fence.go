package aiquiz

import (
	"encoding/json"
	"strings"
)

const (
	jsonFenceOpen  = "```json\n"
	jsonFenceClose = "\n```"
)

// StripFence removes one leading "```json\n" and one trailing "\n```" from
// the model output. Only these exact literals are recognized; text without
// them is returned unchanged.
func StripFence(text string) string {
	text = strings.TrimPrefix(text, jsonFenceOpen)
	return strings.TrimSuffix(text, jsonFenceClose)
}

// ParseQuestions decodes the model output after fence stripping. Only text
// that is not valid JSON is an error; a non-array value is kept as is.
func ParseQuestions(text string) (QuestionSet, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(StripFence(text)), &raw); err != nil {
		return QuestionSet{}, err
	}

	if raw[0] != '[' {
		return QuestionSet{Other: raw}, nil
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return QuestionSet{}, err
	}
	return QuestionSet{Items: questions}, nil
}
