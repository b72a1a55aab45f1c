package aiquiz_test

import (
	"encoding/json"
	"testing"

	"github.com/saulo-duarte/grammar-quiz-lambda/internal/aiquiz"
)

func TestStripFence(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Fenced", "```json\n[{\"id\":1}]\n```", `[{"id":1}]`},
		{"Bare", `[{"id":1}]`, `[{"id":1}]`},
		{"OnlyLeading", "```json\n[]", "[]"},
		{"OnlyTrailing", "[]\n```", "[]"},
		{"UntaggedFenceKept", "```\n[]\n```", "```\n[]"},
		{"TrailingNewlineAfterFence", "```json\n[]\n```\n", "[]\n```\n"},
		{"StripsOnlyOnce", "```json\n```json\n[]\n```\n```", "```json\n[]\n```"},
		{"Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := aiquiz.StripFence(tc.in); got != tc.want {
				t.Errorf("StripFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseQuestions(t *testing.T) {
	t.Run("FencedAndBareMatch", func(t *testing.T) {
		bare := `[{"id":1,"type":"fill-in","question":"I ( ) a student.","answer":"am","translation":"私は学生です。","unit":"be動詞"}]`

		fenced, err := aiquiz.ParseQuestions("```json\n" + bare + "\n```")
		if err != nil {
			t.Fatalf("fenced parse failed: %v", err)
		}
		plain, err := aiquiz.ParseQuestions(bare)
		if err != nil {
			t.Fatalf("bare parse failed: %v", err)
		}

		if !fenced.IsList() || !plain.IsList() {
			t.Fatal("both payloads should decode as lists")
		}
		if len(fenced.Items) != 1 || len(plain.Items) != 1 {
			t.Fatalf("expected one question each, got %d and %d", len(fenced.Items), len(plain.Items))
		}
		if fenced.Items[0].Answer != "am" || plain.Items[0].Answer != "am" {
			t.Errorf("unexpected answers: %q / %q", fenced.Items[0].Answer, plain.Items[0].Answer)
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		if _, err := aiquiz.ParseQuestions("```json\nnot json\n```"); err == nil {
			t.Fatal("expected a parse error")
		}
	})

	t.Run("ObjectKeptAsIs", func(t *testing.T) {
		set, err := aiquiz.ParseQuestions("```json\n{\"questions\":[{\"id\":1}]}\n```")
		if err != nil {
			t.Fatalf("valid JSON object should not be a parse error: %v", err)
		}
		if set.IsList() {
			t.Fatal("object payload should not be reported as a list")
		}
		out, err := json.Marshal(set)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(out) != `{"questions":[{"id":1}]}` {
			t.Errorf("object was not relayed unchanged: %s", out)
		}
	})

	t.Run("NullKeptAsIs", func(t *testing.T) {
		set, err := aiquiz.ParseQuestions("null")
		if err != nil {
			t.Fatalf("null should not be a parse error: %v", err)
		}
		out, _ := json.Marshal(set)
		if string(out) != "null" {
			t.Errorf("got %s, want null", out)
		}
	})

	t.Run("EmptyArray", func(t *testing.T) {
		set, err := aiquiz.ParseQuestions("[]")
		if err != nil {
			t.Fatalf("ParseQuestions failed: %v", err)
		}
		out, _ := json.Marshal(set)
		if !set.IsList() || string(out) != "[]" {
			t.Errorf("got %s, want []", out)
		}
	})
}
