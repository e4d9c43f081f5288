package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ikTheProgrammer1/askbetter/internal/review"
)

func sampleResult() *review.Result {
	return &review.Result{
		Review: &review.QuestionReview{
			OriginalQuestion: "How do I speed up my Postgres query?",
			Classification:   review.Classification{Domain: "coding", Type: "debug"},
			Scores: review.Scores{
				Clarity: 7, Specificity: 5, Answerability: 8, Safety: 10,
			},
			MissingInfo: []string{"table size", "existing indexes"},
			Assumptions: []string{"Postgres 16"},
			Followups:   []string{"What does EXPLAIN ANALYZE show?"},
			Rewrites: review.Rewrites{
				Minimal: "How do I speed up this Postgres query?",
				Ideal:   "How do I speed up this Postgres query on a 10M row table with no indexes?",
			},
			Flags: []string{"email", "vague"},
		},
		Attempts:   2,
		TokensUsed: 840,
		LLMMs:      1530,
	}
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"text", false},
		{"markdown", false},
		{"md", false},
		{"yaml", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			_, err := GetWriter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	// The JSON format is the review record alone, no stats envelope.
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	wantKeys := []string{
		"original_question", "classification", "scores",
		"missing_info", "assumptions", "followups", "rewrites", "flags",
	}
	for _, k := range wantKeys {
		if _, ok := decoded[k]; !ok {
			t.Errorf("output missing key %q", k)
		}
	}
	if _, ok := decoded["attempts"]; ok {
		t.Error("output contains stats, want review record only")
	}

	var roundTrip review.QuestionReview
	if err := json.Unmarshal(buf.Bytes(), &roundTrip); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if !reflect.DeepEqual(&roundTrip, sampleResult().Review) {
		t.Errorf("round trip = %+v", roundTrip)
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"coding/debug",
		"How do I speed up my Postgres query?",
		"clarity 7/10",
		"safety 10/10",
		"Flags: email, vague",
		"Missing information",
		"1. table size",
		"2 attempt(s), 840 tokens",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
}

func TestTextWriter_EmptyRewritesOmitted(t *testing.T) {
	result := sampleResult()
	result.Review.Rewrites = review.Rewrites{}

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, result); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	for _, banned := range []string{"Rewrites:", "minimal:", "ideal:"} {
		if strings.Contains(out, banned) {
			t.Errorf("text output contains %q for empty rewrites\n%s", banned, out)
		}
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Question Review",
		"**Classification:** coding / debug",
		"| Clarity | 7/10 |",
		"**Flags:** `email`, `vague`",
		"## Rewrites",
		"- table size",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestWriteResult_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.json")
	if err := WriteResult(sampleResult(), "json", path); err != nil {
		t.Fatalf("WriteResult error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	var decoded review.QuestionReview
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output file is not valid JSON: %v", err)
	}
	if decoded.OriginalQuestion != "How do I speed up my Postgres query?" {
		t.Errorf("OriginalQuestion = %q", decoded.OriginalQuestion)
	}
}

func TestWriteResult_BadFormat(t *testing.T) {
	if err := WriteResult(sampleResult(), "csv", ""); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if got := strings.Join(lines, " "); got != "one two three four five six seven eight nine ten" {
		t.Errorf("wrapped text lost words: %q", got)
	}
}
