package review

import (
	"strings"
	"testing"
)

func TestSystemPrompt(t *testing.T) {
	p := SystemPrompt()
	for _, want := range []string{
		"pii_scan",
		"original_question",
		"classification",
		"scores",
		"rewrites",
		"ONLY a JSON object",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildUserPrompt(t *testing.T) {
	p := BuildUserPrompt("How do I center a div?", nil, nil)
	if !strings.Contains(p, "--- BEGIN QUESTION ---") || !strings.Contains(p, "--- END QUESTION ---") {
		t.Error("prompt missing question delimiters")
	}
	if !strings.Contains(p, "How do I center a div?") {
		t.Error("prompt missing the question")
	}
	if strings.Contains(p, "previous attempt") {
		t.Error("prompt mentions feedback with none given")
	}
}

func TestBuildUserPrompt_Feedback(t *testing.T) {
	feedback := []string{
		"invalid candidate fields: classification",
		"invalid candidate fields: scores.safety",
	}
	p := BuildUserPrompt("q", nil, feedback)
	if !strings.Contains(p, "previous attempt(s) failed") {
		t.Error("prompt missing feedback preamble")
	}
	for _, f := range feedback {
		if !strings.Contains(p, "- "+f) {
			t.Errorf("prompt missing feedback line %q", f)
		}
	}
}

func TestBuildUserPrompt_Rubric(t *testing.T) {
	rubric := &Rubric{
		Focus:        []string{"security", "performance"},
		ScoringNotes: map[string]string{"safety": "penalize destructive requests"},
	}
	rubric.Classifications.Domains = []string{"infra", "data"}

	p := BuildUserPrompt("q", rubric, nil)
	if !strings.Contains(p, "Focus areas: security, performance") {
		t.Error("prompt missing focus areas")
	}
	if !strings.Contains(p, "safety: penalize destructive requests") {
		t.Error("prompt missing scoring note")
	}
	if !strings.Contains(p, "Preferred domain tags: infra, data") {
		t.Error("prompt missing domain tags")
	}
}
