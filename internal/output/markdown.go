package output

import (
	"io"
	"strings"

	"github.com/ikTheProgrammer1/askbetter/internal/review"
)

// MarkdownWriter outputs the review as a markdown document.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *review.Result) error {
	ew := &errWriter{w: w}
	r := result.Review

	ew.println("# Question Review")
	ew.println("")
	ew.printf("> %s\n", r.OriginalQuestion)
	ew.println("")
	ew.printf("**Classification:** %s / %s\n", r.Classification.Domain, r.Classification.Type)
	ew.println("")
	ew.println("| Score | Value |")
	ew.println("| --- | --- |")
	ew.printf("| Clarity | %d/10 |\n", r.Scores.Clarity)
	ew.printf("| Specificity | %d/10 |\n", r.Scores.Specificity)
	ew.printf("| Answerability | %d/10 |\n", r.Scores.Answerability)
	ew.printf("| Safety | %d/10 |\n", r.Scores.Safety)

	if len(r.Flags) > 0 {
		ew.println("")
		ew.printf("**Flags:** `%s`\n", strings.Join(r.Flags, "`, `"))
	}

	writeMarkdownList(ew, "Missing information", r.MissingInfo)
	writeMarkdownList(ew, "Assumptions", r.Assumptions)
	writeMarkdownList(ew, "Follow-up questions", r.Followups)

	ew.println("")
	ew.println("## Rewrites")
	ew.println("")
	ew.printf("**Minimal:** %s\n", r.Rewrites.Minimal)
	ew.println("")
	ew.printf("**Ideal:** %s\n", r.Rewrites.Ideal)

	return ew.err
}

func writeMarkdownList(ew *errWriter, label string, entries []string) {
	if len(entries) == 0 {
		return
	}
	ew.println("")
	ew.printf("## %s\n", label)
	ew.println("")
	for _, e := range entries {
		ew.printf("- %s\n", e)
	}
}
