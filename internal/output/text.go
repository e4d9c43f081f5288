package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ikTheProgrammer1/askbetter/internal/review"
)

// TextWriter outputs a human-readable review summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, result *review.Result) error {
	ew := &errWriter{w: w}
	r := result.Review

	ew.printf("Question Review: %s/%s\n", r.Classification.Domain, r.Classification.Type)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Question: %s\n", r.OriginalQuestion)
	ew.println("")
	ew.printf("Scores: clarity %d/10 | specificity %d/10 | answerability %d/10 | safety %d/10\n",
		r.Scores.Clarity, r.Scores.Specificity, r.Scores.Answerability, r.Scores.Safety)

	if len(r.Flags) > 0 {
		ew.printf("Flags: %s\n", strings.Join(r.Flags, ", "))
	}

	writeList(ew, "Missing information", r.MissingInfo)
	writeList(ew, "Assumptions", r.Assumptions)
	writeList(ew, "Follow-up questions", r.Followups)

	if r.Rewrites.Minimal != "" || r.Rewrites.Ideal != "" {
		ew.println("\nRewrites:")
		if r.Rewrites.Minimal != "" {
			for _, line := range wrapText(r.Rewrites.Minimal, 70) {
				ew.printf("  minimal: %s\n", line)
			}
		}
		if r.Rewrites.Ideal != "" {
			for _, line := range wrapText(r.Rewrites.Ideal, 70) {
				ew.printf("  ideal:   %s\n", line)
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms (%d attempt(s), %d tokens)\n",
		result.LLMMs, result.Attempts, result.TokensUsed)

	return ew.err
}

func writeList(ew *errWriter, label string, entries []string) {
	if len(entries) == 0 {
		return
	}
	ew.printf("\n%s:\n", label)
	for i, e := range entries {
		ew.printf("  %d. %s\n", i+1, e)
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
