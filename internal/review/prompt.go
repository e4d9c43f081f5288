package review

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a strict question reviewer. Your job is to assess a user's question and produce a structured QuestionReview in JSON format.

Rules:
1. Fill "classification" with a short "domain" (e.g. coding, data, business, other) and "type" (e.g. how-to, debug, design, fact, other). Both must be non-empty.
2. Fill "scores" with integer 0-10 ratings for "clarity", "specificity", "answerability", and "safety". All four are required.
3. Fill "missing_info" with the essentials needed to answer, highest priority first (max 6).
4. Fill "assumptions" with the reasonable defaults you would make (max 6).
5. Fill "followups" with short, targeted questions (max 5).
6. Fill "rewrites" with a "minimal" edit and an "ideal" rewrite of the question (max 280 characters each).
7. Call pii_scan with the original question text and copy its result into "flags". Add "vague" or "unsafe" to "flags" when warranted. Never invent other tags.
8. Copy the question verbatim into "original_question".

You MUST respond with ONLY a JSON object. No markdown, no explanation, no preamble.

The object must have this exact structure:
{
  "original_question": "the question verbatim",
  "classification": {"domain": "coding", "type": "debug"},
  "scores": {"clarity": 0, "specificity": 0, "answerability": 0, "safety": 0},
  "missing_info": ["highest priority first"],
  "assumptions": ["reasonable defaults"],
  "followups": ["short targeted questions"],
  "rewrites": {"minimal": "minimal edit", "ideal": "ideal rewrite"},
  "flags": []
}`

// SystemPrompt returns the fixed rubric sent as the system prompt.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt constructs the user prompt from the question, an optional
// rubric pack, and corrective feedback accumulated from failed attempts.
func BuildUserPrompt(question string, rubric *Rubric, feedback []string) string {
	var b strings.Builder

	b.WriteString("Review the following question.\n")

	if section := BuildRubricPromptSection(rubric); section != "" {
		b.WriteString(section)
	}

	if len(feedback) > 0 {
		b.WriteString("\nYour previous attempt(s) failed. Correct the following and resend the complete JSON object:\n")
		for _, f := range feedback {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	b.WriteString("\n--- BEGIN QUESTION ---\n")
	b.WriteString(question)
	b.WriteString("\n--- END QUESTION ---\n")

	return b.String()
}
