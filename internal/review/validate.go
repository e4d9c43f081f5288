package review

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// candidate is the untrusted JSON structure returned by the LLM. Fields use
// loose types so that shape problems inside an otherwise-parseable response
// surface as validation defects rather than parse failures.
type candidate struct {
	OriginalQuestion string `json:"original_question"`
	Classification   struct {
		Domain string `json:"domain"`
		Type   string `json:"type"`
	} `json:"classification"`
	Scores      map[string]any `json:"scores"`
	MissingInfo []any          `json:"missing_info"`
	Assumptions []any          `json:"assumptions"`
	Followups   []any          `json:"followups"`
	Rewrites    struct {
		Minimal string `json:"minimal"`
		Ideal   string `json:"ideal"`
	} `json:"rewrites"`
	Flags []any `json:"flags"`
}

// parseCandidate decodes a raw model reply into a candidate record. Markdown
// code fences are stripped first. A body that cannot be decoded at all is a
// generation failure, not a validation defect.
func parseCandidate(content string) (*candidate, error) {
	content = strings.TrimSpace(content)

	// Strip markdown code fences if present
	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) >= 2 {
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end = end - 1
			}
			content = strings.Join(lines[start:end], "\n")
		}
	}

	var c candidate
	if err := json.Unmarshal([]byte(content), &c); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	return &c, nil
}

// validateCandidate coerces an untrusted candidate into the output contract:
// scores clamped into [0,10], rewrites truncated at word boundaries, lists
// deduplicated then capped, unknown flags dropped. A field that cannot be
// coerced yields a ValidationError naming it.
func validateCandidate(c *candidate, question string) (*QuestionReview, error) {
	var defects []string

	review := &QuestionReview{
		OriginalQuestion: question,
	}

	review.Scores.Clarity = coerceScore(c.Scores, "clarity", &defects)
	review.Scores.Specificity = coerceScore(c.Scores, "specificity", &defects)
	review.Scores.Answerability = coerceScore(c.Scores, "answerability", &defects)
	review.Scores.Safety = coerceScore(c.Scores, "safety", &defects)

	domain := strings.TrimSpace(c.Classification.Domain)
	typ := strings.TrimSpace(c.Classification.Type)
	switch {
	case domain == "" && typ == "":
		defects = append(defects, "classification")
	case domain == "":
		defects = append(defects, "classification.domain")
	case typ == "":
		defects = append(defects, "classification.type")
	}
	review.Classification = Classification{Domain: domain, Type: typ}

	review.MissingInfo = normalizeList(c.MissingInfo, MaxMissingInfo)
	review.Assumptions = normalizeList(c.Assumptions, MaxAssumptions)
	review.Followups = normalizeList(c.Followups, MaxFollowups)

	review.Rewrites.Minimal = truncateAtWord(strings.TrimSpace(c.Rewrites.Minimal), MaxRewriteLen)
	review.Rewrites.Ideal = truncateAtWord(strings.TrimSpace(c.Rewrites.Ideal), MaxRewriteLen)

	review.Flags = normalizeFlags(c.Flags)

	if len(defects) > 0 {
		return nil, &ValidationError{Fields: defects}
	}
	return review, nil
}

// coerceScore clamps a present numeric score into [0,10]; an absent or
// non-numeric value is recorded as a defect.
func coerceScore(scores map[string]any, name string, defects *[]string) int {
	value, ok := scores[name]
	if !ok {
		*defects = append(*defects, "scores."+name)
		return 0
	}
	n, ok := value.(float64)
	if !ok {
		*defects = append(*defects, "scores."+name)
		return 0
	}
	return clampScore(int(math.Round(n)))
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

// normalizeList keeps string entries, trims whitespace, deduplicates
// case-insensitively preserving first occurrence, and caps at max entries in
// original order. The generation step emits highest-priority items first, so
// first-N is the right cut.
func normalizeList(entries []any, max int) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
		if len(out) == max {
			break
		}
	}
	return out
}

// normalizeFlags lower-cases tags, intersects with the known vocabulary,
// and deduplicates. Unknown tags are dropped rather than rejected.
func normalizeFlags(entries []any) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, e := range entries {
		s, ok := e.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if !KnownFlag(s) || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return flagRank[out[i]] < flagRank[out[j]]
	})
	return out
}

// truncateAtWord cuts s to at most max characters without splitting a word:
// the cut lands on the nearest word boundary before the cap. A single token
// longer than the cap is cut hard, since no boundary exists.
func truncateAtWord(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	cut := string(runes[:max])
	// A word ending exactly at the cap is kept whole.
	if !isSpaceRune(runes[max]) {
		if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " \t\n")
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
