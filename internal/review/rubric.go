package review

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rubric is an optional tuning pack loaded from --rubric. It steers the
// generation step's focus and vocabularies without changing the output
// contract.
type Rubric struct {
	Focus           []string          `yaml:"focus,omitempty"`
	ScoringNotes    map[string]string `yaml:"scoringNotes,omitempty"`
	Classifications struct {
		Domains []string `yaml:"domains,omitempty"`
		Types   []string `yaml:"types,omitempty"`
	} `yaml:"classifications,omitempty"`
}

// LoadRubric loads a rubric file from disk. Returns nil Rubric and nil error
// if path is empty.
func LoadRubric(path string) (*Rubric, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rubric file: %w", err)
	}
	var rubric Rubric
	if err := yaml.Unmarshal(data, &rubric); err != nil {
		return nil, fmt.Errorf("parsing rubric file: %w", err)
	}
	return &rubric, nil
}

// BuildRubricPromptSection returns additional prompt instructions derived
// from the rubric.
func BuildRubricPromptSection(rubric *Rubric) string {
	if rubric == nil {
		return ""
	}

	var b strings.Builder

	if len(rubric.Focus) > 0 {
		fmt.Fprintf(&b, "\nFocus areas: %s. Weight these when scoring and listing missing information.\n",
			strings.Join(rubric.Focus, ", "))
	}

	if len(rubric.ScoringNotes) > 0 {
		b.WriteString("\nScoring guidance:\n")
		for _, name := range []string{"clarity", "specificity", "answerability", "safety"} {
			if note, ok := rubric.ScoringNotes[name]; ok {
				fmt.Fprintf(&b, "- %s: %s\n", name, note)
			}
		}
	}

	if len(rubric.Classifications.Domains) > 0 {
		fmt.Fprintf(&b, "\nPreferred domain tags: %s.\n", strings.Join(rubric.Classifications.Domains, ", "))
	}
	if len(rubric.Classifications.Types) > 0 {
		fmt.Fprintf(&b, "Preferred type tags: %s.\n", strings.Join(rubric.Classifications.Types, ", "))
	}

	return b.String()
}
