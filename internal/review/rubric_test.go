package review

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadRubric_EmptyPath(t *testing.T) {
	rubric, err := LoadRubric("")
	if err != nil {
		t.Fatalf("LoadRubric(\"\") error: %v", err)
	}
	if rubric != nil {
		t.Errorf("LoadRubric(\"\") = %+v, want nil", rubric)
	}
}

func TestLoadRubric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.yaml")
	content := `focus:
  - security
  - cost
scoringNotes:
  clarity: reward concrete numbers
classifications:
  domains:
    - infra
  types:
    - how-to
    - debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing rubric: %v", err)
	}

	rubric, err := LoadRubric(path)
	if err != nil {
		t.Fatalf("LoadRubric error: %v", err)
	}
	if !reflect.DeepEqual(rubric.Focus, []string{"security", "cost"}) {
		t.Errorf("Focus = %v", rubric.Focus)
	}
	if rubric.ScoringNotes["clarity"] != "reward concrete numbers" {
		t.Errorf("ScoringNotes = %v", rubric.ScoringNotes)
	}
	if !reflect.DeepEqual(rubric.Classifications.Types, []string{"how-to", "debug"}) {
		t.Errorf("Types = %v", rubric.Classifications.Types)
	}
}

func TestLoadRubric_Missing(t *testing.T) {
	if _, err := LoadRubric(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRubric_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("focus: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing rubric: %v", err)
	}
	if _, err := LoadRubric(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestBuildRubricPromptSection_Nil(t *testing.T) {
	if s := BuildRubricPromptSection(nil); s != "" {
		t.Errorf("BuildRubricPromptSection(nil) = %q, want empty", s)
	}
}
