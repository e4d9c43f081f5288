package cli

import (
	"reflect"
	"testing"
)

func resetFlags() {
	flagProvider = ""
	flagModel = ""
	flagFormat = ""
	flagOut = ""
	flagRubric = ""
	flagRetryBudget = 0
	flagTimeout = 0
	flagTemperature = 0
	flagSeed = 0
}

func TestBuildOverrides_Empty(t *testing.T) {
	resetFlags()
	if got := buildOverrides(); len(got) != 0 {
		t.Errorf("buildOverrides with no flags = %v, want empty", got)
	}
}

func TestBuildOverrides(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagProvider = "anthropic"
	flagModel = "claude-sonnet-4-6"
	flagFormat = "text"
	flagRubric = "rubric.yaml"
	flagRetryBudget = 3
	flagTimeout = 60
	flagTemperature = 0.7
	flagSeed = 42

	want := map[string]string{
		"provider":       "anthropic",
		"model":          "claude-sonnet-4-6",
		"format":         "text",
		"rubricFile":     "rubric.yaml",
		"retryBudget":    "3",
		"timeoutSeconds": "60",
		"temperature":    "0.7",
		"seed":           "42",
	}
	if got := buildOverrides(); !reflect.DeepEqual(got, want) {
		t.Errorf("buildOverrides = %v, want %v", got, want)
	}
}

func TestBuildOverrides_ZeroValuesOmitted(t *testing.T) {
	resetFlags()
	defer resetFlags()

	// Zero means "not set"; defaults and config file stay in charge.
	flagRetryBudget = 0
	flagTemperature = 0
	got := buildOverrides()
	if _, ok := got["retryBudget"]; ok {
		t.Error("retryBudget 0 should be omitted")
	}
	if _, ok := got["temperature"]; ok {
		t.Error("temperature 0 should be omitted")
	}
}

func TestExitCodes(t *testing.T) {
	// The pipeline's exit code contract.
	if ExitSuccess != 0 || ExitUsageError != 2 || ExitAuthError != 3 || ExitRuntimeError != 4 {
		t.Errorf("exit codes = %d %d %d %d, want 0 2 3 4",
			ExitSuccess, ExitUsageError, ExitAuthError, ExitRuntimeError)
	}
}
