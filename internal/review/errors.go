package review

import (
	"errors"
	"strings"
)

// GenerationError wraps a transport failure, timeout, rate-limit
// exhaustion, or a response body that cannot be parsed into any candidate
// shape at all. It is retried within the engine's budget, except when the
// wrapped cause is an authentication failure, which the engine treats as
// fatal.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError reports a parseable candidate record that failed contract
// coercion. Fields names the offending field paths. It is retried with
// corrective feedback within the engine's budget.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid candidate fields: " + strings.Join(e.Fields, ", ")
}

// ToolError reports a defect in a tool dispatch requested by the generation
// step: an unknown tool name or arguments the scanner cannot decode. The
// scanner itself is infallible by construction, so a ToolError is fatal and
// never retried.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return "tool " + e.Tool + ": " + e.Err.Error()
}

func (e *ToolError) Unwrap() error { return e.Err }

// IsRetryableFailure reports whether err is a generation or validation
// failure that the engine may retry with feedback.
func IsRetryableFailure(err error) bool {
	var ge *GenerationError
	var ve *ValidationError
	return errors.As(err, &ge) || errors.As(err, &ve)
}
