package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ikTheProgrammer1/askbetter/internal/review"
)

// JSONWriter outputs the QuestionReview document itself. This is the
// compatibility contract consumed by downstream automation; stats stay out
// of it.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *review.Result) error {
	data, err := json.MarshalIndent(result.Review, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
