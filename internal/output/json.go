package output

import (
	"encoding/json"
	"io"

	"github.com/mortcalc/mortcalc/internal/domain"
)

// JSONFormatter writes the result as indented JSON. Detail units ride along
// explicitly so consumers never infer formatting from key names.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Write renders one result as JSON. A nil result encodes as null, matching
// the engine's empty-state sentinel.
func (jf *JSONFormatter) Write(w io.Writer, res *domain.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
