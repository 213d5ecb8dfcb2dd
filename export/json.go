package export

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tsawler/pdfoutline/model"
)

// WriteJSON writes the canonical JSON record, indented by two spaces
func WriteJSON(w io.Writer, result *model.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(record(result))
}

// EncodeJSON returns the canonical JSON record as written by WriteJSON
func EncodeJSON(result *model.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// record returns the value to encode; nil results encode as the
// degenerate record.
func record(result *model.AnalysisResult) *model.AnalysisResult {
	if result == nil {
		return model.DegenerateResult()
	}
	if result.Outline == nil {
		return model.NewAnalysisResult(result.Title, nil)
	}
	return result
}
