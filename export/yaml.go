package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pdfoutline/model"
)

// WriteYAML writes the record as YAML, indented by two spaces
func WriteYAML(w io.Writer, result *model.AnalysisResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(record(result)); err != nil {
		return err
	}
	return enc.Close()
}
