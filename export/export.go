package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tsawler/pdfoutline/model"
)

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// Validate checks the record against the outline schema before writing
	Validate bool
}

// DefaultConfig returns the configuration for the canonical JSON record
func DefaultConfig() Config {
	return Config{
		Format:   FormatJSON,
		Validate: true,
	}
}

// Write encodes result to w in the given format
func Write(w io.Writer, format Format, result *model.AnalysisResult) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatYAML:
		return WriteYAML(w, result)
	case FormatHTML:
		return WriteHTML(w, result)
	case FormatXLSX:
		return WriteXLSX(w, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile writes result to path, creating parent directories as needed.
// The file is only created once the record has been encoded, so a failed
// validation or encoding leaves no partial output behind.
func WriteFile(path string, result *model.AnalysisResult, config Config) error {
	if config.Validate {
		if err := Validate(result); err != nil {
			return &OutputWriteError{Path: path, Err: err}
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, config.Format, result); err != nil {
		return &OutputWriteError{Path: path, Err: fmt.Errorf("encode %s: %w", config.Format, err)}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &OutputWriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}

// OutputPath returns the output file for an input document: the input's
// base name with the format's extension, inside dir.
func OutputPath(dir, input string, format Format) string {
	base := filepath.Base(input)
	base = base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(dir, base+format.FileExtension())
}
