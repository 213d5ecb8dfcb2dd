package pdfoutline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/reader"
)

// InputNotFoundError reports an input path that does not exist.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("PDF file '%s' not found", e.Path)
}

// AnalyzeFile extracts the outline of a single file with the default
// configuration. See [AnalyzeFileWithConfig].
func AnalyzeFile(path string) (*model.AnalysisResult, []Warning, error) {
	return AnalyzeFileWithConfig(path, layout.DefaultAnalyzerConfig())
}

// AnalyzeFileWithConfig extracts the outline of a single file.
//
// A missing file returns an *InputNotFoundError and no result. A file that
// exists but cannot be opened or decoded returns the degenerate result
// ("Error Loading Document", empty outline) together with the
// *reader.DocumentOpenError, so callers can still write an output record.
func AnalyzeFileWithConfig(path string, config layout.AnalyzerConfig) (*model.AnalysisResult, []Warning, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil, &InputNotFoundError{Path: path}
	}

	result, warnings, err := Open(path).WithAnalyzerConfig(config).Analyze()
	if err != nil {
		var openErr *reader.DocumentOpenError
		if errors.As(err, &openErr) {
			return model.DegenerateResult(), nil, err
		}
		return nil, nil, err
	}

	return result, warnings, nil
}
