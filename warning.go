package pdfoutline

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue found while extracting a document.
// The outline is still produced, but may be incomplete.
type Warning struct {
	// Page is the 1-indexed page the warning refers to, or 0 for the
	// whole document.
	Page    int
	Message string
}

// String formats the warning with its page, if any.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single line suitable for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

const (
	warnNoText  = "no extractable text (the page may be scanned; OCR is not attempted)"
	warnNoPages = "document has no pages"
)
