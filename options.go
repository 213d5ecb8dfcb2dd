package pdfoutline

import (
	"github.com/tsawler/pdfoutline/layout"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Page selection (1-indexed, as given by the caller)
	pages []int

	// Classification thresholds
	analyzer layout.AnalyzerConfig
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:    nil, // nil means all pages
		analyzer: layout.DefaultAnalyzerConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		analyzer: o.analyzer,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
