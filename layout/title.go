package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdfoutline/model"
)

// TitleConfig holds the length limits for first-page title candidates
type TitleConfig struct {
	// MinLength is the exclusive lower bound on candidate length in characters
	// Default: 5
	MinLength int

	// MaxLength is the exclusive upper bound on candidate length in characters
	// Default: 150
	MaxLength int
}

// DefaultTitleConfig returns the default title limits
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MinLength: 5,
		MaxLength: 150,
	}
}

// TitleExtractor chooses a document title
type TitleExtractor struct {
	config TitleConfig
}

// NewTitleExtractor creates a title extractor with default configuration
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{
		config: DefaultTitleConfig(),
	}
}

// NewTitleExtractorWithConfig creates a title extractor with custom configuration
func NewTitleExtractorWithConfig(config TitleConfig) *TitleExtractor {
	return &TitleExtractor{
		config: config,
	}
}

// ExtractTitle chooses a title with the default configuration
func ExtractTitle(doc *model.Document) string {
	return NewTitleExtractor().Extract(doc)
}

// Extract returns the metadata title when it has visible text. Otherwise it
// returns the first-page line with the strictly largest font size among lines
// whose normalized length lies inside the configured bounds, or
// model.UntitledDocument when there is no such line.
func (e *TitleExtractor) Extract(doc *model.Document) string {
	if doc == nil {
		return model.UntitledDocument
	}

	if title := strings.TrimSpace(doc.Metadata.Title); title != "" {
		return Normalize(title)
	}

	if len(doc.Pages) == 0 {
		return model.UntitledDocument
	}

	largestText := ""
	largestSize := 0.0

	for _, line := range doc.Pages[0].Lines {
		text := Normalize(line.Text())
		size := line.FontSize()

		if size > largestSize && e.isCandidate(text) {
			largestText = text
			largestSize = size
		}
	}

	if largestText == "" {
		return model.UntitledDocument
	}
	return largestText
}

// isCandidate checks the exclusive length bounds on normalized text
func (e *TitleExtractor) isCandidate(text string) bool {
	n := utf8.RuneCountInString(text)
	return text != "" && n > e.config.MinLength && n < e.config.MaxLength
}
