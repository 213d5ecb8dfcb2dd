package layout

import (
	"github.com/tsawler/pdfoutline/model"
)

// AnalyzerConfig holds configuration for the document analyzer
type AnalyzerConfig struct {
	// Heading classification configuration
	HeadingConfig HeadingConfig

	// Title selection configuration
	TitleConfig TitleConfig
}

// DefaultAnalyzerConfig returns the reference configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		HeadingConfig: DefaultHeadingConfig(),
		TitleConfig:   DefaultTitleConfig(),
	}
}

// Analyzer builds the title and outline of a document
type Analyzer struct {
	config     AnalyzerConfig
	title      *TitleExtractor
	classifier *HeadingClassifier
}

// NewAnalyzer creates a document analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates a document analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config:     config,
		title:      NewTitleExtractorWithConfig(config.TitleConfig),
		classifier: NewHeadingClassifierWithConfig(config.HeadingConfig),
	}
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() AnalyzerConfig {
	return a.config
}

// Analyze extracts the title and classifies every line of the document.
//
// The body size is estimated over the whole document before any line is
// classified. Headings are appended in page order, then line order, and are
// never reordered, merged or deduplicated.
func (a *Analyzer) Analyze(doc *model.Document) *model.AnalysisResult {
	if doc == nil {
		return model.NewAnalysisResult(model.UntitledDocument, nil)
	}

	title := a.title.Extract(doc)
	bodySize := EstimateBodySize(doc)

	outline := make([]model.Heading, 0)
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			if heading, ok := a.classifier.ClassifyLine(line, page.Number, bodySize); ok {
				outline = append(outline, heading)
			}
		}
	}

	return model.NewAnalysisResult(title, outline)
}
