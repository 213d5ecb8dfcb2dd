// Package layout infers a document title and a three-level heading outline
// from the typographic primitives of an extracted [model.Document].
//
// # Analysis
//
// The [Analyzer] runs two sequential stages over an immutable document
// snapshot:
//
//  1. Estimate the body text size: the most frequent rounded span size.
//  2. Classify every line, in page and line order, against that baseline.
//
// The title is taken from document metadata when present, otherwise from the
// largest qualifying line on the first page.
//
//	analyzer := layout.NewAnalyzer()
//	result := analyzer.Analyze(doc)
//	for _, h := range result.Outline {
//	    fmt.Printf("%s %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
//
// # Components
//
// Each stage is available on its own:
//
//   - [Normalize] and [IsHeadingCandidate] - text cleanup and filtering
//   - [EstimateBodySize] - body text baseline
//   - [TitleExtractor] - metadata or first-page title
//   - [HeadingClassifier] - ratio rules mapping a line to H1, H2 or H3
//
// # Configuration
//
// Ratios and length limits are configurable, and the defaults reproduce the
// reference rule set exactly:
//
//	config := layout.DefaultAnalyzerConfig()
//	config.HeadingConfig.H1Ratio = 1.6
//	analyzer := layout.NewAnalyzerWithConfig(config)
package layout
