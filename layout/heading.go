package layout

import (
	"github.com/tsawler/pdfoutline/model"
)

// HeadingConfig holds the ratios and length limits used by heading classification.
// Ratios are multiplied by the document's body text size.
type HeadingConfig struct {
	// H1Ratio: a line strictly larger than body*H1Ratio is H1
	// Default: 1.5
	H1Ratio float64

	// H2Ratio: a bold line strictly larger than body*H2Ratio is H2
	// Default: 1.2
	H2Ratio float64

	// H3Ratio: a bold line strictly larger than body*H3Ratio is H3
	// Default: 1.0
	H3Ratio float64

	// H3BoldFloorRatio: a bold line at least body*H3BoldFloorRatio is H3
	// Default: 0.9
	H3BoldFloorRatio float64

	// MinLength is the minimum trimmed length of a heading in characters
	// Default: 3
	MinLength int

	// MaxLength is the exclusive upper bound on heading length in characters
	// Default: 200
	MaxLength int
}

// DefaultHeadingConfig returns the reference rule set
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		H1Ratio:          1.5,
		H2Ratio:          1.2,
		H3Ratio:          1.0,
		H3BoldFloorRatio: 0.9,
		MinLength:        3,
		MaxLength:        200,
	}
}

// HeadingClassifier assigns heading levels to individual lines
type HeadingClassifier struct {
	config HeadingConfig
}

// NewHeadingClassifier creates a heading classifier with default configuration
func NewHeadingClassifier() *HeadingClassifier {
	return &HeadingClassifier{
		config: DefaultHeadingConfig(),
	}
}

// NewHeadingClassifierWithConfig creates a heading classifier with custom configuration
func NewHeadingClassifierWithConfig(config HeadingConfig) *HeadingClassifier {
	return &HeadingClassifier{
		config: config,
	}
}

// Classify returns the heading level of a line against the body text size.
// The second result is false when the line is not a heading.
func (c *HeadingClassifier) Classify(line model.Line, bodySize float64) (model.HeadingLevel, bool) {
	text := Normalize(line.Text())
	if !c.config.isCandidate(text) {
		return model.HeadingLevelNone, false
	}

	level := c.determineLevel(line.FontSize(), line.IsBold(), bodySize)
	return level, level != model.HeadingLevelNone
}

// ClassifyLine classifies a line and builds its outline entry
func (c *HeadingClassifier) ClassifyLine(line model.Line, pageNumber int, bodySize float64) (model.Heading, bool) {
	level, ok := c.Classify(line, bodySize)
	if !ok {
		return model.Heading{}, false
	}
	return model.Heading{
		Level: level,
		Text:  Normalize(line.Text()),
		Page:  pageNumber,
	}, true
}

// determineLevel applies the ratio rules in order; the first match wins.
// Both H3 disjuncts are kept: they differ when fontSize equals bodySize.
func (c *HeadingClassifier) determineLevel(fontSize float64, bold bool, bodySize float64) model.HeadingLevel {
	switch {
	case fontSize > bodySize*c.config.H1Ratio:
		return model.HeadingLevel1
	case fontSize > bodySize*c.config.H2Ratio && bold:
		return model.HeadingLevel2
	case (fontSize > bodySize*c.config.H3Ratio && bold) ||
		(bold && fontSize >= bodySize*c.config.H3BoldFloorRatio):
		return model.HeadingLevel3
	default:
		return model.HeadingLevelNone
	}
}
