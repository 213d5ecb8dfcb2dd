package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Title and outline values used when no better information is available
const (
	UntitledDocument  = "Untitled Document"
	ErrorLoadingTitle = "Error Loading Document"
	DefaultBodySize   = 12.0
)

// HeadingLevel represents the hierarchical level of a heading (H1-H3)
type HeadingLevel int

const (
	HeadingLevelNone HeadingLevel = iota
	HeadingLevel1                 // H1 - Title-sized text
	HeadingLevel2                 // H2 - Large bold text
	HeadingLevel3                 // H3 - Body-sized bold text
)

// Levels lists the heading levels in outline order
var Levels = []HeadingLevel{HeadingLevel1, HeadingLevel2, HeadingLevel3}

// String returns the outline label of the level ("H1", "H2", "H3")
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	default:
		return "none"
	}
}

// ParseHeadingLevel converts "H1", "H2" or "H3" into a HeadingLevel
func ParseHeadingLevel(s string) (HeadingLevel, error) {
	switch s {
	case "H1":
		return HeadingLevel1, nil
	case "H2":
		return HeadingLevel2, nil
	case "H3":
		return HeadingLevel3, nil
	default:
		return HeadingLevelNone, fmt.Errorf("invalid heading level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (l HeadingLevel) MarshalText() ([]byte, error) {
	if l < HeadingLevel1 || l > HeadingLevel3 {
		return nil, fmt.Errorf("heading level %d has no outline label", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *HeadingLevel) UnmarshalText(text []byte) error {
	level, err := ParseHeadingLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// Heading is one outline entry
type Heading struct {
	Level HeadingLevel `json:"level" yaml:"level"`
	Text  string       `json:"text" yaml:"text"`
	Page  int          `json:"page" yaml:"page"`
}

// AnalysisResult is the title and ordered outline of one document
type AnalysisResult struct {
	Title   string    `json:"title" yaml:"title"`
	Outline []Heading `json:"outline" yaml:"outline"`
}

// NewAnalysisResult creates a result with an empty, non-nil outline
func NewAnalysisResult(title string, outline []Heading) *AnalysisResult {
	if outline == nil {
		outline = []Heading{}
	}
	return &AnalysisResult{Title: title, Outline: outline}
}

// DegenerateResult is the result substituted for a document that could not be opened
func DegenerateResult() *AnalysisResult {
	return NewAnalysisResult(ErrorLoadingTitle, nil)
}

// MarshalJSON keeps "outline" an array even when the slice is nil. HTML
// characters are left unescaped; encoders that escape them still do so.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type plain AnalysisResult
	p := plain(r)
	if p.Outline == nil {
		p.Outline = []Heading{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// LevelCounts returns the number of headings at each level
func (r *AnalysisResult) LevelCounts() map[HeadingLevel]int {
	counts := make(map[HeadingLevel]int)
	if r == nil {
		return counts
	}
	for _, h := range r.Outline {
		counts[h.Level]++
	}
	return counts
}

// HeadingsAtLevel returns the headings of one level in outline order
func (r *AnalysisResult) HeadingsAtLevel(level HeadingLevel) []Heading {
	if r == nil {
		return nil
	}
	var result []Heading
	for _, h := range r.Outline {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}
