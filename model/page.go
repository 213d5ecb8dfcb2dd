package model

import (
	"math"
	"strconv"
	"strings"
)

// Span is a run of text sharing one font and size within a line
type Span struct {
	Text     string
	FontName string  // Base font name with any subset prefix removed
	FontSize float64 // Effective size in text space units
	Bold     bool
}

// Line is an ordered sequence of spans on one visual text line
type Line struct {
	Spans []Span
}

// Text returns the span texts concatenated in order, without normalization
func (l Line) Text() string {
	if len(l.Spans) == 1 {
		return l.Spans[0].Text
	}
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// FontSize returns the largest rounded span size, or 0 for a line without spans
func (l Line) FontSize() float64 {
	size := 0.0
	for i, s := range l.Spans {
		rounded := RoundSize(s.FontSize)
		if i == 0 || rounded > size {
			size = rounded
		}
	}
	return size
}

// IsBold reports whether any span on the line is bold
func (l Line) IsBold() bool {
	for _, s := range l.Spans {
		if s.Bold {
			return true
		}
	}
	return false
}

// Page represents a single page of extracted lines
type Page struct {
	Number int // 1-indexed page number in the source PDF
	Lines  []Line
}

// NewPage creates a new empty page
func NewPage() *Page {
	return &Page{
		Lines: make([]Line, 0),
	}
}

// AddLine appends a line in reading order
func (p *Page) AddLine(line Line) {
	p.Lines = append(p.Lines, line)
}

// ExtractText concatenates line text with newlines
func (p *Page) ExtractText() string {
	var sb strings.Builder
	for _, line := range p.Lines {
		sb.WriteString(line.Text())
		sb.WriteString("\n")
	}
	return sb.String()
}

// IsEmpty returns true if no line on the page carries visible text
func (p *Page) IsEmpty() bool {
	for _, line := range p.Lines {
		if strings.TrimSpace(line.Text()) != "" {
			return false
		}
	}
	return true
}

// RoundSize rounds a font size to one decimal place.
// Halfway cases resolve on the exact binary value with ties to even, so
// 10.25 rounds to 10.2 and 0.15 (stored as 0.1499...) rounds to 0.1.
func RoundSize(size float64) float64 {
	if math.IsNaN(size) || math.IsInf(size, 0) {
		return 0
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(size, 'f', 1, 64), 64)
	if err != nil {
		return math.Round(size*10) / 10
	}
	return rounded
}
