package model

import (
	"strings"
	"time"
)

// Document represents an extracted PDF document: pages of lines of spans
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information from the PDF Info dictionary
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
	ModDate  time.Time
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page. Pages without a number are numbered by position.
func (d *Document) AddPage(page *Page) {
	if page.Number < 1 {
		page.Number = len(d.Pages) + 1
	}
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by its position in the document (1-indexed)
func (d *Document) GetPage(index int) *Page {
	if index < 1 || index > len(d.Pages) {
		return nil
	}
	return d.Pages[index-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// SpanCount returns the number of spans across every page and line
func (d *Document) SpanCount() int {
	n := 0
	for _, page := range d.Pages {
		for _, line := range page.Lines {
			n += len(line.Spans)
		}
	}
	return n
}

// ExtractText returns all line text, one line per row and a blank row between pages
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for i, page := range d.Pages {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(page.ExtractText())
	}
	return sb.String()
}
