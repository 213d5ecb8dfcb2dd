package layout

import (
	"github.com/tsawler/pdfoutline/model"
)

// makeLine creates a single-span line for tests
func makeLine(text string, size float64, bold bool) model.Line {
	return model.Line{Spans: []model.Span{{Text: text, FontSize: size, Bold: bold}}}
}

// makeDocument creates a document with one page per argument
func makeDocument(pages ...[]model.Line) *model.Document {
	doc := model.NewDocument()
	for _, lines := range pages {
		page := model.NewPage()
		for _, line := range lines {
			page.AddLine(line)
		}
		doc.AddPage(page)
	}
	return doc
}

// bodyLines returns n plain body lines of the given size
func bodyLines(n int, size float64) []model.Line {
	lines := make([]model.Line, n)
	for i := range lines {
		lines[i] = makeLine("This is ordinary paragraph text on the page.", size, false)
	}
	return lines
}
