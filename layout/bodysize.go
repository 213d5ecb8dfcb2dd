package layout

import (
	"github.com/tsawler/pdfoutline/model"
)

// EstimateBodySize returns the most frequent rounded span size in the document.
//
// Spans are tallied in reading order (pages, then lines, then spans) and a tie
// between equally frequent sizes goes to the size seen first. A document
// without spans yields model.DefaultBodySize.
func EstimateBodySize(doc *model.Document) float64 {
	if doc == nil {
		return model.DefaultBodySize
	}

	counts := make(map[float64]int)
	var order []float64

	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			for _, span := range line.Spans {
				size := model.RoundSize(span.FontSize)
				if _, seen := counts[size]; !seen {
					order = append(order, size)
				}
				counts[size]++
			}
		}
	}

	if len(order) == 0 {
		return model.DefaultBodySize
	}

	best := order[0]
	for _, size := range order[1:] {
		if counts[size] > counts[best] {
			best = size
		}
	}
	return best
}
