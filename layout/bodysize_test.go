package layout

import (
	"testing"

	"github.com/tsawler/pdfoutline/model"
)

func TestEstimateBodySize_Empty(t *testing.T) {
	tests := []struct {
		name string
		doc  *model.Document
	}{
		{"nil document", nil},
		{"no pages", makeDocument()},
		{"pages without lines", makeDocument(nil, nil)},
		{"lines without spans", makeDocument([]model.Line{{}, {}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateBodySize(tt.doc); got != 12.0 {
				t.Errorf("EstimateBodySize() = %v, want 12.0", got)
			}
		})
	}
}

func TestEstimateBodySize_Mode(t *testing.T) {
	doc := makeDocument(
		[]model.Line{makeLine("Title", 24, true), makeLine("body", 10.02, false)},
		[]model.Line{makeLine("body", 9.98, false), makeLine("Heading", 14, true), makeLine("body", 10, false)},
	)

	if got := EstimateBodySize(doc); got != 10 {
		t.Errorf("EstimateBodySize() = %v, want 10", got)
	}
}

func TestEstimateBodySize_CountsSpansNotLines(t *testing.T) {
	// One line with three 8pt spans outweighs two 11pt lines
	doc := makeDocument([]model.Line{
		{Spans: []model.Span{{Text: "a", FontSize: 8}, {Text: "b", FontSize: 8}, {Text: "c", FontSize: 8}}},
		makeLine("body", 11, false),
		makeLine("body", 11, false),
	})

	if got := EstimateBodySize(doc); got != 8 {
		t.Errorf("EstimateBodySize() = %v, want 8", got)
	}
}

func TestEstimateBodySize_TieFirstSeen(t *testing.T) {
	doc := makeDocument(
		[]model.Line{makeLine("a", 11, false), makeLine("b", 9, false)},
		[]model.Line{makeLine("c", 9, false), makeLine("d", 11, false)},
	)

	if got := EstimateBodySize(doc); got != 11 {
		t.Errorf("EstimateBodySize() = %v, want first-seen 11", got)
	}
}

func TestEstimateBodySize_ResultIsMaximalFrequency(t *testing.T) {
	sets := [][]float64{
		{12},
		{10, 10, 12, 14, 14, 14},
		{9.96, 10.04, 10, 18, 18},
		{7.5, 8.25, 8.2, 8.2, 7.5, 7.5},
		{20, 18, 16, 14, 12},
	}

	for _, sizes := range sets {
		var lines []model.Line
		counts := make(map[float64]int)
		for _, s := range sizes {
			lines = append(lines, makeLine("x", s, false))
			counts[model.RoundSize(s)]++
		}

		got := EstimateBodySize(makeDocument(lines))
		freq, ok := counts[got]
		if !ok {
			t.Errorf("sizes %v: EstimateBodySize() = %v, not among rounded inputs", sizes, got)
			continue
		}
		for size, n := range counts {
			if n > freq {
				t.Errorf("sizes %v: %v occurs %d times, more than result %v (%d)", sizes, size, n, got, freq)
			}
		}
	}
}
