package text

import (
	"math"

	"github.com/ledongthuc/pdf"
)

// TextFragment represents a piece of extracted text with position
type TextFragment struct {
	Text     string
	X, Y     float64
	Width    float64
	FontName string
	FontSize float64
}

// FromPDF converts the glyphs of a decoded page into fragments, keeping
// content stream order. Glyphs with no text are dropped and font names lose
// their subset tag. Mirrored or flipped
// text matrices can report a negative size; the magnitude is kept.
func FromPDF(texts []pdf.Text) []TextFragment {
	fragments := make([]TextFragment, 0, len(texts))
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		fragments = append(fragments, TextFragment{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			FontName: StripSubsetPrefix(t.Font),
			FontSize: math.Abs(t.FontSize),
		})
	}
	return fragments
}

// Right returns the X coordinate where the fragment's advance ends
func (f TextFragment) Right() float64 {
	return f.X + f.Width
}
