// Package text turns the positioned glyph runs reported by a PDF content
// stream into the lines and spans of a [model.Page].
//
// # Fragments
//
// A [TextFragment] is the smallest positioned unit of text: usually one glyph,
// with its font, size, position and advance width. [FromPDF] converts the
// glyph list of a github.com/ledongthuc/pdf page into fragments.
//
// # Line Assembly
//
// The [LineBuilder] groups fragments into lines and lines into spans:
//
//	builder := text.NewLineBuilder()
//	lines := builder.Build(text.FromPDF(page.Content().Text), styles)
//
// Fragments are taken in content stream order. A fragment whose baseline moves
// by more than half the previous fragment's size starts a new line. Within a
// line, fragments are ordered along the line's reading direction and
// consecutive fragments with the same font, size and weight form one span.
//
// # Spacing
//
// Many PDFs position words without emitting space characters. A space is
// inserted when the horizontal gap between two fragments is at least half of
// an estimated space width, unless either side already carries whitespace.
//
// # Text Direction
//
// Lines whose strong characters are mostly right-to-left (Arabic, Hebrew,
// and similar scripts) are ordered right to left. [DetectDirection] uses the
// Unicode bidi classes from golang.org/x/text.
//
// # Font Styles
//
// [FontStyles] records which fonts are bold. When a font has no entry,
// [IsBoldFontName] falls back to the conventional weight words in the font
// name ("Bold", "Black", "Heavy", "Semibold", "Demibold").
package text
