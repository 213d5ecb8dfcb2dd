package text

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdfoutline/model"
)

// LineConfig holds the tolerances used when assembling lines.
type LineConfig struct {
	// LineTolerance is the share of the previous fragment's size by which
	// the baseline may move before a new line starts.
	LineTolerance float64

	// SpaceWidthRatio estimates the width of a space as a share of the font size.
	SpaceWidthRatio float64

	// SpaceThreshold is the share of a space width a gap must reach before
	// a space is inserted.
	SpaceThreshold float64
}

// DefaultLineConfig returns sensible defaults for line assembly
func DefaultLineConfig() LineConfig {
	return LineConfig{
		LineTolerance:   0.5,
		SpaceWidthRatio: 0.25,
		SpaceThreshold:  0.5,
	}
}

// LineBuilder groups text fragments into lines of styled spans
type LineBuilder struct {
	config LineConfig
}

// NewLineBuilder creates a new line builder with default configuration
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{config: DefaultLineConfig()}
}

// NewLineBuilderWithConfig creates a line builder with custom configuration
func NewLineBuilderWithConfig(config LineConfig) *LineBuilder {
	return &LineBuilder{config: config}
}

// Build assembles fragments into lines. Lines whose text is only whitespace
// are dropped. A nil styles table judges weight by font name alone.
func (b *LineBuilder) Build(fragments []TextFragment, styles FontStyles) []model.Line {
	groups := b.groupFragmentsByLine(fragments)

	lines := make([]model.Line, 0, len(groups))
	for _, group := range groups {
		dir := lineDirection(group)
		ordered := reorderFragmentsForReading(group, dir)
		line := b.buildLine(ordered, dir, styles)
		if strings.TrimSpace(line.Text()) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// groupFragmentsByLine splits fragments into lines in stream order
func (b *LineBuilder) groupFragmentsByLine(fragments []TextFragment) [][]TextFragment {
	if len(fragments) == 0 {
		return nil
	}

	lines := make([][]TextFragment, 0)
	currentLine := []TextFragment{fragments[0]}

	for i := 1; i < len(fragments); i++ {
		frag := fragments[i]
		prevFrag := fragments[i-1]

		if math.Abs(frag.Y-prevFrag.Y) <= prevFrag.FontSize*b.config.LineTolerance {
			currentLine = append(currentLine, frag)
		} else {
			lines = append(lines, currentLine)
			currentLine = []TextFragment{frag}
		}
	}

	return append(lines, currentLine)
}

// reorderFragmentsForReading orders a line's fragments along its direction.
// Fragments sharing an X coordinate keep their stream order.
func reorderFragmentsForReading(fragments []TextFragment, dir Direction) []TextFragment {
	ordered := make([]TextFragment, len(fragments))
	copy(ordered, fragments)

	sort.SliceStable(ordered, func(i, j int) bool {
		if dir == RTL {
			return ordered[i].X > ordered[j].X
		}
		return ordered[i].X < ordered[j].X
	})
	return ordered
}

// horizontalGap returns the gap between two consecutive fragments in
// reading order.
func horizontalGap(frag, next TextFragment, dir Direction) float64 {
	if dir == RTL {
		return frag.X - next.Right()
	}
	return next.X - frag.Right()
}

// buildLine merges consecutive fragments with the same style into spans
func (b *LineBuilder) buildLine(fragments []TextFragment, dir Direction, styles FontStyles) model.Line {
	var (
		spans   []model.Span
		current strings.Builder
		span    model.Span
	)

	flush := func() {
		if current.Len() == 0 {
			return
		}
		span.Text = norm.NFC.String(current.String())
		spans = append(spans, span)
		current.Reset()
	}

	for i, frag := range fragments {
		bold := styles.IsBold(frag.FontName)

		if i > 0 {
			prev := fragments[i-1]
			if b.shouldInsertSpace(prev, frag, horizontalGap(prev, frag, dir)) {
				current.WriteByte(' ')
			}
		}

		if current.Len() == 0 || !sameStyle(span, frag, bold) {
			flush()
			span = model.Span{
				FontName: frag.FontName,
				FontSize: frag.FontSize,
				Bold:     bold,
			}
		}
		current.WriteString(frag.Text)
	}
	flush()

	return model.Line{Spans: spans}
}

func sameStyle(span model.Span, frag TextFragment, bold bool) bool {
	return span.FontName == frag.FontName &&
		model.RoundSize(span.FontSize) == model.RoundSize(frag.FontSize) &&
		span.Bold == bold
}

// shouldInsertSpace reports whether a word gap separates two fragments.
// No space is added when either side already carries whitespace.
func (b *LineBuilder) shouldInsertSpace(frag, next TextFragment, gap float64) bool {
	if endsWithSpace(frag.Text) || startsWithSpace(next.Text) {
		return false
	}
	if gap <= 0 {
		return false
	}
	spaceWidth := frag.FontSize * b.config.SpaceWidthRatio
	return gap >= spaceWidth*b.config.SpaceThreshold
}

func endsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return unicode.IsSpace(r[len(r)-1])
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
