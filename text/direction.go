package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, whitespace
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral")
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection returns the dominant direction of the strong characters in
// text, or Neutral if it has none. Ties go to LTR.
func DetectDirection(text string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch GetCharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// GetCharDirection returns the direction of a single rune from its bidi class
func GetCharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

// lineDirection returns the dominant direction of a line's fragments.
// Lines with no strong characters read left to right.
func lineDirection(fragments []TextFragment) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, frag := range fragments {
		switch DetectDirection(frag.Text) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}
