package text

import (
	"strings"
)

// Font descriptor values that mark a font as bold.
const (
	// BoldWeightThreshold is the lowest /FontWeight treated as bold.
	BoldWeightThreshold = 600
	// ForceBoldFlag is bit 19 of the /Flags entry.
	ForceBoldFlag = 1 << 18
)

var boldNameMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// FontStyles maps a base font name to whether the font is bold.
type FontStyles map[string]bool

// IsBold reports whether the named font is bold. Fonts without an entry are
// judged by their name.
func (s FontStyles) IsBold(fontName string) bool {
	if bold, ok := s[fontName]; ok {
		return bold
	}
	return IsBoldFontName(fontName)
}

// Set records the style of a font. A bold entry is never downgraded, since
// the same base font may be registered by several pages with differing
// descriptors.
func (s FontStyles) Set(fontName string, bold bool) {
	if s[fontName] {
		return
	}
	s[fontName] = bold
}

// IsBoldFontName reports whether a font name carries a bold weight marker,
// e.g. "Helvetica-Bold", "ABCDEF+Arial,Black" or "OpenSans-SemiBold".
func IsBoldFontName(fontName string) bool {
	name := strings.ToLower(StripSubsetPrefix(fontName))
	for _, marker := range boldNameMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// IsBoldDescriptor reports whether font descriptor values mark a font as bold.
func IsBoldDescriptor(weight float64, flags int64) bool {
	return weight >= BoldWeightThreshold || flags&ForceBoldFlag != 0
}

// StripSubsetPrefix removes the six letter subset tag from an embedded font
// name ("ABCDEF+Helvetica" becomes "Helvetica").
func StripSubsetPrefix(fontName string) string {
	if len(fontName) > 7 && fontName[6] == '+' {
		for i := 0; i < 6; i++ {
			if fontName[i] < 'A' || fontName[i] > 'Z' {
				return fontName
			}
		}
		return fontName[7:]
	}
	return fontName
}
