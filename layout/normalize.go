package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize collapses every run of whitespace to a single space and trims the ends
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsHeadingCandidate reports whether text could be a heading under the default
// length limits: at least 3 characters after trimming and fewer than 200.
// Page-number artifacts (pure digits, pure Roman numerals) are never candidates.
func IsHeadingCandidate(text string) bool {
	return DefaultHeadingConfig().isCandidate(text)
}

// isCandidate applies the candidate filter with the configured length limits
func (c HeadingConfig) isCandidate(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if utf8.RuneCountInString(text) >= c.MaxLength {
		return false
	}
	if utf8.RuneCountInString(trimmed) < c.MinLength {
		return false
	}
	if isDigits(trimmed) || isRomanNumeral(trimmed) {
		return false
	}
	return true
}

// isDigits reports whether s consists only of decimal digits
func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// isRomanNumeral reports whether s consists only of Roman numeral letters, in either case
func isRomanNumeral(s string) bool {
	for _, r := range s {
		switch unicode.ToLower(r) {
		case 'i', 'v', 'x', 'l', 'c', 'd', 'm':
		default:
			return false
		}
	}
	return s != ""
}
