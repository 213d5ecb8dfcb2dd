package layout

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"trim", "  Annual Report 2023  ", "Annual Report 2023"},
		{"collapse", "Chapter\t\t1\n\nIntroduction", "Chapter 1 Introduction"},
		{"no-break space", "Part Two", "Part Two"},
		{"already clean", "Summary", "Summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsHeadingCandidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"length 200", strings.Repeat("a", 200), false},
		{"length 201", strings.Repeat("a", 201), false},
		{"length 199", strings.Repeat("b", 199), true},
		{"too short", "ab", false},
		{"three chars", "abc", true},
		{"digits", "123", false},
		{"digits padded", "  42  ", false},
		{"roman lower", "iv", false},
		{"roman upper", "XIV", false},
		{"roman mixed case", "MCMxc", false},
		{"roman like word", "civic", false},
		{"number with text", "1. Introduction", true},
		{"short word", "Yes", true},
		{"multibyte", "Über", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHeadingCandidate(tt.text); got != tt.want {
				t.Errorf("IsHeadingCandidate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
