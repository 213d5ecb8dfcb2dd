package layout

import (
	"testing"

	"github.com/tsawler/pdfoutline/model"
)

func TestDefaultHeadingConfig(t *testing.T) {
	config := DefaultHeadingConfig()

	if config.H1Ratio != 1.5 || config.H2Ratio != 1.2 || config.H3Ratio != 1.0 || config.H3BoldFloorRatio != 0.9 {
		t.Errorf("unexpected default ratios: %+v", config)
	}
	if config.MinLength != 3 || config.MaxLength != 200 {
		t.Errorf("unexpected default lengths: %+v", config)
	}
}

func TestNewHeadingClassifierWithConfig(t *testing.T) {
	config := HeadingConfig{H1Ratio: 2, MinLength: 1, MaxLength: 10}
	classifier := NewHeadingClassifierWithConfig(config)
	if classifier == nil {
		t.Fatal("NewHeadingClassifierWithConfig returned nil")
	}
	if classifier.config.H1Ratio != 2 {
		t.Errorf("Expected H1Ratio=2, got %v", classifier.config.H1Ratio)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		size float64
		bold bool
		body float64
		want model.HeadingLevel
	}{
		{"large plain is H1", 24, false, 10, model.HeadingLevel1},
		{"large bold is H1", 24, true, 10, model.HeadingLevel1},
		{"exactly 1.5x is not H1", 15, false, 10, model.HeadingLevelNone},
		{"exactly 1.5x bold is H2", 15, true, 10, model.HeadingLevel2},
		{"1.5x plus a tenth is H1", 15.1, false, 10, model.HeadingLevel1},
		{"above 1.2x bold is H2", 12.5, true, 10, model.HeadingLevel2},
		{"above 1.2x plain is none", 12.5, false, 10, model.HeadingLevelNone},
		{"exactly 1.2x bold is H3", 12, true, 10, model.HeadingLevel3},
		{"above body bold is H3", 11, true, 10, model.HeadingLevel3},
		{"body size bold is H3", 10, true, 10, model.HeadingLevel3},
		{"body size plain is none", 10, false, 10, model.HeadingLevelNone},
		{"0.9x bold is H3", 9, true, 10, model.HeadingLevel3},
		{"below 0.9x bold is none", 8.9, true, 10, model.HeadingLevelNone},
		{"small plain is none", 8, false, 10, model.HeadingLevelNone},
	}

	classifier := NewHeadingClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := makeLine("Quarterly Results", tt.size, tt.bold)
			got, ok := classifier.Classify(line, tt.body)
			if got != tt.want {
				t.Errorf("Classify(size=%v, bold=%v, body=%v) = %v, want %v", tt.size, tt.bold, tt.body, got, tt.want)
			}
			if ok != (tt.want != model.HeadingLevelNone) {
				t.Errorf("Classify ok = %v, want %v", ok, tt.want != model.HeadingLevelNone)
			}
		})
	}
}

func TestClassify_RejectsNonCandidates(t *testing.T) {
	classifier := NewHeadingClassifier()
	for _, text := range []string{"", "  ", "12", "ix", "2024", "XII", "Ok"} {
		if level, ok := classifier.Classify(makeLine(text, 30, true), 10); ok {
			t.Errorf("Classify(%q) = %v, want no heading", text, level)
		}
	}
}

func TestClassify_AggregatesSpans(t *testing.T) {
	// Largest span decides the size, any bold span makes the line bold
	line := model.Line{Spans: []model.Span{
		{Text: "1.2 ", FontSize: 10, Bold: false},
		{Text: "Scope", FontSize: 12.96, Bold: true},
	}}

	classifier := NewHeadingClassifier()
	heading, ok := classifier.ClassifyLine(line, 4, 10)
	if !ok {
		t.Fatal("expected a heading")
	}
	if heading.Level != model.HeadingLevel2 {
		t.Errorf("Level = %v, want H2", heading.Level)
	}
	if heading.Text != "1.2 Scope" {
		t.Errorf("Text = %q, want %q", heading.Text, "1.2 Scope")
	}
	if heading.Page != 4 {
		t.Errorf("Page = %d, want 4", heading.Page)
	}
}

func TestClassify_Monotonic(t *testing.T) {
	classifier := NewHeadingClassifier()
	rank := func(level model.HeadingLevel) int {
		if level == model.HeadingLevelNone {
			return 0
		}
		return 4 - int(level)
	}

	for _, body := range []float64{8, 10, 11.5, 12} {
		for _, bold := range []bool{false, true} {
			prev := 0
			for size := 5.0; size <= 40; size += 0.1 {
				level, _ := classifier.Classify(makeLine("Section Heading", size, bold), body)
				if r := rank(level); r < prev {
					t.Fatalf("body=%v bold=%v: size %.1f demoted to %v", body, bold, size, level)
				} else {
					prev = r
				}
			}
		}
	}
}

func TestClassify_SecondaryH3Disjunct(t *testing.T) {
	classifier := NewHeadingClassifier()
	level, ok := classifier.Classify(makeLine("Key Findings", 9, true), 10)
	if !ok || level != model.HeadingLevel3 {
		t.Errorf("Classify(9pt bold, body 10) = %v, want H3", level)
	}
}

func TestClassify_CustomConfig(t *testing.T) {
	config := DefaultHeadingConfig()
	config.H1Ratio = 2.0
	classifier := NewHeadingClassifierWithConfig(config)

	level, _ := classifier.Classify(makeLine("Big But Not Huge", 18, false), 10)
	if level != model.HeadingLevelNone {
		t.Errorf("Classify() = %v, want none with H1Ratio=2", level)
	}
	level, _ = classifier.Classify(makeLine("Huge Heading", 21, false), 10)
	if level != model.HeadingLevel1 {
		t.Errorf("Classify() = %v, want H1", level)
	}
}
