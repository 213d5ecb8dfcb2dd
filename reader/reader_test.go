package reader

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tsawler/pdfoutline/internal/pdftest"
)

// createTempPDF writes content into a temporary file and returns its path
func createTempPDF(t *testing.T, content []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("failed to create temp PDF: %v", err)
	}
	return tmpFile
}

func openBuilt(t *testing.T, b *pdftest.Builder) *Reader {
	t.Helper()

	r, err := Open(createTempPDF(t, b.Bytes()))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

// ============================================================================
// Opening
// ============================================================================

func TestOpen(t *testing.T) {
	path := createTempPDF(t, pdftest.New().
		Title("Quarterly Report").
		Page(pdftest.Regular("Hello", 12, 72, 720)).
		Page(pdftest.Regular("World", 12, 72, 720)).
		Bytes())

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if r.file == nil {
		t.Error("expected file to be set")
	}
	if r.Path() != path {
		t.Errorf("Path() = %q, want %q", r.Path(), path)
	}
	if got, err := r.PageCount(); err != nil || got != 2 {
		t.Errorf("PageCount() = %d, %v, want 2", got, err)
	}
	if got := r.Metadata().Title; got != "Quarterly Report" {
		t.Errorf("Metadata().Title = %q, want %q", got, "Quarterly Report")
	}
}

func TestOpenNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error when opening non-existent file")
	}

	var openErr *DocumentOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("error type = %T, want *DocumentOpenError", err)
	}
	if openErr.Path != path {
		t.Errorf("DocumentOpenError.Path = %q, want %q", openErr.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false for %v", err)
	}
}

func TestOpenInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"not a pdf", []byte("hello, this is plain text")},
		{"truncated", pdftest.Corrupt()},
		{"empty file", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Open(createTempPDF(t, tt.content))
			if err == nil {
				r.Close()
				t.Fatal("expected error for invalid PDF")
			}
			if !IsDocumentOpenError(err) {
				t.Errorf("IsDocumentOpenError(%v) = false", err)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	data := pdftest.New().Page(pdftest.Regular("Hello", 12, 72, 720)).Bytes()

	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if r.Path() != "" {
		t.Errorf("Path() = %q, want empty", r.Path())
	}
	if got, err := r.PageCount(); err != nil || got != 1 {
		t.Errorf("PageCount() = %d, %v, want 1", got, err)
	}
}

func TestDocumentOpenErrorMessage(t *testing.T) {
	err := &DocumentOpenError{Path: "a.pdf", Err: errors.New("boom")}
	if got, want := err.Error(), "failed to open document a.pdf: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &DocumentOpenError{Err: errors.New("boom")}
	if got, want := err.Error(), "failed to open document: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// ============================================================================
// Metadata
// ============================================================================

func TestMetadata(t *testing.T) {
	r := openBuilt(t, pdftest.New().
		Title("  Design Notes  ").
		Info("Author", "Jane Roe").
		Info("Producer", "pdftest").
		Info("ModDate", "D:20240131120000Z").
		Page())

	meta := r.Metadata()
	if meta.Title != "  Design Notes  " {
		t.Errorf("Title = %q, want raw value", meta.Title)
	}
	if meta.Author != "Jane Roe" {
		t.Errorf("Author = %q, want %q", meta.Author, "Jane Roe")
	}
	if meta.Producer != "pdftest" {
		t.Errorf("Producer = %q, want %q", meta.Producer, "pdftest")
	}
	want := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	if !meta.ModDate.Equal(want) {
		t.Errorf("ModDate = %v, want %v", meta.ModDate, want)
	}
}

func TestMetadataMissing(t *testing.T) {
	r := openBuilt(t, pdftest.New().Page())

	meta := r.Metadata()
	if meta.Title != "" || meta.Author != "" {
		t.Errorf("Metadata() = %+v, want empty", meta)
	}
	if !meta.ModDate.IsZero() {
		t.Errorf("ModDate = %v, want zero", meta.ModDate)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"D:20240131120000Z", time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), false},
		{"D:20240131", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"D:2024", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"20240131120000", time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), false},
		{"D:20240131120000+01'00'", time.Date(2024, 1, 31, 11, 0, 0, 0, time.UTC), false},
		{"D:20240131120000-05'30'", time.Date(2024, 1, 31, 17, 30, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"D:20", time.Time{}, true},
		{"D:20241399", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Pages
// ============================================================================

func TestPageLines(t *testing.T) {
	r := openBuilt(t, pdftest.New().Page(
		pdftest.Bold("Introduction", 18, 72, 720),
		pdftest.Regular("Body text here.", 12, 72, 690),
	))

	page, err := r.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if page.Number != 1 {
		t.Errorf("Number = %d, want 1", page.Number)
	}
	if len(page.Lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(page.Lines), page.ExtractText())
	}

	heading := page.Lines[0]
	if heading.Text() != "Introduction" {
		t.Errorf("line 0 text = %q, want %q", heading.Text(), "Introduction")
	}
	if heading.FontSize() != 18 {
		t.Errorf("line 0 FontSize() = %v, want 18", heading.FontSize())
	}
	if !heading.IsBold() {
		t.Error("line 0 should be bold")
	}

	body := page.Lines[1]
	if body.Text() != "Body text here." {
		t.Errorf("line 1 text = %q, want %q", body.Text(), "Body text here.")
	}
	if body.IsBold() {
		t.Error("line 1 should not be bold")
	}
}

func TestPageDescriptorBold(t *testing.T) {
	r := openBuilt(t, pdftest.New().Page(
		pdftest.Run{Font: pdftest.FontDescriptorBold, Size: 14, X: 72, Y: 720, Text: "Weighted"},
		pdftest.Run{Font: pdftest.FontItalic, Size: 14, X: 72, Y: 690, Text: "Slanted"},
	))

	page, err := r.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if len(page.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(page.Lines))
	}
	if !page.Lines[0].IsBold() {
		t.Error("font with FontWeight 700 should be bold")
	}
	if page.Lines[1].IsBold() {
		t.Error("oblique font should not be bold")
	}
}

func TestPageCompressed(t *testing.T) {
	r := openBuilt(t, pdftest.New().Compress().Page(
		pdftest.Regular("Compressed (stream) text", 12, 72, 720),
	))

	page, err := r.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if got := page.ExtractText(); got != "Compressed (stream) text" {
		t.Errorf("ExtractText() = %q", got)
	}
}

func TestPageEmpty(t *testing.T) {
	r := openBuilt(t, pdftest.New().Page())

	page, err := r.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if !page.IsEmpty() {
		t.Errorf("page should be empty, got %q", page.ExtractText())
	}
}

func TestPageOutOfRange(t *testing.T) {
	r := openBuilt(t, pdftest.New().Page().Page())

	for _, n := range []int{0, -1, 3} {
		_, err := r.Page(n)
		if !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("Page(%d) error = %v, want ErrPageOutOfRange", n, err)
		}
		if !IsDocumentOpenError(err) {
			t.Errorf("Page(%d) error should be a *DocumentOpenError", n)
		}
	}
}

// ============================================================================
// Documents
// ============================================================================

func TestDocumentAllPages(t *testing.T) {
	r := openBuilt(t, pdftest.New().
		Title("Three Pages").
		Page(pdftest.Regular("one", 12, 72, 720)).
		Page(pdftest.Regular("two", 12, 72, 720)).
		Page(pdftest.Regular("three", 12, 72, 720)))

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.PageCount() != 3 {
		t.Fatalf("PageCount() = %d, want 3", doc.PageCount())
	}
	if doc.Metadata.Title != "Three Pages" {
		t.Errorf("Metadata.Title = %q", doc.Metadata.Title)
	}
	for i, want := range []string{"one", "two", "three"} {
		page := doc.GetPage(i + 1)
		if page.Number != i+1 {
			t.Errorf("page %d Number = %d", i+1, page.Number)
		}
		if page.ExtractText() != want {
			t.Errorf("page %d text = %q, want %q", i+1, page.ExtractText(), want)
		}
	}
}

func TestDocumentSelectedPages(t *testing.T) {
	r := openBuilt(t, pdftest.New().
		Page(pdftest.Regular("one", 12, 72, 720)).
		Page(pdftest.Regular("two", 12, 72, 720)).
		Page(pdftest.Regular("three", 12, 72, 720)))

	doc, err := r.Document(3, 1)
	if err != nil {
		t.Fatalf("Document(3, 1) error = %v", err)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Pages[0].Number != 3 || doc.Pages[1].Number != 1 {
		t.Errorf("page numbers = %d, %d; want source numbers 3, 1",
			doc.Pages[0].Number, doc.Pages[1].Number)
	}

	if _, err := r.Document(4); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Document(4) error = %v, want ErrPageOutOfRange", err)
	}
}

func TestBrokenPageTree(t *testing.T) {
	data := pdftest.New().
		Title("Broken").
		Page(pdftest.Regular("Some text", 12, 72, 720)).
		BrokenPageTree()

	r, err := Open(createTempPDF(t, data))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if _, err := r.PageCount(); !IsDocumentOpenError(err) {
		t.Errorf("PageCount() error = %v, want *DocumentOpenError", err)
	}
	if _, err := r.Page(1); !IsDocumentOpenError(err) {
		t.Errorf("Page(1) error = %v, want *DocumentOpenError", err)
	}
	if _, err := r.Document(); !IsDocumentOpenError(err) {
		t.Errorf("Document() error = %v, want *DocumentOpenError", err)
	}
	if _, err := r.Document(1); !IsDocumentOpenError(err) {
		t.Errorf("Document(1) error = %v, want *DocumentOpenError", err)
	}
}
