// Package pdftest builds small, valid PDF files for tests.
//
// Each page is a list of positioned text runs. Fonts are the standard Type1
// faces plus one font whose weight is only declared in its descriptor:
//
//	data := pdftest.New().
//		Title("Annual Report").
//		Page(
//			pdftest.Bold("Introduction", 18, 72, 720),
//			pdftest.Regular("Body text.", 12, 72, 690),
//		).
//		Bytes()
//
// Cross-reference offsets and stream lengths are computed, so the output
// opens with strict readers.
package pdftest

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Font resource names available to text runs.
const (
	FontRegular        = "F1" // Helvetica
	FontBold           = "F2" // Helvetica-Bold
	FontDescriptorBold = "F3" // CustomSans, FontWeight 700 in its descriptor
	FontItalic         = "F4" // Helvetica-Oblique
)

// Run is a single line of text drawn at an absolute position.
type Run struct {
	Font string
	Size float64
	X, Y float64
	Text string
}

// Regular returns a run in the regular face.
func Regular(text string, size, x, y float64) Run {
	return Run{Font: FontRegular, Size: size, X: x, Y: y, Text: text}
}

// Bold returns a run in the bold face.
func Bold(text string, size, x, y float64) Run {
	return Run{Font: FontBold, Size: size, X: x, Y: y, Text: text}
}

// Builder accumulates document metadata and pages.
type Builder struct {
	info     [][2]string
	pages    [][]Run
	compress bool
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Title sets the /Title entry of the document information dictionary.
func (b *Builder) Title(title string) *Builder {
	return b.Info("Title", title)
}

// Info sets an arbitrary entry of the document information dictionary.
func (b *Builder) Info(key, value string) *Builder {
	b.info = append(b.info, [2]string{key, value})
	return b
}

// Page appends a page drawing the given runs in order.
func (b *Builder) Page(runs ...Run) *Builder {
	b.pages = append(b.pages, runs)
	return b
}

// Compress flate-encodes page content streams.
func (b *Builder) Compress() *Builder {
	b.compress = true
	return b
}

// Bytes renders the document.
func (b *Builder) Bytes() []byte {
	w := &writer{}
	w.printf("%%PDF-1.4\n")

	const (
		catalogObj = 1
		pagesObj   = 2
		firstFont  = 3
		infoObj    = 7
		firstPage  = 8
	)

	kids := make([]string, len(b.pages))
	for i := range b.pages {
		kids[i] = fmt.Sprintf("%d 0 R", firstPage+2*i)
	}

	w.object(catalogObj, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesObj))
	w.object(pagesObj, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(b.pages)))

	w.object(firstFont, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	w.object(firstFont+1, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>")
	w.object(firstFont+2, "<< /Type /Font /Subtype /Type1 /BaseFont /CustomSans /Encoding /WinAnsiEncoding "+
		"/FontDescriptor << /Type /FontDescriptor /FontName /CustomSans /Flags 32 /FontWeight 700 "+
		"/ItalicAngle 0 /Ascent 718 /Descent -207 /CapHeight 718 /StemV 140 /FontBBox [0 0 1000 1000] >> >>")
	w.object(firstFont+3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Oblique /Encoding /WinAnsiEncoding >>")

	var info []string
	for _, kv := range b.info {
		info = append(info, fmt.Sprintf("/%s %s", kv[0], literal(kv[1])))
	}
	w.object(infoObj, "<< "+strings.Join(info, " ")+" >>")

	resources := fmt.Sprintf("<< /Font << /F1 %d 0 R /F2 %d 0 R /F3 %d 0 R /F4 %d 0 R >> >>",
		firstFont, firstFont+1, firstFont+2, firstFont+3)

	for i, runs := range b.pages {
		pageNum := firstPage + 2*i
		contentNum := pageNum + 1

		w.object(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources %s /Contents %d 0 R >>",
			pagesObj, resources, contentNum))
		w.stream(contentNum, contentStream(runs), b.compress)
	}

	xref := w.buf.Len()
	size := firstPage + 2*len(b.pages)
	w.printf("xref\n0 %d\n", size)
	w.printf("0000000000 65535 f \n")
	for n := 1; n < size; n++ {
		w.printf("%010d 00000 n \n", w.offsets[n])
	}
	w.printf("trailer\n<< /Size %d /Root %d 0 R /Info %d 0 R >>\n", size, catalogObj, infoObj)
	w.printf("startxref\n%d\n%%%%EOF\n", xref)

	return w.buf.Bytes()
}

// WriteFile renders the document into dir/name and returns the path.
func (b *Builder) WriteFile(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// BrokenPageTree renders the document with the page tree object stored
// under the wrong object number. The header, cross-reference table and
// trailer still parse, so the damage only shows once the pages are read.
func (b *Builder) BrokenPageTree() []byte {
	// Same length, so every xref offset stays valid.
	return bytes.Replace(b.Bytes(), []byte("\n2 0 obj\n"), []byte("\n5 0 obj\n"), 1)
}

// Corrupt returns bytes that carry a PDF header but no usable structure.
func Corrupt() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog\nthis is not a pdf\n")
}

type writer struct {
	buf     bytes.Buffer
	offsets map[int]int
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

func (w *writer) object(num int, body string) {
	if w.offsets == nil {
		w.offsets = make(map[int]int)
	}
	w.offsets[num] = w.buf.Len()
	w.printf("%d 0 obj\n%s\nendobj\n", num, body)
}

func (w *writer) stream(num int, data []byte, compress bool) {
	filter := ""
	if compress {
		var z bytes.Buffer
		zw := zlib.NewWriter(&z)
		zw.Write(data)
		zw.Close()
		data = z.Bytes()
		filter = " /Filter /FlateDecode"
	}

	if w.offsets == nil {
		w.offsets = make(map[int]int)
	}
	w.offsets[num] = w.buf.Len()
	w.printf("%d 0 obj\n<< /Length %d%s >>\nstream\n", num, len(data), filter)
	w.buf.Write(data)
	w.printf("\nendstream\nendobj\n")
}

func contentStream(runs []Run) []byte {
	var sb strings.Builder
	for _, r := range runs {
		fmt.Fprintf(&sb, "BT /%s %s Tf 1 0 0 1 %s %s Tm %s Tj ET\n",
			r.Font, number(r.Size), number(r.X), number(r.Y), literal(r.Text))
	}
	return []byte(sb.String())
}

func number(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}

// literal encodes s as a PDF string. Runes outside Latin-1 become '?'.
func literal(s string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(byte(r))
		case r < 0x20:
			fmt.Fprintf(&sb, "\\%03o", r)
		case r < 0x80:
			sb.WriteByte(byte(r))
		case r < 0x100:
			fmt.Fprintf(&sb, "\\%03o", r)
		default:
			sb.WriteByte('?')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
