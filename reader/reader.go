package reader

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/text"
)

// Reader represents an open PDF document
type Reader struct {
	file    *os.File
	path    string
	pdf     *pdf.Reader
	builder *text.LineBuilder
	styles  text.FontStyles
}

// NewReader creates a reader over size bytes of r
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	return newReader(r, size, "")
}

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &DocumentOpenError{Path: filename, Err: err}
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, &DocumentOpenError{Path: filename, Err: fmt.Errorf("failed to get file info: %w", err)}
	}

	reader, err := newReader(file, info.Size(), filename)
	if err != nil {
		file.Close()
		return nil, err
	}
	reader.file = file

	return reader, nil
}

func newReader(r io.ReaderAt, size int64, path string) (reader *Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reader = nil
			err = &DocumentOpenError{Path: path, Err: fmt.Errorf("malformed document: %v", rec)}
		}
	}()

	p, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, &DocumentOpenError{Path: path, Err: err}
	}

	return &Reader{
		path:    path,
		pdf:     p,
		builder: text.NewLineBuilder(),
		styles:  make(text.FontStyles),
	}, nil
}

// Close closes the underlying file, if the reader opened one
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Path returns the file path the reader was opened from, if any
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages in the document. The page tree is
// only decoded here, so a malformed one surfaces as a *DocumentOpenError.
func (r *Reader) PageCount() (count int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			count = 0
			err = r.wrap(fmt.Errorf("malformed page tree: %v", rec))
		}
	}()

	return r.pdf.NumPage(), nil
}

// Metadata returns the document information dictionary entries. Missing
// entries are left empty.
func (r *Reader) Metadata() (meta model.Metadata) {
	defer func() {
		if recover() != nil {
			meta = model.Metadata{}
		}
	}()

	info := r.pdf.Trailer().Key("Info")
	if info.IsNull() {
		return meta
	}

	meta.Title = info.Key("Title").Text()
	meta.Author = info.Key("Author").Text()
	meta.Subject = info.Key("Subject").Text()
	meta.Creator = info.Key("Creator").Text()
	meta.Producer = info.Key("Producer").Text()
	meta.ModDate, _ = ParseDate(info.Key("ModDate").Text())

	return meta
}

// Page decodes the 1-indexed page number into lines of styled spans
func (r *Reader) Page(number int) (page *model.Page, err error) {
	count, err := r.PageCount()
	if err != nil {
		return nil, err
	}
	if number < 1 || number > count {
		return nil, r.wrap(fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, number, count))
	}

	defer func() {
		if rec := recover(); rec != nil {
			page = nil
			err = r.wrap(fmt.Errorf("malformed page %d: %v", number, rec))
		}
	}()

	page = model.NewPage()
	page.Number = number

	p := r.pdf.Page(number)
	if p.V.IsNull() {
		return page, nil
	}

	texts, err := r.pageText(p)
	if err != nil {
		return nil, r.wrap(fmt.Errorf("failed to decode page %d: %w", number, err))
	}

	for _, line := range r.builder.Build(text.FromPDF(texts), r.styles) {
		page.AddLine(line)
	}
	return page, nil
}

// Document decodes the given pages, or every page when none are given,
// into a document carrying the reader's metadata.
func (r *Reader) Document(pages ...int) (*model.Document, error) {
	if len(pages) == 0 {
		count, err := r.PageCount()
		if err != nil {
			return nil, err
		}
		pages = make([]int, count)
		for i := range pages {
			pages[i] = i + 1
		}
	}

	doc := model.NewDocument()
	doc.Metadata = r.Metadata()

	for _, number := range pages {
		page, err := r.Page(number)
		if err != nil {
			return nil, err
		}
		doc.AddPage(page)
	}

	return doc, nil
}

// pageText registers the page's fonts and returns its glyphs
func (r *Reader) pageText(p pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			texts = nil
			err = fmt.Errorf("malformed content stream: %v", rec)
		}
	}()

	r.registerFonts(p)
	return p.Content().Text, nil
}

// registerFonts records the weight of every font used by the page. Type0
// fonts keep their descriptor on the descendant font.
func (r *Reader) registerFonts(p pdf.Page) {
	for _, name := range p.Fonts() {
		font := p.Font(name)
		baseFont := text.StripSubsetPrefix(font.BaseFont())
		if baseFont == "" {
			continue
		}

		desc := font.V.Key("FontDescriptor")
		if desc.IsNull() {
			desc = font.V.Key("DescendantFonts").Index(0).Key("FontDescriptor")
		}

		bold := text.IsBoldFontName(baseFont) ||
			text.IsBoldDescriptor(desc.Key("FontWeight").Float64(), desc.Key("Flags").Int64())
		r.styles.Set(baseFont, bold)
	}
}

func (r *Reader) wrap(err error) error {
	return &DocumentOpenError{Path: r.path, Err: err}
}

// ParseDate parses a PDF date string such as "D:20240131120000+01'00'".
// Missing trailing fields default to their lowest value.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "D:")
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	digits := 0
	for digits < len(s) && digits < 14 && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits < 4 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	stamp := s[:digits] + "0101000000"[digits-4:]
	t, err := time.Parse("20060102150405", stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	zone := strings.ReplaceAll(s[digits:], "'", "")
	switch {
	case zone == "" || zone == "Z":
		return t, nil
	case len(zone) >= 3 && (zone[0] == '+' || zone[0] == '-'):
		if len(zone) == 3 {
			zone += "00"
		}
		if len(zone) < 5 {
			return t, nil
		}
		offset, err := time.Parse("-0700", zone[:5])
		if err != nil {
			return t, nil
		}
		_, secs := offset.Zone()
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0,
			time.FixedZone("", secs)), nil
	}
	return t, nil
}
