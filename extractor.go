package pdfoutline

import (
	"fmt"
	"sort"

	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/reader"
)

// Extractor provides a fluent interface for extracting outlines from PDFs.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	doc      *model.Document

	reader *reader.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		doc:          e.doc,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.doc != nil || e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times. A later terminal operation
// reopens the file.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts extraction to the given pages (1-indexed).
// Multiple calls are cumulative. Headings keep their real page numbers.
//
// Example:
//
//	result, _, err := pdfoutline.Open("doc.pdf").Pages(1, 3, 5).Analyze()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange restricts extraction to a range of pages (1-indexed, inclusive).
//
// Example:
//
//	result, _, err := pdfoutline.Open("doc.pdf").PageRange(5, 10).Analyze()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	if start > end {
		newExt.err = fmt.Errorf("invalid page range %d-%d", start, end)
		return newExt
	}
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithHeadingConfig replaces the heading classification thresholds.
func (e *Extractor) WithHeadingConfig(config layout.HeadingConfig) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.HeadingConfig = config
	return newExt
}

// WithTitleConfig replaces the title length bounds.
func (e *Extractor) WithTitleConfig(config layout.TitleConfig) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer.TitleConfig = config
	return newExt
}

// WithAnalyzerConfig replaces the whole analyzer configuration.
func (e *Extractor) WithAnalyzerConfig(config layout.AnalyzerConfig) *Extractor {
	newExt := e.clone()
	newExt.options.analyzer = config
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	if e.doc != nil {
		return e.doc.PageCount(), nil
	}
	return e.reader.PageCount()
}

// Document extracts the selected pages into a document of lines and spans.
// This is a terminal operation that closes the underlying reader.
//
// Pages with no extractable text produce a warning.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	doc, err := e.selectDocument()
	if err != nil {
		return nil, nil, err
	}

	warnings := append(append([]Warning(nil), e.warnings...), pageWarnings(doc)...)
	return doc, warnings, nil
}

// Analyze extracts the document title and heading outline.
// This is a terminal operation that closes the underlying reader.
//
// Example:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Analyze()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfoutline.FormatWarnings(warnings))
//	}
func (e *Extractor) Analyze() (*model.AnalysisResult, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(e.options.analyzer)
	return analyzer.Analyze(doc), warnings, nil
}

// Title extracts only the document title.
func (e *Extractor) Title() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", nil, err
	}

	return layout.NewTitleExtractorWithConfig(e.options.analyzer.TitleConfig).Extract(doc), warnings, nil
}

// Outline extracts only the heading outline.
func (e *Extractor) Outline() ([]model.Heading, []Warning, error) {
	result, warnings, err := e.Analyze()
	if err != nil {
		return nil, nil, err
	}
	return result.Outline, warnings, nil
}

// BodySize returns the font size judged to be the document's body text.
func (e *Extractor) BodySize() (float64, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return 0, nil, err
	}
	return layout.EstimateBodySize(doc), warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages validates the requested page numbers against count and
// returns them sorted and deduplicated. No selection means every page.
func (e *Extractor) resolvePages(count int) ([]int, error) {
	if len(e.options.pages) == 0 {
		return nil, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, p := range e.options.pages {
		if p < 1 || p > count {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, count)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}

// selectDocument returns the snapshot restricted to the selected pages.
func (e *Extractor) selectDocument() (*model.Document, error) {
	if e.doc != nil {
		return e.selectFromDocument()
	}

	count, err := e.reader.PageCount()
	if err != nil {
		return nil, err
	}
	pages, err := e.resolvePages(count)
	if err != nil {
		return nil, err
	}
	return e.reader.Document(pages...)
}

func (e *Extractor) selectFromDocument() (*model.Document, error) {
	pages, err := e.resolvePages(e.doc.PageCount())
	if err != nil {
		return nil, err
	}
	if pages == nil {
		return e.doc, nil
	}

	doc := model.NewDocument()
	doc.Metadata = e.doc.Metadata
	for _, p := range pages {
		doc.AddPage(e.doc.GetPage(p))
	}
	return doc, nil
}

// pageWarnings returns a warning for every page without text.
func pageWarnings(doc *model.Document) []Warning {
	if doc.PageCount() == 0 {
		return []Warning{{Message: warnNoPages}}
	}

	var warnings []Warning
	for _, page := range doc.Pages {
		if page.IsEmpty() {
			warnings = append(warnings, Warning{Page: page.Number, Message: warnNoText})
		}
	}
	return warnings
}
