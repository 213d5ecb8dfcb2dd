// Package pdfoutline provides a fluent API for extracting a document title and
// a three-level heading outline (H1, H2, H3) from PDF files.
//
// Basic usage:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Analyze()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfoutline.FormatWarnings(warnings))
//	}
//	fmt.Println(result.Title)
//	for _, h := range result.Outline {
//	    fmt.Printf("%s %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
//
// With options:
//
//	result, _, err := pdfoutline.Open("report.pdf").
//	    PageRange(1, 10).
//	    WithHeadingConfig(headingConfig).
//	    Analyze()
//
// Headings are inferred from typography alone. The most frequent font size in
// the document is taken as body text, and each line is classified by how its
// size and weight compare to it. See the layout package for the rules.
//
// For advanced use cases, the lower-level reader and layout packages are also
// available.
package pdfoutline

import (
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The file is opened lazily by the first terminal operation, which also
// closes it.
//
// Example:
//
//	result, warnings, err := pdfoutline.Open("document.pdf").Analyze()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	result, warnings, err := pdfoutline.FromReader(r).Analyze()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// FromDocument creates an Extractor over a document that has already been
// extracted, such as one built by hand in tests or by another front end.
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfoutline.Must(pdfoutline.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Analyze() or Title() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	result := pdfoutline.MustResult(pdfoutline.Open("document.pdf").Analyze())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
