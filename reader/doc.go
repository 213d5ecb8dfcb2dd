// Package reader opens PDF files and decodes their pages into the
// [model.Document] structure used by the outline analyzer.
//
// Parsing is delegated to github.com/ledongthuc/pdf. The reader adds
// document metadata, font weight detection and line assembly on top.
//
// # Opening PDF Files
//
// Use [Open] to open a PDF file for reading:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
// Or use [NewReader] with any io.ReaderAt.
//
// # Document Information
//
//   - PageCount() - number of pages
//   - Metadata() - title, author and other document info entries
//
// # Page Access
//
// Pages are numbered from 1:
//
//	page, err := r.Page(1)
//	doc, err := r.Document()        // every page
//	doc, err := r.Document(1, 2, 5) // selected pages
//
// # Errors
//
// Every failure to open or decode a document is reported as a
// [*DocumentOpenError]. The underlying parser panics on some malformed
// content streams; those panics are recovered and returned as errors.
package reader
