// Package model provides the intermediate representation shared by the
// extraction layer and the outline analyzer.
//
// # Document Structure
//
// A [Document] is an ordered list of [Page] values plus [Metadata]. Each page
// holds [Line] values in reading order, and each line holds the [Span] runs
// produced by the text extractor:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Annual Report"
//	page := model.NewPage()
//	page.AddLine(model.Line{Spans: []model.Span{{Text: "Overview", FontSize: 18, Bold: true}}})
//	doc.AddPage(page)
//
// Documents are treated as immutable snapshots once extraction is complete.
//
// # Outline
//
// Analysis produces an [AnalysisResult]: the document title and an ordered
// list of [Heading] entries (levels H1 to H3). The JSON encoding of
// AnalysisResult is the artifact written by the command line drivers:
//
//	{
//	  "title": "Annual Report",
//	  "outline": [
//	    {"level": "H1", "text": "Overview", "page": 1}
//	  ]
//	}
//
// # Font Sizes
//
// Font sizes reported by PDF content streams carry floating point noise.
// [RoundSize] rounds a size to one decimal place and every comparison in the
// analyzer goes through it.
package model
