// Package export writes analysis results to disk in several formats.
//
// # Formats
//
//   - json - the canonical record: {"title": ..., "outline": [...]}, two-space
//     indented, with non-ASCII and HTML characters written verbatim
//   - yaml - the same record as YAML
//   - html - a standalone page with the outline as nested navigation lists
//   - xlsx - a spreadsheet with one row per heading
//
// # Writing Files
//
//	err := export.WriteFile("out/report.json", result, export.DefaultConfig())
//
// Failures to create or write the output file are reported as
// [*OutputWriteError].
//
// # Validation
//
// When [Config.Validate] is set, the JSON record is checked against an
// embedded JSON Schema before anything is written. [Validate] can also be
// called directly on a result.
package export
