package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/export"
	"github.com/tsawler/pdfoutline/model"
	"github.com/tsawler/pdfoutline/reader"
)

// summaryHeadings is how many headings the single-file summary lists
const summaryHeadings = 5

// runSingle analyzes one document and writes its record to output
func (a *app) runSingle(cmd *cobra.Command, input, output string) error {
	exp, err := a.cfg.Export()
	if err != nil {
		return err
	}
	exp.Format = export.FormatForPath(output)

	result, warnings, err := pdfoutline.AnalyzeFileWithConfig(input, a.cfg.Analyzer())
	switch {
	case err == nil:
	case reader.IsDocumentOpenError(err):
		a.logger.Warn("document.unreadable", "input", input, "error", err)
	default:
		return err
	}
	if len(warnings) > 0 {
		a.logger.Warn("document.warnings", "input", input, "warnings", pdfoutline.FormatWarnings(warnings))
	}

	if err := export.WriteFile(output, result, exp); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed: %s -> %s\n", input, output)
	printSummary(out, result)
	return nil
}

// printSummary writes the title, the heading counts per level and the
// first few headings.
func printSummary(w io.Writer, result *model.AnalysisResult) {
	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Title: %s\n", result.Title)
	fmt.Fprintf(w, "Total headings found: %d\n", len(result.Outline))

	counts := result.LevelCounts()
	for _, level := range model.Levels {
		if n := counts[level]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", level, n)
		}
	}

	if len(result.Outline) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFirst few headings:\n")
	for i, h := range result.Outline {
		if i == summaryHeadings {
			fmt.Fprintf(w, "  ... and %d more\n", len(result.Outline)-summaryHeadings)
			break
		}
		fmt.Fprintf(w, "  %s: %s (Page %d)\n", h.Level, h.Text, h.Page)
	}
}
