package cli

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/batch"
	"github.com/tsawler/pdfoutline/index"
)

func (a *app) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Extract the outline of every PDF in a directory",
		Long: `Batch processes every file with a .pdf extension (in any letter case)
in the input directory and writes one record per document to the output
directory, which is created if missing.

A document that cannot be opened still gets a record, titled
"Error Loading Document" with an empty outline. Only records that cannot
be written count as failures.

Example:
  pdfoutline batch --input ./pdfs --output ./outlines
  pdfoutline batch --workers 8 --format html
  pdfoutline batch --index ./outline-index`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, a.cfg.InputDir, a.cfg.OutputDir)
		},
	}

	cmd.Flags().String("input", "/app/input", "directory holding the PDF files")
	cmd.Flags().String("output", "/app/output", "directory the records are written to")
	cmd.Flags().Int("workers", runtime.NumCPU(), "number of documents processed at once (0 = one per CPU)")
	cmd.Flags().String("format", "json", "record format (json, yaml, html, xlsx)")
	cmd.Flags().Bool("validate", true, "validate records against the outline schema before writing")
	cmd.Flags().String("index", "", "also add every outline to the search index in this directory")

	return cmd
}

// runBatch processes inputDir into outputDir and prints the per-file
// results and the final count.
func (a *app) runBatch(cmd *cobra.Command, inputDir, outputDir string) error {
	bc, err := a.cfg.Batch()
	if err != nil {
		return err
	}
	processor := batch.NewProcessor(bc, a.logger)

	if a.cfg.IndexPath != "" {
		idx, err := index.Open(a.cfg.IndexPath, a.logger)
		if err != nil {
			return err
		}
		defer idx.Close()
		processor.WithIndex(idx)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	summary, err := processor.Process(ctx, inputDir, outputDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if summary.Total == 0 {
		fmt.Fprintf(out, "No PDF files found in %s\n", inputDir)
		return nil
	}

	fmt.Fprintf(out, "Found %d PDF file(s) to process\n", summary.Total)
	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(out, "Error saving %s: %v\n", r.Job.Output, r.Err)
			continue
		}
		fmt.Fprintf(out, "Processed: %s -> %s\n", r.Job.Input, r.Job.Output)
	}
	fmt.Fprintf(out, "Successfully processed %d/%d PDF files\n", summary.Succeeded, summary.Total)
	return nil
}
