// Package batch analyzes every PDF in a directory in parallel and writes one
// outline record per document.
//
// Documents that cannot be opened still produce an output record: the
// degenerate result with the title "Error Loading Document" and an empty
// outline. Only failures to write a record count as failed files.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/export"
	"github.com/tsawler/pdfoutline/index"
	"github.com/tsawler/pdfoutline/layout"
	"github.com/tsawler/pdfoutline/reader"
)

// Config holds configuration for a batch run
type Config struct {
	// Workers is the number of documents processed at once
	Workers int

	// Export selects the output format and validation
	Export export.Config

	// Analyzer holds the classification thresholds
	Analyzer layout.AnalyzerConfig
}

// DefaultConfig returns one worker per CPU, JSON output and the default
// thresholds.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		Export:   export.DefaultConfig(),
		Analyzer: layout.DefaultAnalyzerConfig(),
	}
}

// Job is one input document and the file its record is written to
type Job struct {
	Input  string
	Output string
}

// Result is the outcome of one job
type Result struct {
	Job      Job
	Title    string
	Headings int
	Warnings []pdfoutline.Warning
	// Degraded is set when the document could not be opened and the
	// degenerate record was written in its place.
	Degraded bool
	Err      error
	Elapsed  time.Duration
}

// Summary reports a whole run
type Summary struct {
	RunID     uuid.UUID
	InputDir  string
	OutputDir string
	Total     int
	Succeeded int
	Degraded  int
	Results   []Result
	Elapsed   time.Duration
}

// Failed returns the results whose record could not be written
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Processor runs batches
type Processor struct {
	config Config
	logger *slog.Logger
	index  *index.Index
}

// NewProcessor creates a processor. A nil logger discards log output.
func NewProcessor(config Config, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{config: config, logger: logger}
}

// WithIndex adds every successfully analyzed outline to idx
func (p *Processor) WithIndex(idx *index.Index) *Processor {
	p.index = idx
	return p
}

// FindPDFs returns the regular files in dir whose extension is .pdf in any
// letter case, sorted by name.
func FindPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// Process analyzes every PDF in inputDir and writes the records into
// outputDir, which is created first if missing. The returned error covers
// only problems with the directories; per-file failures are in the summary.
func (p *Processor) Process(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:     uuid.New(),
		InputDir:  inputDir,
		OutputDir: outputDir,
	}
	log := p.logger.With("run_id", summary.RunID.String())

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// A missing input directory is reported like an empty one.
	files, err := FindPDFs(inputDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	summary.Total = len(files)
	if len(files) == 0 {
		log.Info("batch.empty", "input_dir", inputDir)
		return summary, nil
	}

	jobs := make([]Job, len(files))
	for i, f := range files {
		jobs[i] = Job{Input: f, Output: export.OutputPath(outputDir, f, p.config.Export.Format)}
	}

	log.Info("batch.start", "files", len(jobs), "workers", p.config.Workers, "format", p.config.Export.Format.String())

	pool := NewPool(p.config.Workers, func(ctx context.Context, job Job) Result {
		return p.processFile(ctx, log, job)
	})
	summary.Results = pool.Run(ctx, jobs)

	for _, r := range summary.Results {
		if r.Err != nil {
			continue
		}
		summary.Succeeded++
		if r.Degraded {
			summary.Degraded++
		}
	}
	summary.Elapsed = time.Since(start)

	log.Info("batch.done",
		"succeeded", summary.Succeeded,
		"total", summary.Total,
		"degraded", summary.Degraded,
		"elapsed_ms", summary.Elapsed.Milliseconds(),
	)
	return summary, nil
}

// processFile analyzes one document and writes its record
func (p *Processor) processFile(ctx context.Context, log *slog.Logger, job Job) Result {
	start := time.Now()
	res := Result{Job: job}
	log = log.With("input", job.Input)

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	result, warnings, err := pdfoutline.AnalyzeFileWithConfig(job.Input, p.config.Analyzer)
	switch {
	case err == nil:
	case reader.IsDocumentOpenError(err):
		log.Warn("batch.file.unreadable", "error", err)
		res.Degraded = true
	default:
		log.Error("batch.file.failed", "error", err)
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}
	if len(warnings) > 0 {
		log.Warn("batch.file.warnings", "warnings", pdfoutline.FormatWarnings(warnings))
	}

	res.Title = result.Title
	res.Headings = len(result.Outline)
	res.Warnings = warnings

	if err := export.WriteFile(job.Output, result, p.config.Export); err != nil {
		log.Error("batch.file.write_failed", "output", job.Output, "error", err)
		res.Err = err
		res.Elapsed = time.Since(start)
		return res
	}

	if p.index != nil && !res.Degraded {
		if err := p.index.Add(filepath.Base(job.Input), result); err != nil {
			log.Warn("batch.file.index_failed", "error", err)
		}
	}

	res.Elapsed = time.Since(start)
	log.Info("batch.file.ok",
		"output", job.Output,
		"title", res.Title,
		"headings", res.Headings,
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
	return res
}
