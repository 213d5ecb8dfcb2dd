// Package cli implements the pdfoutline command line.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline"
	"github.com/tsawler/pdfoutline/internal/config"
)

// Version is the release reported by the version command
var Version = "v0.1.0"

// defaultOutput is where single-file mode writes when no output is given
const defaultOutput = "output.json"

// flagKeys maps configuration keys to the flags that override them
var flagKeys = map[string]string{
	"input_dir":  "input",
	"output_dir": "output",
	"workers":    "workers",
	"format":     "format",
	"validate":   "validate",
	"index_path": "index",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// app carries the state shared by the commands of one invocation
type app struct {
	cfgFile string
	loader  *config.Loader
	cfg     config.Config
	logger  *slog.Logger
}

// Execute runs the command line with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the complete command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pdfoutline [input.pdf [output]]",
		Short: "Extract the title and H1-H3 outline of PDF documents",
		Long: `pdfoutline reads the text layer of PDF documents and writes a record
holding the document title and an outline of its H1, H2 and H3 headings.

Without arguments every PDF in the configured input directory is processed
and one record per document is written to the output directory.

With one or two arguments a single document is processed. The record is
written to the second argument, or output.json, in the format matching its
extension.

Example:
  pdfoutline
  pdfoutline report.pdf
  pdfoutline report.pdf report.yaml
  pdfoutline batch --input ./pdfs --output ./outlines --workers 4`,
		Args:              cobra.MaximumNArgs(2),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.pdfoutline/config.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")

	root.AddCommand(a.batchCommand())
	root.AddCommand(a.searchCommand())
	root.AddCommand(a.configCommand())
	root.AddCommand(versionCommand())

	return root
}

// setup loads the configuration, with the flags of the running command
// taking priority, and creates the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.loader = config.NewLoader(a.cfgFile)

	v := a.loader.Viper()
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return a.runBatch(cmd, a.cfg.InputDir, a.cfg.OutputDir)
	case 1:
		return a.runSingle(cmd, args[0], defaultOutput)
	default:
		return a.runSingle(cmd, args[0], args[1])
	}
}

// ErrorMessage renders err the way it is shown to the user
func ErrorMessage(err error) string {
	var notFound *pdfoutline.InputNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Error: PDF file '%s' not found.", notFound.Path)
	}
	return fmt.Sprintf("Error: %v", err)
}
