package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdfoutline/index"
	"github.com/tsawler/pdfoutline/model"
)

func (a *app) searchCommand() *cobra.Command {
	var (
		level  string
		limit  int
		source string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the headings of indexed outlines",
		Long: `Search looks up headings in an index built with "pdfoutline batch --index".
Matches on the heading text rank above matches on the document title.

Example:
  pdfoutline search --index ./outline-index "risk assessment"
  pdfoutline search --index ./outline-index --level H1 introduction`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.IndexPath == "" {
				return errors.New("no index configured (use --index)")
			}
			if _, err := os.Stat(a.cfg.IndexPath); errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("index %s does not exist", a.cfg.IndexPath)
			}

			opts := index.SearchOptions{Limit: limit, Source: source}
			if level != "" {
				l, err := model.ParseHeadingLevel(level)
				if err != nil {
					return err
				}
				opts.Level = l
			}

			idx, err := index.Open(a.cfg.IndexPath, a.logger)
			if err != nil {
				return err
			}
			defer idx.Close()

			hits, err := idx.Search(cmd.Context(), strings.Join(args, " "), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintln(out, "No matching headings")
				return nil
			}
			for _, h := range hits {
				fmt.Fprintf(out, "%s: %s (Page %d) in %s\n", h.Level, h.Text, h.Page, h.Source)
			}
			return nil
		},
	}

	cmd.Flags().String("index", "", "directory holding the search index")
	cmd.Flags().StringVar(&level, "level", "", "only return headings of this level (H1, H2, H3)")
	cmd.Flags().IntVar(&limit, "limit", index.DefaultLimit, "maximum number of results")
	cmd.Flags().StringVar(&source, "source", "", "only return headings of this source file")

	return cmd
}
