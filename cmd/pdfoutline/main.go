// Command pdfoutline extracts the title and H1-H3 outline of PDF documents.
package main

import (
	"fmt"
	"os"

	"github.com/tsawler/pdfoutline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorMessage(err))
		os.Exit(1)
	}
}
