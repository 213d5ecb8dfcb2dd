package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/tsawler/pdfoutline/internal/config"
)

// newLogger creates the process logger writing to w
func newLogger(w io.Writer, c config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
