package export

import (
	"fmt"
	"strings"
)

// Format defines the available export formats
type Format int

const (
	// FormatJSON exports the canonical JSON record
	FormatJSON Format = iota
	// FormatYAML exports the record as YAML
	FormatYAML
	// FormatHTML exports a navigable HTML outline
	FormatHTML
	// FormatXLSX exports a spreadsheet with one row per heading
	FormatXLSX
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatHTML, FormatXLSX}

// String returns the format name used in configuration and flags
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatHTML:
		return "html"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FileExtension returns the file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatHTML:
		return ".html"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".json"
	}
}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "html", "htm":
		return FormatHTML, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return FormatJSON, fmt.Errorf("unknown format %q (want one of %s)", s, formatNames())
}

// FormatForPath picks the format matching a file's extension, or JSON when
// the extension is not recognized.
func FormatForPath(path string) Format {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return FormatJSON
	}
	f, err := ParseFormat(path[i+1:])
	if err != nil {
		return FormatJSON
	}
	return f
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
