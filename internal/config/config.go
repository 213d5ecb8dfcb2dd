// Package config loads pdfoutline settings from defaults, a YAML file,
// PDFOUTLINE_* environment variables and command-line flags, in increasing
// order of priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/tsawler/pdfoutline/batch"
	"github.com/tsawler/pdfoutline/export"
	"github.com/tsawler/pdfoutline/layout"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "PDFOUTLINE"

// Config is the complete pdfoutline configuration
type Config struct {
	InputDir  string `yaml:"input_dir" mapstructure:"input_dir"`
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`
	Workers   int    `yaml:"workers" mapstructure:"workers"`
	Format    string `yaml:"format" mapstructure:"format"`
	Validate  bool   `yaml:"validate" mapstructure:"validate"`
	IndexPath string `yaml:"index_path" mapstructure:"index_path"`

	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Heading HeadingConfig `yaml:"heading" mapstructure:"heading"`
	Title   TitleConfig   `yaml:"title" mapstructure:"title"`
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text or json
}

// HeadingConfig mirrors layout.HeadingConfig
type HeadingConfig struct {
	H1Ratio          float64 `yaml:"h1_ratio" mapstructure:"h1_ratio"`
	H2Ratio          float64 `yaml:"h2_ratio" mapstructure:"h2_ratio"`
	H3Ratio          float64 `yaml:"h3_ratio" mapstructure:"h3_ratio"`
	H3BoldFloorRatio float64 `yaml:"h3_bold_floor_ratio" mapstructure:"h3_bold_floor_ratio"`
	MinLength        int     `yaml:"min_length" mapstructure:"min_length"`
	MaxLength        int     `yaml:"max_length" mapstructure:"max_length"`
}

// TitleConfig mirrors layout.TitleConfig
type TitleConfig struct {
	MinLength int `yaml:"min_length" mapstructure:"min_length"`
	MaxLength int `yaml:"max_length" mapstructure:"max_length"`
}

// Default returns the built-in configuration
func Default() Config {
	h := layout.DefaultHeadingConfig()
	t := layout.DefaultTitleConfig()
	return Config{
		InputDir:  "/app/input",
		OutputDir: "/app/output",
		Workers:   runtime.NumCPU(),
		Format:    export.FormatJSON.String(),
		Validate:  true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Heading: HeadingConfig{
			H1Ratio:          h.H1Ratio,
			H2Ratio:          h.H2Ratio,
			H3Ratio:          h.H3Ratio,
			H3BoldFloorRatio: h.H3BoldFloorRatio,
			MinLength:        h.MinLength,
			MaxLength:        h.MaxLength,
		},
		Title: TitleConfig{
			MinLength: t.MinLength,
			MaxLength: t.MaxLength,
		},
	}
}

// DefaultPath returns $HOME/.pdfoutline/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".pdfoutline", "config.yaml"), nil
}

// Loader reads a Config through viper. Flags bound on the underlying viper
// instance take priority over everything else.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader creates a loader. An empty file means the default location,
// which may be absent; an explicit file must exist.
func NewLoader(file string) *Loader {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, file: file}
}

// Viper exposes the underlying instance for flag binding
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// ConfigFileUsed returns the file the configuration was read from, or ""
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Load reads the configuration file, if any, and returns the merged,
// validated configuration.
func (l *Loader) Load() (Config, error) {
	if l.file != "" {
		l.v.SetConfigFile(l.file)
	} else if path, err := DefaultPath(); err == nil {
		l.v.AddConfigPath(filepath.Dir(path))
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is NewLoader(file).Load()
func Load(file string) (Config, error) {
	return NewLoader(file).Load()
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("input_dir", d.InputDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("format", d.Format)
	v.SetDefault("validate", d.Validate)
	v.SetDefault("index_path", d.IndexPath)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("heading.h1_ratio", d.Heading.H1Ratio)
	v.SetDefault("heading.h2_ratio", d.Heading.H2Ratio)
	v.SetDefault("heading.h3_ratio", d.Heading.H3Ratio)
	v.SetDefault("heading.h3_bold_floor_ratio", d.Heading.H3BoldFloorRatio)
	v.SetDefault("heading.min_length", d.Heading.MinLength)
	v.SetDefault("heading.max_length", d.Heading.MaxLength)

	v.SetDefault("title.min_length", d.Title.MinLength)
	v.SetDefault("title.max_length", d.Title.MaxLength)
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}
	if c.Heading.MinLength < 0 || c.Heading.MaxLength <= c.Heading.MinLength {
		return fmt.Errorf("heading length bounds [%d, %d) are empty", c.Heading.MinLength, c.Heading.MaxLength)
	}
	if c.Title.MinLength < 0 || c.Title.MaxLength <= c.Title.MinLength+1 {
		return fmt.Errorf("title length bounds (%d, %d) are empty", c.Title.MinLength, c.Title.MaxLength)
	}
	return nil
}

// ParseLevel parses a log level name
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Analyzer returns the layout configuration
func (c Config) Analyzer() layout.AnalyzerConfig {
	return layout.AnalyzerConfig{
		HeadingConfig: layout.HeadingConfig{
			H1Ratio:          c.Heading.H1Ratio,
			H2Ratio:          c.Heading.H2Ratio,
			H3Ratio:          c.Heading.H3Ratio,
			H3BoldFloorRatio: c.Heading.H3BoldFloorRatio,
			MinLength:        c.Heading.MinLength,
			MaxLength:        c.Heading.MaxLength,
		},
		TitleConfig: layout.TitleConfig{
			MinLength: c.Title.MinLength,
			MaxLength: c.Title.MaxLength,
		},
	}
}

// Export returns the export configuration
func (c Config) Export() (export.Config, error) {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return export.Config{}, err
	}
	return export.Config{Format: format, Validate: c.Validate}, nil
}

// Batch returns the batch processor configuration. Zero workers means one
// per CPU.
func (c Config) Batch() (batch.Config, error) {
	exp, err := c.Export()
	if err != nil {
		return batch.Config{}, err
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return batch.Config{
		Workers:  workers,
		Export:   exp,
		Analyzer: c.Analyzer(),
	}, nil
}
