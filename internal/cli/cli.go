// Package cli renders utccheck output: rustc-style diagnostics for invalid
// timestamps and load failures, finding lists, tables and a spinner. Output is
// colored on a terminal, plain in pipes and CI, and replaced by JSON on request.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// OutputMode determines how output is formatted.
type OutputMode int

const (
	// ModeTTY enables colored output for interactive terminals.
	ModeTTY OutputMode = iota
	// ModePlain outputs plain text without colors (pipes, CI, NO_COLOR).
	ModePlain
	// ModeJSON outputs one JSON document per report.
	ModeJSON
)

func (m OutputMode) String() string {
	switch m {
	case ModeTTY:
		return "tty"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	}
	return "unknown"
}

// Config holds output configuration.
type Config struct {
	Mode   OutputMode
	Width  int
	Writer io.Writer
}

// DefaultConfig detects the output mode for stdout.
//   - stdout is a terminal and NO_COLOR is unset -> ModeTTY
//   - otherwise, or TERM=dumb -> ModePlain
func DefaultConfig() *Config {
	return detect(os.Stdout)
}

// NewConfig detects the mode for w and then applies the --json and
// --no-color flags. JSON wins over color settings.
func NewConfig(w io.Writer, jsonOutput, noColor bool) *Config {
	cfg := detect(w)
	if noColor {
		cfg.Mode = ModePlain
	}
	if jsonOutput {
		cfg.Mode = ModeJSON
	}
	return cfg
}

func detect(w io.Writer) *Config {
	mode := ModePlain
	width := 80

	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			mode = ModeTTY
		}
	}

	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		mode = ModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		mode = ModePlain
	}

	if w := lipgloss.Width(""); w > 0 {
		width = w
	}

	return &Config{
		Mode:   mode,
		Width:  width,
		Writer: w,
	}
}

// IsTTY returns true if running in interactive terminal mode.
func (c *Config) IsTTY() bool {
	return c.Mode == ModeTTY
}

// IsJSON returns true if running in JSON output mode.
func (c *Config) IsJSON() bool {
	return c.Mode == ModeJSON
}

// Global default config, initialized lazily.
var defaultCfg *Config

// Default returns the global default configuration.
func Default() *Config {
	if defaultCfg == nil {
		defaultCfg = DefaultConfig()
	}
	return defaultCfg
}

// SetDefault sets the global default configuration.
// main calls it once flags are parsed; tests call it to force plain output.
func SetDefault(cfg *Config) {
	defaultCfg = cfg
}

// EnableColors returns true if colors should be used.
func EnableColors() bool {
	return Default().IsTTY()
}
