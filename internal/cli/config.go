package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
)

// Config holds user preferences loaded from the optional config file
// (~/.config/jsoncanvas/config.toml). Missing files and missing keys
// fall back to defaults; a malformed file is an error.
type Config struct {
	Format FormatConfig `toml:"format"`
	New    NewConfig    `toml:"new"`
}

// FormatConfig controls how the fmt and new commands encode output.
type FormatConfig struct {
	// Indent is "tab" (default) or a number of spaces, e.g. "2".
	Indent string `toml:"indent"`

	// Corners adds the derived x1/y1 corner fields to emitted nodes.
	Corners bool `toml:"corners"`
}

// NewConfig controls the geometry of nodes created by the new command.
type NewConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Format: FormatConfig{Indent: "tab"},
		New:    NewConfig{Width: canvas.DefaultWidth, Height: canvas.DefaultHeight},
	}
}

// loadConfig reads the config file if present, merging it over defaults.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// indentString converts the configured indent into the literal string
// passed to the encoder.
func (f FormatConfig) indentString() string {
	switch f.Indent {
	case "", "tab":
		return "\t"
	}
	var n int
	if _, err := fmt.Sscanf(f.Indent, "%d", &n); err == nil && n >= 0 && n <= 8 {
		return strings.Repeat(" ", n)
	}
	return "\t"
}
