// Package config provides configuration management for the tabcode CLI.
//
// Configuration is assembled from defaults, an optional tabcode.yaml
// file, TABCODE_-prefixed environment variables, and CLI flags, in
// ascending precedence.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all CLI configuration options.
type Config struct {
	// Format is the default output shape: pandas, polars, vector, or
	// vector-vertical.
	Format string `koanf:"format"`
	// MaxRows caps how many data rows a conversion considers (0 = all).
	MaxRows int `koanf:"max_rows"`
	// Indent is the number of spaces per indentation level in snippets.
	Indent int `koanf:"indent"`
	// TruncateThreshold is the column length beyond which dataframe
	// snippets display an ellipsis. Display-only; data is never lost.
	TruncateThreshold int `koanf:"truncate_threshold"`
	// OutputFormat selects the CLI rendering mode: auto, text,
	// markdown, or json.
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	// History configures the conversion history store.
	History *HistoryConfig `koanf:"history"`
}

// HistoryConfig configures the SQLite conversion history.
type HistoryConfig struct {
	// Enabled turns history recording on. Off by default so that plain
	// conversions never write to the filesystem.
	Enabled bool `koanf:"enabled"`
	// Path is the history database location.
	Path string `koanf:"path"`
}

// Default configuration values.
const (
	DefaultFormat            = "pandas"
	DefaultMaxRows           = 200
	DefaultIndent            = 4
	DefaultTruncateThreshold = 10
	DefaultOutput            = "auto" // TTY=text, non-TTY=markdown
)

// DefaultHistoryPath returns the default history database location
// under the user's home directory.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tabcode", "history.db")
	}
	return filepath.Join(home, ".tabcode", "history.db")
}

// GetHistory returns the history config with defaults applied for any
// unset values.
func (c *Config) GetHistory() *HistoryConfig {
	if c.History == nil {
		return &HistoryConfig{Enabled: false, Path: DefaultHistoryPath()}
	}
	h := *c.History
	if h.Path == "" {
		h.Path = DefaultHistoryPath()
	}
	return &h
}
