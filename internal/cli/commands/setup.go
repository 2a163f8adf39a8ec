// Package commands implements the tabcode CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabcode/internal/cli/config"
	"github.com/leapstack-labs/tabcode/internal/cli/output"
	"github.com/leapstack-labs/tabcode/internal/clipboard"
	"github.com/leapstack-labs/tabcode/internal/htmltable"
	"github.com/leapstack-labs/tabcode/internal/state"
	"github.com/leapstack-labs/tabcode/internal/table"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the config, logger, and renderer for a
// command invocation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the loaded configuration, falling back to defaults
// when the root command's config loading has not run (tests, direct
// command construction).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		Format:            config.DefaultFormat,
		MaxRows:           config.DefaultMaxRows,
		Indent:            config.DefaultIndent,
		TruncateThreshold: config.DefaultTruncateThreshold,
		OutputFormat:      config.DefaultOutput,
	}
}

// openHistory opens the history store when enabled. Failures are logged
// and swallowed: history must never break a conversion.
func openHistory(ctx *CommandContext) state.Store {
	h := ctx.Cfg.GetHistory()
	if !h.Enabled {
		return nil
	}
	if dir := filepath.Dir(h.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			ctx.Logger.Debug("history directory unavailable", "path", dir, "error", err)
			return nil
		}
	}
	store, err := state.Open(h.Path)
	if err != nil {
		ctx.Logger.Debug("history store unavailable", "path", h.Path, "error", err)
		return nil
	}
	return store
}

// resolveInput returns the raw text to parse and a source label
// (file, stdin, or clipboard).
func resolveInput(cmd *cobra.Command, filePath string) (string, string, error) {
	if filePath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), "file", nil
	}
	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	text, err := clipboard.Read()
	if err != nil {
		return "", "", err
	}
	return text, "clipboard", nil
}

// parseInput runs the paste pipeline: CI artifact listings and HTML
// tables are recognized first and bypass delimiter detection; everything
// else goes through the regular table parser.
func parseInput(text string, opts table.Options) (*table.Detection, error) {
	if det, ok := clipboard.ExtractArtifactListing(text, opts); ok {
		return det, nil
	}
	if strings.Contains(text, "<table") {
		if det, ok := htmltable.Extract(text, opts); ok {
			return det, nil
		}
	}
	return table.Detect(text, opts)
}

// parseHeaderFlag maps the --header flag value to a header mode.
func parseHeaderFlag(value string) (table.Header, error) {
	switch strings.ToLower(value) {
	case "", "auto":
		return table.HeaderAuto, nil
	case "yes", "true", "on":
		return table.HeaderYes, nil
	case "no", "false", "off":
		return table.HeaderNo, nil
	}
	return table.HeaderAuto, fmt.Errorf("invalid --header value %q (want auto, yes, or no)", value)
}

// parseSepFlag maps the --sep flag value to a delimiter rune (0 = auto).
func parseSepFlag(value string) (rune, error) {
	switch value {
	case "":
		return 0, nil
	case "\\t", "tab":
		return '\t', nil
	}
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid --sep value %q (want a single character)", value)
	}
	return runes[0], nil
}
