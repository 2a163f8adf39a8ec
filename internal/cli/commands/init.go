package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/tabcode/internal/cli/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter tabcode.yaml",
		Long: `Write a tabcode.yaml with the default configuration so the available
options are easy to discover and edit.`,
		Example: `  # Initialize in the current directory
  tabcode init

  # Initialize elsewhere, overwriting an existing config
  tabcode init ~/projects/analysis --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			ctx := NewCommandContext(cmd)
			return runInit(ctx, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing tabcode.yaml")
	return cmd
}

func runInit(ctx *CommandContext, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	path := filepath.Join(dir, "tabcode.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("tabcode.yaml already exists. Use --force to overwrite")
	}

	starter := map[string]any{
		"format":             config.DefaultFormat,
		"max_rows":           config.DefaultMaxRows,
		"indent":             config.DefaultIndent,
		"truncate_threshold": config.DefaultTruncateThreshold,
		"output":             config.DefaultOutput,
		"history": map[string]any{
			"enabled": false,
			"path":    config.DefaultHistoryPath(),
		},
	}
	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	ctx.Renderer.Success("wrote " + path)
	return nil
}
