package commands

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabcode/internal/cli/output"
	"github.com/leapstack-labs/tabcode/internal/state"
)

// NewHistoryCommand creates the history command group.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded conversions",
		Long: `Inspect the conversion history recorded in the local SQLite store.

History is opt-in: enable it with 'history.enabled: true' in
tabcode.yaml or TABCODE_HISTORY_ENABLED=true.`,
	}
	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryClearCommand())
	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			store, err := requireHistory(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListConversions(limit)
			if err != nil {
				return err
			}

			if ctx.Renderer.EffectiveMode() == output.ModeJSON {
				return ctx.Renderer.JSON(records)
			}
			renderHistoryTable(cmd, records)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show (0 = all)")
	return cmd
}

func newHistoryClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			store, err := requireHistory(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			n, err := store.Clear()
			if err != nil {
				return err
			}
			ctx.Renderer.Success(fmt.Sprintf("removed %d conversion(s)", n))
			return nil
		},
	}
}

// requireHistory opens the history store or explains how to enable it.
// Unlike conversion-time recording, the history command treats a missing
// store as a user-facing error.
func requireHistory(ctx *CommandContext) (state.Store, error) {
	h := ctx.Cfg.GetHistory()
	if !h.Enabled {
		return nil, fmt.Errorf("history is disabled; set history.enabled: true in tabcode.yaml or TABCODE_HISTORY_ENABLED=true")
	}
	store, err := state.Open(h.Path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func renderHistoryTable(cmd *cobra.Command, records []*state.Conversion) {
	w := cmd.OutOrStdout()
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(no conversions recorded)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "When", "Source", "Shape", "Size"})

	for _, c := range records {
		id := c.ID
		if len(id) > 8 {
			id = id[:8]
		}
		t.AppendRow(table.Row{
			id,
			c.CreatedAt.Local().Format(time.DateTime),
			c.Source,
			c.Shape,
			fmt.Sprintf("%dx%d", c.RowCount, c.ColCount),
		})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d conversion(s))\n", len(records))
}
