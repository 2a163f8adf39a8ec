package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	tbl "github.com/leapstack-labs/tabcode/internal/table"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	var file, sep, header string
	var maxRows int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the parsed table with typed column headers",
		Long: `Parse the input and render it as a table instead of a code snippet.
Column headers carry the inferred type, so preview is the quickest way
to sanity-check detection before converting.`,
		Example: `  # Preview clipboard content
  tabcode preview

  # Preview a semicolon-separated file
  tabcode preview --file data.txt --sep ';'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)

			text, _, err := resolveInput(cmd, file)
			if err != nil {
				return err
			}
			parseOpts, err := buildParseOptions(ctx, sep, maxRows, header)
			if err != nil {
				return err
			}
			det, err := parseInput(text, parseOpts)
			if err != nil {
				return fmt.Errorf("failed to parse input: %w", err)
			}
			renderPreview(cmd, det.Table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from a file instead of the clipboard (- for stdin)")
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "Field separator (single character or 'tab'; default: auto-detect)")
	cmd.Flags().IntVarP(&maxRows, "max-rows", "m", 0, "Maximum data rows to show (0 = config default)")
	cmd.Flags().StringVar(&header, "header", "auto", "First row is a header: auto, yes, or no")

	return cmd
}

func renderPreview(cmd *cobra.Command, pt *tbl.ParsedTable) {
	w := cmd.OutOrStdout()
	if pt.Empty() {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(pt.Columns))
	for i, name := range pt.Columns {
		headerRow[i] = fmt.Sprintf("%s (%s)", name, pt.Types[i])
	}
	t.AppendHeader(headerRow)

	for _, row := range pt.Data {
		prettyRow := make(table.Row, len(row))
		for i, cell := range row {
			prettyRow[i] = cell
		}
		t.AppendRow(prettyRow)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(pt.Data))
}
