package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabcode/internal/clipboard"
	"github.com/leapstack-labs/tabcode/internal/render"
	"github.com/leapstack-labs/tabcode/internal/state"
	"github.com/leapstack-labs/tabcode/internal/table"
)

// ConvertOptions holds flag values for the convert command.
type ConvertOptions struct {
	File      string
	Sep       string
	MaxRows   int
	Header    string
	Format    string
	Copy      bool
	NoHistory bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert clipboard or pasted text into a code snippet",
		Long: `Convert tabular text into a code snippet that reconstructs the same
data as a typed structure.

Input is read from the clipboard by default; use --file to read a file,
--file - or a pipe to read stdin. The delimiter, header row, and column
types are detected automatically and can each be overridden. HTML tables
and CI artifact listings are recognized and extracted before parsing.`,
		Example: `  # Clipboard to a pandas snippet
  tabcode convert

  # A CSV file to a polars snippet
  tabcode convert --file data.csv --format polars

  # Piped TSV, first row forced to be a header
  cat data.tsv | tabcode convert --sep tab --header yes

  # Flat vector, one literal per line, copied back to the clipboard
  tabcode convert --format vector-vertical --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read input from a file instead of the clipboard (- for stdin)")
	cmd.Flags().StringVarP(&opts.Sep, "sep", "s", "", "Field separator (single character or 'tab'; default: auto-detect)")
	cmd.Flags().IntVarP(&opts.MaxRows, "max-rows", "m", 0, "Maximum data rows to convert (0 = config default)")
	cmd.Flags().StringVar(&opts.Header, "header", "auto", "First row is a header: auto, yes, or no")
	cmd.Flags().StringVarP(&opts.Format, "format", "F", "", "Output shape: pandas, polars, vector, vector-vertical (default: config)")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the generated snippet back to the clipboard")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "Skip recording this conversion in history")

	return cmd
}

func runConvert(cmd *cobra.Command, opts *ConvertOptions) error {
	ctx := NewCommandContext(cmd)

	text, source, err := resolveInput(cmd, opts.File)
	if err != nil {
		return err
	}

	parseOpts, err := buildParseOptions(ctx, opts.Sep, opts.MaxRows, opts.Header)
	if err != nil {
		return err
	}

	det, err := parseInput(text, parseOpts)
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	formatName := opts.Format
	if formatName == "" {
		formatName = ctx.Cfg.Format
	}
	shape, err := render.ParseShape(formatName)
	if err != nil {
		return err
	}

	snippet, err := render.Render(det.Table, shape, render.Options{
		Indent:     ctx.Cfg.Indent,
		TruncateAt: ctx.Cfg.TruncateThreshold,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(ctx.Renderer.Out(), snippet)

	if opts.Copy {
		if err := clipboard.Write(snippet); err != nil {
			ctx.Renderer.Errorf("could not copy result to clipboard: %v", err)
		} else {
			ctx.Renderer.Errorf("snippet copied to clipboard")
		}
	}

	if !opts.NoHistory {
		recordConversion(ctx, det, source, string(shape), snippet)
	}
	return nil
}

// buildParseOptions merges command flags with config defaults.
func buildParseOptions(ctx *CommandContext, sep string, maxRows int, header string) (table.Options, error) {
	delim, err := parseSepFlag(sep)
	if err != nil {
		return table.Options{}, err
	}
	headerMode, err := parseHeaderFlag(header)
	if err != nil {
		return table.Options{}, err
	}
	if maxRows == 0 {
		maxRows = ctx.Cfg.MaxRows
	}
	return table.Options{Delimiter: delim, MaxRows: maxRows, Header: headerMode}, nil
}

// recordConversion appends to history, best-effort.
func recordConversion(ctx *CommandContext, det *table.Detection, source, shape, snippet string) {
	store := openHistory(ctx)
	if store == nil {
		return
	}
	defer func() { _ = store.Close() }()

	delim := ""
	if det.Delimiter != 0 {
		delim = string(det.Delimiter)
	}
	err := store.RecordConversion(&state.Conversion{
		Source:    source,
		Shape:     shape,
		Delimiter: delim,
		HasHeader: det.HasHeader,
		RowCount:  len(det.Table.Data),
		ColCount:  len(det.Table.Columns),
		Snippet:   snippet,
	})
	if err != nil {
		ctx.Logger.Debug("failed to record conversion", "error", err)
	}
}
