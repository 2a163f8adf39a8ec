package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/tabcode/internal/cli/output"
	"github.com/leapstack-labs/tabcode/internal/table"
)

// detectReport is the JSON shape of the detect command output.
type detectReport struct {
	Delimiter string         `json:"delimiter"`
	HasHeader bool           `json:"has_header"`
	Rows      int            `json:"rows"`
	Columns   []detectColumn `json:"columns"`
}

type detectColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	var file, sep, header string
	var maxRows int

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the detected delimiter, header decision, and column types",
		Long: `Run the detection pipeline without generating a snippet: report the
resolved delimiter, whether the first row was taken as a header, and the
inferred type of every column.

Output adapts to environment:
  - Terminal: styled text
  - Piped/Scripted: markdown
  - --output json: machine-readable`,
		Example: `  # Inspect clipboard content
  tabcode detect

  # Inspect a file as JSON
  tabcode detect --file data.csv --output json`,
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
			return renderDetection(ctx.Renderer, det)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from a file instead of the clipboard (- for stdin)")
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "Field separator (single character or 'tab'; default: auto-detect)")
	cmd.Flags().IntVarP(&maxRows, "max-rows", "m", 0, "Maximum data rows to consider (0 = config default)")
	cmd.Flags().StringVar(&header, "header", "auto", "First row is a header: auto, yes, or no")

	return cmd
}

func renderDetection(r *output.Renderer, det *table.Detection) error {
	if r.EffectiveMode() == output.ModeJSON {
		report := detectReport{
			Delimiter: delimiterLabel(det.Delimiter),
			HasHeader: det.HasHeader,
			Rows:      len(det.Table.Data),
			Columns:   make([]detectColumn, len(det.Table.Columns)),
		}
		for i, name := range det.Table.Columns {
			report.Columns[i] = detectColumn{Name: name, Type: string(det.Table.Types[i])}
		}
		return r.JSON(report)
	}

	r.Header(1, "Detection")
	r.KeyValue("Delimiter", delimiterLabel(det.Delimiter))
	r.KeyValue("Header row", strconv.FormatBool(det.HasHeader))
	r.KeyValue("Data rows", strconv.Itoa(len(det.Table.Data)))

	var cols []string
	for i, name := range det.Table.Columns {
		cols = append(cols, fmt.Sprintf("%s (%s)", name, det.Table.Types[i]))
	}
	r.KeyValue("Columns", strings.Join(cols, ", "))
	return nil
}

// delimiterLabel renders a delimiter rune for display.
func delimiterLabel(d rune) string {
	switch d {
	case 0:
		return "none (pre-split input)"
	case '\t':
		return "tab"
	default:
		return string(d)
	}
}
