package render

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tabcode/internal/table"
)

// Shape selects the output code shape.
type Shape string

const (
	// ShapePandas emits a pandas DataFrame constructor.
	ShapePandas Shape = "pandas"
	// ShapePolars emits a polars DataFrame constructor.
	ShapePolars Shape = "polars"
	// ShapeVector emits a single flattened list, row-major.
	ShapeVector Shape = "vector"
	// ShapeVectorVertical is ShapeVector with one literal per line.
	ShapeVectorVertical Shape = "vector-vertical"
)

// Options controls snippet layout. The zero value uses the defaults.
type Options struct {
	// Indent is the number of spaces per level (default 4).
	Indent int
	// TruncateAt is the column length beyond which dataframe shapes
	// display first-5 ... last-3 (default 10). Display-only: the parsed
	// table itself is never truncated.
	TruncateAt int
}

const (
	defaultIndent     = 4
	defaultTruncateAt = 10

	truncateHead = 5
	truncateTail = 3
)

func (o Options) withDefaults() Options {
	if o.Indent <= 0 {
		o.Indent = defaultIndent
	}
	if o.TruncateAt <= 0 {
		o.TruncateAt = defaultTruncateAt
	}
	return o
}

// ParseShape maps a user-supplied shape name to a Shape. "list" is
// accepted as an alias for the flat vector.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pandas":
		return ShapePandas, nil
	case "polars":
		return ShapePolars, nil
	case "vector", "list":
		return ShapeVector, nil
	case "vector-vertical", "vertical":
		return ShapeVectorVertical, nil
	}
	return "", fmt.Errorf("unknown output shape: %q (want pandas, polars, vector, or vector-vertical)", name)
}

// Render walks the table's columns in order, coerces every cell per its
// column type, and emits the requested code shape. An unrecognized
// shape is a caller-contract violation and returns an error; everything
// else is best-effort and cannot fail.
func Render(pt *table.ParsedTable, shape Shape, opts Options) (string, error) {
	opts = opts.withDefaults()
	switch shape {
	case ShapePandas:
		return renderDataFrame(pt, "pandas", "pd", opts), nil
	case ShapePolars:
		return renderDataFrame(pt, "polars", "pl", opts), nil
	case ShapeVector:
		return renderVector(pt, false, opts), nil
	case ShapeVectorVertical:
		return renderVector(pt, true, opts), nil
	}
	return "", fmt.Errorf("unknown output shape: %q", shape)
}

// renderDataFrame emits a mapping-style constructor with column names
// left-aligned to a shared pad width.
func renderDataFrame(pt *table.ParsedTable, pkg, alias string, opts Options) string {
	if pt.Empty() {
		return fmt.Sprintf("import %s as %s\ndf = %s.DataFrame()", pkg, alias, alias)
	}

	lines := []string{
		fmt.Sprintf("import %s as %s", pkg, alias),
		"",
		fmt.Sprintf("df = %s.DataFrame({", alias),
	}

	colPad := 0
	for _, name := range pt.Columns {
		if len(name)+2 > colPad {
			colPad = len(name) + 2
		}
	}

	indent := strings.Repeat(" ", opts.Indent)
	for i, name := range pt.Columns {
		literals := make([]string, len(pt.Data))
		for r, row := range pt.Data {
			literals[r] = Value(row[i], pt.Types[i])
		}

		var values string
		if len(literals) > opts.TruncateAt {
			values = strings.Join(literals[:truncateHead], ", ") +
				", ..., " +
				strings.Join(literals[len(literals)-truncateTail:], ", ")
		} else {
			values = strings.Join(literals, ", ")
		}

		quoted := fmt.Sprintf("%q", name)
		lines = append(lines, fmt.Sprintf("%s%-*s: [%s],", indent, colPad, quoted, values))
	}

	lines = append(lines, "})")
	return strings.Join(lines, "\n")
}

// renderVector flattens the table row-major into a single list, typing
// each cell per its originating column. No truncation ever applies: the
// emitted literal count is exactly rows * columns.
func renderVector(pt *table.ParsedTable, vertical bool, opts Options) string {
	if pt.Empty() {
		return "[]"
	}

	var literals []string
	for _, row := range pt.Data {
		for c, cell := range row {
			literals = append(literals, Value(cell, pt.Types[c]))
		}
	}

	if vertical {
		indent := strings.Repeat(" ", opts.Indent)
		return "[\n" + indent + strings.Join(literals, ",\n"+indent) + "\n]"
	}
	return "[" + strings.Join(literals, ", ") + "]"
}
