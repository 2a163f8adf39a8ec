// Package render coerces raw cells into typed literals and emits code
// snippets reconstructing a parsed table.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/tabcode/internal/infer"
)

// Kind tags a coerced cell variant.
type Kind int

const (
	KindMissing Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindText
)

// Cell is the tagged union produced at the coercion boundary. The
// column's resolved type drives which variant a raw cell becomes; cells
// that fail to parse under that type degrade to KindMissing.
type Cell struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Text  string
}

// noValueLiteral is the language-neutral "no value" literal in the
// generated Python snippets.
const noValueLiteral = "None"

// Coerce interprets a raw cell under the column's resolved type.
// Missing tokens map to KindMissing regardless of the column type, and
// per-cell parse failures are recovered locally the same way.
func Coerce(raw string, t infer.Type) Cell {
	if infer.IsMissing(raw) {
		return Cell{Kind: KindMissing}
	}
	s := strings.TrimSpace(raw)

	switch t {
	case infer.Integer:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Cell{Kind: KindMissing}
		}
		return Cell{Kind: KindInt, Int: n}
	case infer.Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Cell{Kind: KindMissing}
		}
		return Cell{Kind: KindFloat, Float: f}
	case infer.Boolean:
		switch strings.ToLower(s) {
		case "true", "yes", "y", "t", "1":
			return Cell{Kind: KindBool, Bool: true}
		case "false", "no", "n", "f", "0":
			return Cell{Kind: KindBool, Bool: false}
		}
		return Cell{Kind: KindMissing}
	case infer.Date:
		// Dates stay textual; downstream tooling parses the quoted string.
		return Cell{Kind: KindDate, Text: s}
	default:
		return Cell{Kind: KindText, Text: s}
	}
}

// Literal renders the snippet text for a coerced cell.
func (c Cell) Literal() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return formatFloat(c.Float)
	case KindBool:
		if c.Bool {
			return "True"
		}
		return "False"
	case KindDate, KindText:
		return strconv.Quote(c.Text)
	default:
		return noValueLiteral
	}
}

// Value is the composition the renderers use: coerce then format.
func Value(raw string, t infer.Type) string {
	return Coerce(raw, t).Literal()
}

// formatFloat renders a float as a Python literal. Integral values keep
// a trailing ".0" and the inf/-inf/nan tokens pass through as in the
// source data.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
