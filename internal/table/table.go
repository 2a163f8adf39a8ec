// Package table parses delimited text into a typed tabular structure.
// It resolves the delimiter, decides whether the first row is a header,
// rectangularizes the data, and infers one type per column.
package table

import (
	"encoding/csv"
	"strings"

	"github.com/leapstack-labs/tabcode/internal/infer"
)

// Header controls header-row handling during a parse.
type Header int

const (
	// HeaderAuto lets the heuristic chain decide.
	HeaderAuto Header = iota
	// HeaderYes forces the first row to be treated as labels.
	HeaderYes
	// HeaderNo forces all rows to be treated as data.
	HeaderNo
)

// Options controls a single parse. The zero value auto-detects the
// delimiter, keeps all rows, and auto-detects the header.
type Options struct {
	// Delimiter is the field separator; 0 means auto-detect.
	Delimiter rune
	// MaxRows caps the number of data rows considered; 0 means unlimited.
	// The cap applies to rows only, never columns, and is not an error.
	MaxRows int
	// Header overrides header detection when not HeaderAuto.
	Header Header
}

// ParsedTable is the canonical intermediate result: ordered unique
// column names, rectangular rows of raw string cells, and one inferred
// type per column. Instances are constructed once per parse and never
// mutated afterwards.
type ParsedTable struct {
	Columns []string
	Data    [][]string
	Types   []infer.Type
}

// Empty reports whether the table holds no data rows.
func (pt *ParsedTable) Empty() bool {
	return len(pt.Data) == 0
}

// Detection reports the decisions resolved during a parse.
type Detection struct {
	Delimiter rune
	HasHeader bool
	Table     *ParsedTable
}

// Parse converts raw multi-line text into a ParsedTable. Empty or
// whitespace-only input yields an empty table rather than an error.
func Parse(text string, opts Options) (*ParsedTable, error) {
	det, err := Detect(text, opts)
	if err != nil {
		return nil, err
	}
	return det.Table, nil
}

// Detect runs the full parse and additionally reports the resolved
// delimiter and header decision.
func Detect(text string, opts Options) (*Detection, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = DetectDelimiter(text)
	}
	det := &Detection{Delimiter: delim, Table: emptyTable()}

	if strings.TrimSpace(text) == "" {
		return det, nil
	}

	rows, err := splitRows(text, delim)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return det, nil
	}

	hasHeader := false
	switch opts.Header {
	case HeaderYes:
		hasHeader = true
	case HeaderNo:
		hasHeader = false
	default:
		hasHeader = HasHeader(rows)
	}
	det.HasHeader = hasHeader
	det.Table = assemble(rows, hasHeader, opts.MaxRows)
	return det, nil
}

// FromRows builds a ParsedTable from pre-split rows, bypassing delimiter
// detection. HTML tables and vendor listings normalize through here.
func FromRows(rows [][]string, header Header, maxRows int) *ParsedTable {
	if len(rows) == 0 {
		return emptyTable()
	}
	hasHeader := false
	switch header {
	case HeaderYes:
		hasHeader = true
	case HeaderNo:
		hasHeader = false
	default:
		hasHeader = HasHeader(rows)
	}
	return assemble(rows, hasHeader, maxRows)
}

func emptyTable() *ParsedTable {
	return &ParsedTable{Columns: []string{}, Data: [][]string{}, Types: []infer.Type{}}
}

// splitRows splits text into rows with a quote-aware CSV reader. Ragged
// rows are tolerated here and rectangularized during assembly.
func splitRows(text string, delim rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := all[:0]
	for _, row := range all {
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// assemble turns split rows into the final table: header extraction or
// ordinal names, row cap, rectangularization, and per-column inference.
func assemble(rows [][]string, hasHeader bool, maxRows int) *ParsedTable {
	var columns []string
	var data [][]string
	if hasHeader && len(rows) > 1 {
		cleaned := make([]string, len(rows[0]))
		for i, cell := range rows[0] {
			cleaned[i] = CleanColumnName(cell)
		}
		columns = uniqueNames(cleaned)
		data = rows[1:]
	} else {
		columns = ordinalNames(len(rows[0]))
		data = rows
	}

	if maxRows > 0 && len(data) > maxRows {
		data = data[:maxRows]
	}

	rect := make([][]string, len(data))
	for i, row := range data {
		r := make([]string, len(columns))
		copy(r, row)
		rect[i] = r
	}

	types := make([]infer.Type, len(columns))
	for c := range columns {
		col := make([]string, len(rect))
		for r := range rect {
			col[r] = rect[r][c]
		}
		types[c] = infer.Column(col)
	}

	return &ParsedTable{Columns: columns, Data: rect, Types: types}
}
