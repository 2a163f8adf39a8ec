package table

import (
	"regexp"
	"unicode/utf8"

	"github.com/leapstack-labs/tabcode/internal/infer"
)

// identifierPattern matches cells that look like column labels rather
// than data: a letter followed by letters, digits, or underscores.
var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// headerLengthRatio: the first row is declared a header when its average
// cell length is below this fraction of the data rows' average.
const headerLengthRatio = 0.6

// HasHeader decides whether row 0 of delimiter-split rows is a label row.
//
// Rules apply in order, first match wins:
//  1. fewer than 2 rows: not a header
//  2. every row-0 cell classifies as string while some row-1 cell does
//     not: header
//  3. every row-0 cell is identifier-like: header
//  4. with more than 2 rows, row-0 cells average under 60% of the
//     remaining cells' average length: header
//  5. otherwise: not a header
//
// The chain trades precision for simplicity and can misfire on atypical
// inputs; callers may override the decision explicitly.
func HasHeader(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}
	first, second := rows[0], rows[1]

	allString := true
	for _, cell := range first {
		if infer.Column([]string{cell}) != infer.String {
			allString = false
			break
		}
	}
	if allString {
		for _, cell := range second {
			if infer.Column([]string{cell}) != infer.String {
				return true
			}
		}
	}

	identifierLike := true
	for _, cell := range first {
		if !identifierPattern.MatchString(cell) {
			identifierLike = false
			break
		}
	}
	if identifierLike {
		return true
	}

	if len(rows) > 2 {
		dataTotal := 0
		for _, row := range rows[1:] {
			for _, cell := range row {
				dataTotal += utf8.RuneCountInString(cell)
			}
		}
		avgData := float64(dataTotal) / float64(len(rows)-1) / float64(len(rows[0]))

		firstTotal := 0
		for _, cell := range first {
			firstTotal += utf8.RuneCountInString(cell)
		}
		avgFirst := float64(firstTotal) / float64(len(first))

		if avgFirst < avgData*headerLengthRatio {
			return true
		}
	}

	return false
}
