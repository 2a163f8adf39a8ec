package table

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// placeholderName is used when cleaning leaves nothing usable.
const placeholderName = "unnamed_col"

var (
	nonWordRun    = regexp.MustCompile(`[^0-9A-Za-z_]+`)
	underscoreRun = regexp.MustCompile(`_{2,}`)
)

// CleanColumnName turns a raw header cell into a safe identifier:
// non-alphanumeric runs become a single underscore, a digit-leading
// result gets a "col_" prefix, repeated underscores collapse, trailing
// underscores are stripped, and an empty result falls back to a
// placeholder name.
func CleanColumnName(name string) string {
	clean := nonWordRun.ReplaceAllString(strings.TrimSpace(name), "_")
	if clean != "" && unicode.IsDigit(rune(clean[0])) {
		clean = "col_" + clean
	}
	clean = underscoreRun.ReplaceAllString(clean, "_")
	clean = strings.TrimRight(clean, "_")
	if clean == "" {
		clean = placeholderName
	}
	return clean
}

// uniqueNames suffixes duplicate cleaned names with _2, _3, ... so the
// resulting column set is unique.
func uniqueNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		seen[name]++
		if seen[name] == 1 {
			out[i] = name
			continue
		}
		for {
			candidate := fmt.Sprintf("%s_%d", name, seen[name])
			if seen[candidate] == 0 {
				seen[candidate]++
				out[i] = candidate
				break
			}
			seen[name]++
		}
	}
	return out
}

// ordinalNames synthesizes V1..Vn column names for headerless tables.
func ordinalNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("V%d", i+1)
	}
	return names
}
