// Package infer classifies raw table cells into a small type taxonomy
// and resolves a single type per column by majority vote.
package infer

import (
	"regexp"
	"strconv"
	"strings"
)

// Type is the classification applied to an entire column.
type Type string

const (
	Integer Type = "integer"
	Float   Type = "float"
	Boolean Type = "boolean"
	Date    Type = "date"
	String  Type = "string"
)

// majorityThreshold is the vote share one type must strictly exceed to
// win a mixed column.
const majorityThreshold = 0.9

// missingTokens are cell values treated as absent data. They are
// excluded from type voting and render as the no-value literal.
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"none": {},
	"null": {},
}

// IsMissing reports whether a cell should be treated as absent data.
// Matching is case-insensitive and ignores surrounding whitespace.
func IsMissing(cell string) bool {
	_, ok := missingTokens[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}

var booleanTokens = map[string]struct{}{
	"true": {}, "false": {},
	"yes": {}, "no": {},
	"t": {}, "f": {},
	"y": {}, "n": {},
	"1": {}, "0": {},
}

// datePatterns covers the fixed set of recognized date layouts:
// ISO YYYY-MM-DD, MM/DD/YYYY, MM/DD/YY, DD-MM-YYYY, YYYY/MM/DD,
// "DD Month YYYY" and "Month DD, YYYY".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}$`),
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`),
	regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`),
	regexp.MustCompile(`^\d{1,2}\s+[a-zA-Z]{3,}\s+\d{4}$`),
	regexp.MustCompile(`^[a-zA-Z]{3,}\s+\d{1,2},\s+\d{4}$`),
}

func isInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	switch strings.ToLower(s) {
	case "inf", "-inf", "nan":
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isBoolean(s string) bool {
	_, ok := booleanTokens[strings.ToLower(s)]
	return ok
}

func isDate(s string) bool {
	for _, p := range datePatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Classify returns the type of a single cell. The second return value is
// false when the cell is a missing token and must be excluded from
// voting. The check order is significant: "1" classifies as Integer
// even though it is also a valid boolean token.
func Classify(cell string) (Type, bool) {
	s := strings.TrimSpace(cell)
	if IsMissing(s) {
		return String, false
	}
	switch {
	case isInteger(s):
		return Integer, true
	case isFloat(s):
		return Float, true
	case isBoolean(s):
		return Boolean, true
	case isDate(s):
		return Date, true
	}
	return String, true
}

// Column resolves a single type for a column of raw cells by tallying
// votes across all non-missing values.
func Column(values []string) Type {
	votes := make(map[Type]int, 5)
	total := 0
	for _, v := range values {
		t, ok := Classify(v)
		if !ok {
			continue
		}
		votes[t]++
		total++
	}
	return resolve(votes, total)
}

// resolve applies the column decision table, in order:
//
//  1. no votes (entirely missing)      -> String
//  2. unanimous                        -> the single voted type
//  3. one type holds strictly > 90%    -> that type
//  4. votes are only Integer and Float -> Float (widening)
//  5. anything else                    -> String
func resolve(votes map[Type]int, total int) Type {
	if total == 0 {
		return String
	}
	if len(votes) == 1 {
		for t := range votes {
			return t
		}
	}
	best, bestCount := String, 0
	for t, n := range votes {
		if n > bestCount {
			best, bestCount = t, n
		}
	}
	if float64(bestCount)/float64(total) > majorityThreshold {
		return best
	}
	numericOnly := true
	for t := range votes {
		if t != Integer && t != Float {
			numericOnly = false
			break
		}
	}
	if numericOnly {
		return Float
	}
	return String
}
