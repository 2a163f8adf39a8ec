package table

import "strings"

// DefaultDelimiter is returned when no candidate splits the sampled
// lines consistently.
const DefaultDelimiter = ','

// sampleLines is how many non-blank lines delimiter detection inspects.
const sampleLines = 10

// candidateDelimiters is the fixed candidate set. Order does not carry
// priority; ties are broken by field count alone.
var candidateDelimiters = []rune{',', '\t', '|', ';'}

// DetectDelimiter returns the best delimiter for a multi-line text.
//
// It samples up to the first 10 non-blank lines and splits each by every
// candidate. A candidate is consistent only when every sampled line
// yields the same field count; among consistent candidates the one with
// the largest field count wins (more columns implies a more specific
// delimiter). Empty input or no consistent candidate falls back to the
// comma default.
func DetectDelimiter(text string) rune {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == sampleLines {
			break
		}
	}
	if len(lines) == 0 {
		return DefaultDelimiter
	}

	best := rune(0)
	bestScore := 0
	for _, sep := range candidateDelimiters {
		var counts []int
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || trimmed == string(sep) {
				continue
			}
			counts = append(counts, len(strings.Split(line, string(sep))))
		}
		if len(counts) == 0 {
			continue
		}
		consistent := true
		for _, n := range counts[1:] {
			if n != counts[0] {
				consistent = false
				break
			}
		}
		if consistent && counts[0] > bestScore {
			best = sep
			bestScore = counts[0]
		}
	}
	if best == 0 {
		return DefaultDelimiter
	}
	return best
}
