package clipboard

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/tabcode/internal/table"
)

// artifactMarkers are substrings that identify CI artifact listings.
var artifactMarkers = []string{"wheels-", "artifact-", ".zip", ".tar.gz"}

var lineBreak = regexp.MustCompile(`\r?\n`)

// ExtractArtifactListing recognizes the plain-text shape of CI artifact
// pages, where a "Name \tSize" header is followed by artifact names and
// tab-indented size lines on alternating rows:
//
//	Name \tSize \t
//	wheels-linux-aarch64
//	\t4.2 MB \t
//
// Rows are padded or truncated to the header width and the header
// decision is forced unless opts overrides it. The second return value
// is false when the text does not match the format.
func ExtractArtifactListing(text string, opts table.Options) (*table.Detection, bool) {
	if !strings.Contains(text, "Name") || !strings.Contains(text, "\tSize") {
		return nil, false
	}
	marked := false
	for _, m := range artifactMarkers {
		if strings.Contains(text, m) {
			marked = true
			break
		}
	}
	if !marked {
		return nil, false
	}

	lines := lineBreak.Split(text, -1)
	if len(lines) == 0 {
		return nil, false
	}

	var headers []string
	for _, h := range strings.Split(lines[0], "\t") {
		if s := strings.TrimSpace(h); s != "" {
			headers = append(headers, s)
		}
	}
	if len(headers) == 0 {
		return nil, false
	}
	hasName := false
	for _, h := range headers {
		if h == "Name" {
			hasName = true
			break
		}
	}
	if !hasName {
		return nil, false
	}

	var data [][]string
	name := ""
	for _, raw := range lines[1:] {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		// Tab-indented lines carry the remaining fields of the row whose
		// name came on the previous line.
		if strings.HasPrefix(raw, "\t") {
			var values []string
			for _, v := range strings.Split(raw, "\t") {
				if s := strings.TrimSpace(v); s != "" {
					values = append(values, s)
				}
			}
			if len(values) > 0 && name != "" {
				data = append(data, append([]string{name}, values...))
				name = ""
			}
			continue
		}
		name = strings.TrimSpace(raw)
	}
	if len(data) == 0 {
		return nil, false
	}

	for i, row := range data {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		data[i] = row[:len(headers)]
	}

	header := opts.Header
	if header == table.HeaderAuto {
		header = table.HeaderYes
	}
	rows := append([][]string{headers}, data...)
	return &table.Detection{
		Delimiter: '\t',
		HasHeader: header == table.HeaderYes,
		Table:     table.FromRows(rows, header, opts.MaxRows),
	}, true
}
