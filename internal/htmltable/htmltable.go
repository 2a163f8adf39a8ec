// Package htmltable extracts the first HTML table from markup into a
// pre-split ParsedTable, bypassing delimiter detection.
package htmltable

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/leapstack-labs/tabcode/internal/table"
)

// Extract parses markup and converts the first <table> element into a
// parsed table. A first row made entirely of <th> cells forces the
// header decision; otherwise the usual heuristics apply unless opts
// overrides them. The second return value is false when the markup
// holds no usable table.
func Extract(markup string, opts table.Options) (*table.Detection, bool) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, false
	}
	tbl := findElement(doc, "table")
	if tbl == nil {
		return nil, false
	}

	var rows [][]string
	firstRowAllTH := false
	walkRows(tbl, func(tr *html.Node) {
		var cells []string
		allTH := true
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "td":
				allTH = false
				cells = append(cells, cellText(c))
			case "th":
				cells = append(cells, cellText(c))
			}
		}
		if len(cells) == 0 {
			return
		}
		if len(rows) == 0 {
			firstRowAllTH = allTH
		}
		rows = append(rows, cells)
	})
	if len(rows) == 0 {
		return nil, false
	}

	var hasHeader bool
	switch {
	case opts.Header == table.HeaderYes:
		hasHeader = true
	case opts.Header == table.HeaderNo:
		hasHeader = false
	case firstRowAllTH:
		hasHeader = true
	default:
		hasHeader = table.HasHeader(rows)
	}
	header := table.HeaderNo
	if hasHeader {
		header = table.HeaderYes
	}
	return &table.Detection{
		HasHeader: hasHeader,
		Table:     table.FromRows(rows, header, opts.MaxRows),
	}, true
}

// findElement returns the first element with the given tag, depth-first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// walkRows visits every <tr> under the table, covering thead and tbody.
func walkRows(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode && n.Data == "tr" {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkRows(c, fn)
	}
}

// cellText concatenates a cell's text nodes with whitespace collapsed.
func cellText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
