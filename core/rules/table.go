package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// alignment is a column's resolved alignment.
type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignCenter
	alignRight
)

// cell holds a converted table cell.
type cell struct {
	content string
	align   alignment
}

// TableRule converts <table> to a GFM pipe table. Rows come from
// thead/tbody/tfoot children or bare tr children; a caption becomes a
// trailing italic line. The first row is the header; every row is padded
// to the full column count so pipe counts match.
type TableRule struct{}

func (TableRule) Tags() []string { return []string{"table"} }

func (TableRule) Convert(n *html.Node, cx *Context) string {
	var rows [][]cell
	var caption string

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch dom.NodeName(child) {
		case "caption":
			caption = textutil.CollapseText(cx.Children(child))
		case "thead", "tbody", "tfoot":
			for tr := child.FirstChild; tr != nil; tr = tr.NextSibling {
				if tr.Type == html.ElementNode && dom.NodeName(tr) == "tr" {
					if row := extractRow(tr, cx); len(row) > 0 {
						rows = append(rows, row)
					}
				}
			}
		case "tr":
			if row := extractRow(child, cx); len(row) > 0 {
				rows = append(rows, row)
			}
		}
	}

	if len(rows) == 0 {
		return ""
	}

	// Column widths (min 3 for the separator) and alignments; the first row
	// to specify an alignment for a column wins.
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	aligns := make([]alignment, colCount)
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range rows {
		for i, c := range row {
			if w := utf8.RuneCountInString(c.content); w > widths[i] {
				widths[i] = w
			}
			if aligns[i] == alignNone && c.align != alignNone {
				aligns[i] = c.align
			}
		}
	}

	var b strings.Builder
	b.WriteString("\n\n")

	for rowIdx, row := range rows {
		b.WriteString("|")
		for i := 0; i < colCount; i++ {
			content := ""
			if i < len(row) {
				content = row[i].content
			}
			b.WriteString(" " + padCell(content, widths[i], aligns[i]) + " |")
		}
		b.WriteString("\n")

		// Separator directly after the header row.
		if rowIdx == 0 {
			b.WriteString("|")
			for i := 0; i < colCount; i++ {
				b.WriteString(" " + separator(widths[i], aligns[i]) + " |")
			}
			b.WriteString("\n")
		}
	}

	if caption != "" {
		b.WriteString("\n*" + caption + "*")
	}
	b.WriteString("\n")
	return b.String()
}

func extractRow(tr *html.Node, cx *Context) []cell {
	var cells []cell
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if name := dom.NodeName(child); name == "th" || name == "td" {
			content := textutil.CollapseText(cx.Children(child))
			content = textutil.EscapeTableCell(content)
			cells = append(cells, cell{content: content, align: extractAlignment(child)})
		}
	}
	return cells
}

// extractAlignment reads the align attribute first, then a text-align
// declaration inside the style attribute.
func extractAlignment(n *html.Node) alignment {
	if hasAttr(n, "align") {
		switch strings.ToLower(dom.GetAttributeOr(n, "align", "")) {
		case "left":
			return alignLeft
		case "center":
			return alignCenter
		case "right":
			return alignRight
		}
		return alignNone
	}

	style := strings.ToLower(dom.GetAttributeOr(n, "style", ""))
	if strings.Contains(style, "text-align:") || strings.Contains(style, "text-align :") {
		switch {
		case strings.Contains(style, "left"):
			return alignLeft
		case strings.Contains(style, "center"):
			return alignCenter
		case strings.Contains(style, "right"):
			return alignRight
		}
	}
	return alignNone
}

// padCell pads content to width according to the column alignment.
func padCell(content string, width int, align alignment) string {
	gap := width - utf8.RuneCountInString(content)
	if gap <= 0 {
		return content
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", gap) + content
	case alignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return content + strings.Repeat(" ", gap)
	}
}

// separator renders one separator cell of the given width.
func separator(width int, align alignment) string {
	switch align {
	case alignLeft:
		return ":" + strings.Repeat("-", width-1)
	case alignCenter:
		return ":" + strings.Repeat("-", max(width-2, 1)) + ":"
	case alignRight:
		return strings.Repeat("-", width-1) + ":"
	default:
		return strings.Repeat("-", width)
	}
}
