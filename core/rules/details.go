package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// DetailsRule converts <details>/<summary> to a blockquote block with the
// summary as a bold header line.
type DetailsRule struct{}

func (DetailsRule) Tags() []string { return []string{"details"} }

func (DetailsRule) Convert(n *html.Node, cx *Context) string {
	var summary string
	var content strings.Builder

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.ElementNode && dom.NodeName(child) == "summary":
			summary = textutil.CollapseText(cx.Children(child))
		case child.Type == html.ElementNode:
			content.WriteString(cx.Children(child))
		case child.Type == html.TextNode:
			content.WriteString(child.Data)
		}
	}

	body := strings.TrimSpace(content.String())
	if summary == "" && body == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	if summary != "" {
		b.WriteString("> **" + summary + "**\n>\n")
	}
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			if line == "" {
				b.WriteString(">\n")
			} else {
				b.WriteString("> " + line + "\n")
			}
		}
	}
	b.WriteString("\n")
	return b.String()
}
