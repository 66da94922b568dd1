package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// CodeRule converts inline <code> to backtick-delimited code. A <code>
// directly inside <pre> is a code block, not inline code; its raw text
// passes through for PreRule to frame.
type CodeRule struct{}

func (CodeRule) Tags() []string { return []string{"code"} }

func (CodeRule) Convert(n *html.Node, cx *Context) string {
	if n.Parent != nil && n.Parent.Type == html.ElementNode && dom.NodeName(n.Parent) == "pre" {
		return rawText(n)
	}

	code := rawText(n)
	if code == "" {
		return ""
	}

	delim := strings.Repeat("`", textutil.CodeDelimiter(code))

	// Pad when the content touches the delimiter.
	pad := ""
	if strings.HasPrefix(code, "`") || strings.HasSuffix(code, "`") {
		pad = " "
	}
	return delim + pad + code + pad + delim
}

// rawText concatenates the text nodes of a subtree without any whitespace
// normalization.
func rawText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
