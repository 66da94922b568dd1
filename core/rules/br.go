package rules

import "golang.org/x/net/html"

// BreakRule converts <br> to a CommonMark hard break: two trailing spaces
// and a newline.
type BreakRule struct{}

func (BreakRule) Tags() []string { return []string{"br"} }

func (BreakRule) Convert(n *html.Node, cx *Context) string {
	return "  \n"
}
