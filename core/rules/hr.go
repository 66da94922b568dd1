package rules

import "golang.org/x/net/html"

// HorizontalRule converts <hr> to a thematic break.
type HorizontalRule struct{}

func (HorizontalRule) Tags() []string { return []string{"hr"} }

func (HorizontalRule) Convert(n *html.Node, cx *Context) string {
	return "\n\n---\n\n"
}
