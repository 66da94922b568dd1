package rules

import (
	"strings"

	"golang.org/x/net/html"
)

// StrongRule converts <strong>/<b> to **bold**.
type StrongRule struct{}

func (StrongRule) Tags() []string { return []string{"strong", "b"} }

func (StrongRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return "**" + content + "**"
}

// EmphasisRule converts <em>/<i> to *italic*.
type EmphasisRule struct{}

func (EmphasisRule) Tags() []string { return []string{"em", "i"} }

func (EmphasisRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return "*" + content + "*"
}
