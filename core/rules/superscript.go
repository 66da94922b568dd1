package rules

import (
	"strings"

	"golang.org/x/net/html"
)

// SuperscriptRule keeps <sup> as an inline HTML tag. Markdown parsers
// disagree on ^ syntax, so the HTML form is the portable one.
type SuperscriptRule struct{}

func (SuperscriptRule) Tags() []string { return []string{"sup"} }

func (SuperscriptRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return "<sup>" + content + "</sup>"
}

// SubscriptRule keeps <sub> as an inline HTML tag, same reasoning as sup.
type SubscriptRule struct{}

func (SubscriptRule) Tags() []string { return []string{"sub"} }

func (SubscriptRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return "<sub>" + content + "</sub>"
}
