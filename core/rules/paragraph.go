package rules

import (
	"strings"

	"golang.org/x/net/html"
)

// ParagraphRule converts <p> to a blank-line-separated block.
type ParagraphRule struct{}

func (ParagraphRule) Tags() []string { return []string{"p"} }

func (ParagraphRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return "\n\n" + content + "\n\n"
}
