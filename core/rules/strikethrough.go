package rules

import (
	"strings"

	"golang.org/x/net/html"
)

// StrikethroughRule converts <del>/<s>/<strike> to ~~strikethrough~~.
type StrikethroughRule struct{}

func (StrikethroughRule) Tags() []string { return []string{"del", "s", "strike"} }

func (StrikethroughRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return "~~" + content + "~~"
}
