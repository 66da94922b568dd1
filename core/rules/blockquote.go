package rules

import (
	"strings"

	"golang.org/x/net/html"
)

// BlockquoteRule converts <blockquote> by prefixing each content line with
// "> ". Nested blockquotes multiply the prefix through recursion.
type BlockquoteRule struct{}

func (BlockquoteRule) Tags() []string { return []string{"blockquote"} }

func (BlockquoteRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}
