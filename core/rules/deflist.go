package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// DefListRule converts <dl>: terms on their own line, definitions prefixed
// with ": " and continuation lines indented by two spaces.
type DefListRule struct{}

func (DefListRule) Tags() []string { return []string{"dl"} }

func (DefListRule) Convert(n *html.Node, cx *Context) string {
	var b strings.Builder
	b.WriteString("\n\n")
	lastWasTerm := false

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch dom.NodeName(child) {
		case "dt":
			content := strings.TrimSpace(cx.Children(child))
			if content == "" {
				continue
			}
			// Blank line between term groups.
			if !lastWasTerm && strings.TrimSpace(b.String()) != "" {
				b.WriteString("\n")
			}
			b.WriteString(content)
			b.WriteString("\n")
			lastWasTerm = true
		case "dd":
			content := strings.TrimSpace(cx.Children(child))
			if content == "" {
				continue
			}
			for i, line := range strings.Split(content, "\n") {
				if i == 0 {
					b.WriteString(": " + line)
				} else {
					b.WriteString("\n  " + line)
				}
			}
			b.WriteString("\n")
			lastWasTerm = false
		}
	}

	b.WriteString("\n")
	return b.String()
}

// DefTermRule handles a <dt> appearing outside a <dl>.
type DefTermRule struct{}

func (DefTermRule) Tags() []string { return []string{"dt"} }

func (DefTermRule) Convert(n *html.Node, cx *Context) string {
	return strings.TrimSpace(cx.Children(n))
}

// DefDescRule handles a <dd> appearing outside a <dl>.
type DefDescRule struct{}

func (DefDescRule) Tags() []string { return []string{"dd"} }

func (DefDescRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	return ": " + content
}
