package rules

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// ListRule converts <ul>/<ol> containers. Numbering and indentation are
// already resolved in the metadata map, so the container only frames its
// children as a block.
type ListRule struct{}

func (ListRule) Tags() []string { return []string{"ul", "ol"} }

func (ListRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimRight(cx.Children(n), " \t\n")
	if textutil.IsBlank(content) {
		return ""
	}
	return "\n\n" + content + "\n\n"
}

// ListItemRule converts <li> using the precomputed prefix and indent.
type ListItemRule struct{}

func (ListItemRule) Tags() []string { return []string{"li"} }

func (ListItemRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}

	// An <li> outside any list frame falls back to the default bullet with
	// no indentation.
	prefix := fmt.Sprintf("%c ", cx.Opts.BulletMarker)
	indent := 0
	if m, ok := cx.Meta[n]; ok && m.ListPrefix != "" {
		prefix = m.ListPrefix
		indent = m.AncestorIndent
	}

	indented := indentContinuation(content, len(prefix)+indent)
	return strings.Repeat(" ", indent) + prefix + indented + "\n"
}

// indentContinuation indents every line after the first by the given number
// of spaces so multi-line item content stays inside the item.
func indentContinuation(text string, spaces int) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return text
	}

	pad := strings.Repeat(" ", spaces)
	var b strings.Builder
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		if line == "" {
			b.WriteString("\n")
		} else {
			b.WriteString("\n" + pad + line)
		}
	}
	return b.String()
}
