package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// LinkRule converts <a> to inline links, autolinks, or bare text.
// Referenced-style rewriting happens later in postprocessing, so this rule
// always emits inline syntax.
type LinkRule struct{}

func (LinkRule) Tags() []string { return []string{"a"} }

func (LinkRule) Convert(n *html.Node, cx *Context) string {
	href := dom.GetAttributeOr(n, "href", "")
	title := dom.GetAttributeOr(n, "title", "")
	hasTitle := hasAttr(n, "title")

	content := textutil.CollapseText(cx.Children(n))

	// Empty and bare-fragment hrefs carry no destination.
	if href == "" || href == "#" {
		return content
	}

	if cx.Opts.BaseURL != "" {
		href = textutil.ResolveURL(cx.Opts.BaseURL, href)
	}

	// Autolinks: text identical to the URL, or to the mailto-stripped
	// address, and no title to carry.
	if !hasTitle {
		if email, ok := strings.CutPrefix(href, "mailto:"); ok && content == email {
			return "<" + email + ">"
		}
		if content == href {
			return "<" + href + ">"
		}
	}

	href = textutil.EscapeURL(href)

	if hasTitle {
		return "[" + content + "](" + href + " \"" + textutil.EscapeTitle(title) + "\")"
	}
	return "[" + content + "](" + href + ")"
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
