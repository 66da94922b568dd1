package rules

import (
	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// ImageRule converts <img> to markdown image syntax.
type ImageRule struct{}

func (ImageRule) Tags() []string { return []string{"img"} }

func (ImageRule) Convert(n *html.Node, cx *Context) string {
	src := dom.GetAttributeOr(n, "src", "")
	if src == "" {
		return ""
	}

	alt := dom.GetAttributeOr(n, "alt", "")
	title := dom.GetAttributeOr(n, "title", "")

	if cx.Opts.BaseURL != "" {
		src = textutil.ResolveURL(cx.Opts.BaseURL, src)
	}
	src = textutil.EscapeURL(src)

	if hasAttr(n, "title") {
		return "![" + alt + "](" + src + " \"" + textutil.EscapeTitle(title) + "\")"
	}
	return "![" + alt + "](" + src + ")"
}
