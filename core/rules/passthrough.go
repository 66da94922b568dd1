package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// The passthrough rules keep elements without a markdown equivalent as
// inline HTML, which markdown renderers accept verbatim.

// KbdRule keeps <kbd> as inline HTML.
type KbdRule struct{}

func (KbdRule) Tags() []string { return []string{"kbd"} }

func (KbdRule) Convert(n *html.Node, cx *Context) string {
	return wrapInline("kbd", cx.Children(n))
}

// MarkRule keeps <mark> as inline HTML.
type MarkRule struct{}

func (MarkRule) Tags() []string { return []string{"mark"} }

func (MarkRule) Convert(n *html.Node, cx *Context) string {
	return wrapInline("mark", cx.Children(n))
}

// SampRule keeps <samp> as inline HTML.
type SampRule struct{}

func (SampRule) Tags() []string { return []string{"samp"} }

func (SampRule) Convert(n *html.Node, cx *Context) string {
	return wrapInline("samp", cx.Children(n))
}

// VarRule keeps <var> as inline HTML.
type VarRule struct{}

func (VarRule) Tags() []string { return []string{"var"} }

func (VarRule) Convert(n *html.Node, cx *Context) string {
	return wrapInline("var", cx.Children(n))
}

// AbbrRule keeps <abbr> as inline HTML, preserving the title attribute.
type AbbrRule struct{}

func (AbbrRule) Tags() []string { return []string{"abbr"} }

func (AbbrRule) Convert(n *html.Node, cx *Context) string {
	content := strings.TrimSpace(cx.Children(n))
	if content == "" {
		return ""
	}
	if hasAttr(n, "title") {
		title := dom.GetAttributeOr(n, "title", "")
		return `<abbr title="` + escapeAttr(title) + `">` + content + `</abbr>`
	}
	return "<abbr>" + content + "</abbr>"
}

func wrapInline(tag, content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	return "<" + tag + ">" + content + "</" + tag + ">"
}

// escapeAttr escapes the characters that would break out of a quoted HTML
// attribute value.
func escapeAttr(text string) string {
	r := strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	return r.Replace(text)
}
