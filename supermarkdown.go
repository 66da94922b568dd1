// Package supermarkdown converts HTML documents to Markdown, tuned for
// feeding web content to language models: stable deterministic formatting,
// selector-based content filtering, graceful handling of malformed markup.
//
// Basic usage:
//
//	markdown := supermarkdown.Convert("<h1>Hello</h1><p>World</p>")
//
// With options:
//
//	opts := supermarkdown.NewOptions().
//		WithHeadingStyle(supermarkdown.HeadingSetext).
//		WithExcludeSelectors([]string{".ad", "#sidebar"})
//	markdown := supermarkdown.ConvertWithOptions(html, opts)
//
// Conversion is a pure function of (input, options): no call mutates state
// visible to another call, so concurrent use needs no coordination.
package supermarkdown

import (
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/converter"
	"github.com/vakra-dev/supermarkdown/core/options"
)

// Options configures a conversion. See core/options for the field docs.
type Options = options.Options

// HeadingStyle selects ATX or Setext headings.
type HeadingStyle = options.HeadingStyle

// LinkStyle selects inline or referenced links.
type LinkStyle = options.LinkStyle

const (
	HeadingATX     = options.HeadingATX
	HeadingSetext  = options.HeadingSetext
	LinkInline     = options.LinkInline
	LinkReferenced = options.LinkReferenced
)

// NewOptions returns the default configuration.
func NewOptions() *Options {
	return options.New()
}

// ParseHeadingStyle maps a string to a HeadingStyle, falling back to ATX.
func ParseHeadingStyle(s string) HeadingStyle {
	return options.ParseHeadingStyle(s)
}

// ParseLinkStyle maps a string to a LinkStyle, falling back to inline.
func ParseLinkStyle(s string) LinkStyle {
	return options.ParseLinkStyle(s)
}

// Convert converts HTML to Markdown with the default options. Malformed
// HTML is handled gracefully; the result is always a (possibly empty)
// string.
func Convert(htmlInput string) string {
	return ConvertWithOptions(htmlInput, options.New())
}

// ConvertWithOptions converts HTML to Markdown with the given options.
// A nil opts behaves like the defaults.
func ConvertWithOptions(htmlInput string, opts *Options) string {
	return converter.New().Convert(htmlInput, opts)
}

// ConvertNode converts an already-parsed subtree to Markdown. The node and
// its tree are only read, never mutated.
func ConvertNode(n *html.Node, opts *Options) string {
	if n == nil {
		return ""
	}
	return converter.New().ConvertFrom(n, opts)
}
