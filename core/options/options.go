// Package options defines the configuration value object for a conversion.
// An Options value is built once, passed by pointer through the whole
// pipeline, and never mutated during a conversion.
package options

import "strings"

// HeadingStyle selects the markdown heading syntax.
type HeadingStyle int

const (
	// HeadingATX renders headings as a leading run of '#'.
	HeadingATX HeadingStyle = iota
	// HeadingSetext underlines level 1-2 headings with '=' or '-'.
	HeadingSetext
)

// LinkStyle selects the markdown link syntax.
type LinkStyle int

const (
	// LinkInline renders links as [text](url).
	LinkInline LinkStyle = iota
	// LinkReferenced renders links as [text][1] with definitions at the end.
	LinkReferenced
)

// Options holds the conversion configuration.
type Options struct {
	// ExcludeSelectors lists CSS selectors for elements to suppress.
	ExcludeSelectors []string

	// IncludeSelectors lists CSS selectors for elements to always keep,
	// overriding an ancestor's exclusion match.
	IncludeSelectors []string

	// HeadingStyle is ATX ("# Title") or Setext (underlined).
	HeadingStyle HeadingStyle

	// CodeFence is the fence character for code blocks: '`' or '~'.
	CodeFence rune

	// LinkStyle is inline ([text](url)) or referenced ([text][1]).
	LinkStyle LinkStyle

	// BulletMarker is the unordered list marker: '-', '*', or '+'.
	BulletMarker rune

	// BaseURL, when non-empty, resolves relative link and image URLs.
	BaseURL string
}

// New returns an Options with the default configuration.
func New() *Options {
	return &Options{
		HeadingStyle: HeadingATX,
		CodeFence:    '`',
		LinkStyle:    LinkInline,
		BulletMarker: '-',
	}
}

// WithExcludeSelectors sets the exclude selector list.
func (o *Options) WithExcludeSelectors(selectors []string) *Options {
	o.ExcludeSelectors = selectors
	return o
}

// WithIncludeSelectors sets the include (force-keep) selector list.
func (o *Options) WithIncludeSelectors(selectors []string) *Options {
	o.IncludeSelectors = selectors
	return o
}

// WithHeadingStyle sets the heading style.
func (o *Options) WithHeadingStyle(style HeadingStyle) *Options {
	o.HeadingStyle = style
	return o
}

// WithCodeFence sets the code fence character.
func (o *Options) WithCodeFence(fence rune) *Options {
	o.CodeFence = fence
	return o
}

// WithLinkStyle sets the link style.
func (o *Options) WithLinkStyle(style LinkStyle) *Options {
	o.LinkStyle = style
	return o
}

// WithBulletMarker sets the unordered list bullet character.
func (o *Options) WithBulletMarker(marker rune) *Options {
	o.BulletMarker = marker
	return o
}

// WithBaseURL sets the base URL for resolving relative links.
func (o *Options) WithBaseURL(url string) *Options {
	o.BaseURL = url
	return o
}

// ParseHeadingStyle maps a string to a HeadingStyle. Unrecognized values
// fall back to ATX rather than erroring.
func ParseHeadingStyle(s string) HeadingStyle {
	if strings.EqualFold(s, "setext") {
		return HeadingSetext
	}
	return HeadingATX
}

// ParseLinkStyle maps a string to a LinkStyle. Unrecognized values fall
// back to inline rather than erroring.
func ParseLinkStyle(s string) LinkStyle {
	if strings.EqualFold(s, "referenced") || strings.EqualFold(s, "reference") {
		return LinkReferenced
	}
	return LinkInline
}
