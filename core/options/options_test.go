package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	o := New()

	assert.Equal(t, HeadingATX, o.HeadingStyle)
	assert.Equal(t, LinkInline, o.LinkStyle)
	assert.Equal(t, '`', o.CodeFence)
	assert.Equal(t, '-', o.BulletMarker)
	assert.Empty(t, o.BaseURL)
	assert.Empty(t, o.ExcludeSelectors)
	assert.Empty(t, o.IncludeSelectors)
}

func TestWithSetters_Chain(t *testing.T) {
	o := New().
		WithHeadingStyle(HeadingSetext).
		WithLinkStyle(LinkReferenced).
		WithCodeFence('~').
		WithBulletMarker('*').
		WithBaseURL("https://example.com").
		WithExcludeSelectors([]string{"nav"}).
		WithIncludeSelectors([]string{".keep"})

	assert.Equal(t, HeadingSetext, o.HeadingStyle)
	assert.Equal(t, LinkReferenced, o.LinkStyle)
	assert.Equal(t, '~', o.CodeFence)
	assert.Equal(t, '*', o.BulletMarker)
	assert.Equal(t, "https://example.com", o.BaseURL)
	assert.Equal(t, []string{"nav"}, o.ExcludeSelectors)
	assert.Equal(t, []string{".keep"}, o.IncludeSelectors)
}

func TestParseHeadingStyle(t *testing.T) {
	assert.Equal(t, HeadingSetext, ParseHeadingStyle("setext"))
	assert.Equal(t, HeadingSetext, ParseHeadingStyle("Setext"))
	assert.Equal(t, HeadingATX, ParseHeadingStyle("atx"))
	assert.Equal(t, HeadingATX, ParseHeadingStyle("bogus"), "unknown values fall back to ATX")
	assert.Equal(t, HeadingATX, ParseHeadingStyle(""))
}

func TestParseLinkStyle(t *testing.T) {
	assert.Equal(t, LinkReferenced, ParseLinkStyle("referenced"))
	assert.Equal(t, LinkReferenced, ParseLinkStyle("reference"))
	assert.Equal(t, LinkInline, ParseLinkStyle("inline"))
	assert.Equal(t, LinkInline, ParseLinkStyle("bogus"), "unknown values fall back to inline")
}
