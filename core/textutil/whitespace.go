package textutil

import (
	"regexp"
	"strings"
)

var (
	inlineWSRe = regexp.MustCompile(`[ \t]+`)
	blockWSRe  = regexp.MustCompile(`\s+`)
)

// NormalizeInline collapses runs of spaces and tabs to a single space,
// preserving newlines.
func NormalizeInline(text string) string {
	return inlineWSRe.ReplaceAllString(text, " ")
}

// NormalizeBlock collapses all whitespace, including newlines, to single
// spaces. Applied to every text node outside preformatted content.
func NormalizeBlock(text string) string {
	return blockWSRe.ReplaceAllString(text, " ")
}

// CollapseText trims text and collapses its internal whitespace, the shape
// most rules want for inline content.
func CollapseText(text string) string {
	return blockWSRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// IsBlank reports whether text contains only whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
