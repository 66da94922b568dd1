package textutil

import (
	"net/url"
	"strings"
)

// EscapeMarkdown escapes markdown metacharacters in plain text.
//
// Characters escaped: \ ` * _ { } [ ] ( ) # + - . ! |
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		switch c {
		case '\\', '`', '*', '_', '{', '}', '[', ']', '(', ')', '#', '+', '-', '.', '!', '|':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// EscapeTitle escapes quote and backslash characters inside a quoted
// link or image title.
func EscapeTitle(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, c := range text {
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// EscapeURL percent-encodes the characters that would break the
// parenthesized URL part of a markdown link.
func EscapeURL(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		switch c {
		case '(':
			b.WriteString("%28")
		case ')':
			b.WriteString("%29")
		case ' ':
			b.WriteString("%20")
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// EscapeTableCell escapes pipe characters so cell content cannot break
// a GFM table row.
func EscapeTableCell(text string) string {
	return strings.ReplaceAll(text, "|", "\\|")
}

// CodeDelimiter returns the number of backticks needed to delimit inline
// code: one more than the longest backtick run in the content, minimum 1.
func CodeDelimiter(code string) int {
	maxRun, run := 0, 0
	for _, c := range code {
		if c == '`' {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	if maxRun == 0 {
		return 1
	}
	return maxRun + 1
}

// ResolveURL resolves ref against base. Absolute refs (including mailto:,
// tel:, and data: URLs) pass through unchanged; if either side fails to
// parse, ref is returned as-is.
func ResolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	return b.ResolveReference(r).String()
}
