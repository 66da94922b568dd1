// Package postprocess applies the document-wide text transforms that cannot
// be done correctly during the single top-down walk. The stages run in a
// fixed order; each stage's output feeds the next.
package postprocess

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vakra-dev/supermarkdown/core/options"
)

var (
	excessiveNewlinesRe = regexp.MustCompile(`\n{3,}`)

	// Matches [text](url) or [text](url "title") not preceded by '!', so
	// images are left alone. Group 1 captures the preceding character (or
	// nothing at line start) and is re-emitted in the replacement.
	inlineLinkRe = regexp.MustCompile(`(^|[^!])\[([^\]]+)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)
)

// Run post-processes the converted markdown.
func Run(markdown string, opts *options.Options) string {
	result := escapeLinkNewlines(markdown)

	if opts.LinkStyle == options.LinkReferenced {
		result = toReferencedLinks(result)
	}

	result = excessiveNewlinesRe.ReplaceAllString(result, "\n\n")
	result = trimTrailingWhitespace(result)
	return strings.TrimSpace(result)
}

// reference is one collected link definition.
type reference struct {
	num   int
	url   string
	title string
	hasT  bool
}

// toReferencedLinks rewrites inline links to [text][N] and appends the
// numbered definitions. The URL is the dedup key; numbering follows
// first-seen order. Text without links is returned unchanged.
func toReferencedLinks(markdown string) string {
	urlToRef := make(map[string]int)
	var refs []reference

	matches := inlineLinkRe.FindAllStringSubmatchIndex(markdown, -1)
	if len(matches) == 0 {
		return markdown
	}

	var out strings.Builder
	last := 0
	for _, m := range matches {
		// Index pairs: 0 whole match, 1 prefix, 2 text, 3 url, 4 title.
		prefix := markdown[m[2]:m[3]]
		text := markdown[m[4]:m[5]]
		url := markdown[m[6]:m[7]]
		hasTitle := m[8] >= 0
		title := ""
		if hasTitle {
			title = markdown[m[8]:m[9]]
		}

		num, seen := urlToRef[url]
		if !seen {
			num = len(refs) + 1
			urlToRef[url] = num
			refs = append(refs, reference{num: num, url: url, title: title, hasT: hasTitle})
		}

		out.WriteString(markdown[last:m[0]])
		fmt.Fprintf(&out, "%s[%s][%d]", prefix, text, num)
		last = m[1]
	}
	out.WriteString(markdown[last:])
	result := out.String()

	var b strings.Builder
	b.WriteString(result)
	b.WriteString("\n\n")
	for _, ref := range refs {
		if ref.hasT {
			fmt.Fprintf(&b, "[%d]: %s \"%s\"\n", ref.num, ref.url, ref.title)
		} else {
			fmt.Fprintf(&b, "[%d]: %s\n", ref.num, ref.url)
		}
	}
	return b.String()
}

// escapeLinkNewlines replaces literal newlines inside link text with the
// two-character sequence \n, tracking bracket depth and skipping escaped
// brackets.
func escapeLinkNewlines(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	depth := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		// Escaped brackets pass through without changing depth.
		if c == '\\' && i+1 < len(runes) && (runes[i+1] == '[' || runes[i+1] == ']') {
			b.WriteRune(c)
			b.WriteRune(runes[i+1])
			i++
			continue
		}

		switch {
		case c == '[':
			depth++
			b.WriteRune(c)
		case c == ']':
			if depth > 0 {
				depth--
			}
			b.WriteRune(c)
		case c == '\n' && depth > 0:
			b.WriteString(`\n`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// trimTrailingWhitespace trims trailing whitespace from every line.
func trimTrailingWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
