// Package textutil provides the text-level helpers shared by the conversion
// pipeline: HTML entity decoding, markdown escaping, and whitespace
// normalization.
package textutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities maps common named HTML character references to their
// decoded text. Built once at init; read-only afterward, so concurrent
// conversions can share it without locking.
var namedEntities = map[string]string{
	// Essential
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": "\"",
	"apos": "'",
	"nbsp": " ",
	// Symbols
	"copy":  "©",
	"reg":   "®",
	"trade": "™",
	// Punctuation
	"mdash":  "—",
	"ndash":  "–",
	"hellip": "…",
	"bull":   "•",
	"middot": "·",
	// Quotes
	"lsquo": "‘",
	"rsquo": "’",
	"ldquo": "“",
	"rdquo": "”",
	"laquo": "«",
	"raquo": "»",
	// Math
	"times":  "×",
	"divide": "÷",
	"plusmn": "±",
	"minus":  "−",
	"le":     "≤",
	"ge":     "≥",
	"ne":     "≠",
	"infin":  "∞",
	// Currency
	"cent":  "¢",
	"pound": "£",
	"euro":  "€",
	"yen":   "¥",
	// Arrows
	"larr": "←",
	"rarr": "→",
	"uarr": "↑",
	"darr": "↓",
}

// entityRe matches named, decimal, and hexadecimal character references.
var entityRe = regexp.MustCompile(`&(?:#([0-9]+)|#x([0-9a-fA-F]+)|(\w+));`)

// DecodeEntities decodes HTML character references in text.
//
// Named references use a fixed table of common entities; decimal (&#123;)
// and hexadecimal (&#x7B;) references decode any valid code point.
// Unrecognized references are left untouched. A string without '&' is
// returned unchanged.
func DecodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}

	return entityRe.ReplaceAllStringFunc(text, func(m string) string {
		groups := entityRe.FindStringSubmatch(m)

		if groups[1] != "" {
			if code, err := strconv.ParseUint(groups[1], 10, 32); err == nil && utf8.ValidRune(rune(code)) {
				return string(rune(code))
			}
		}
		if groups[2] != "" {
			if code, err := strconv.ParseUint(groups[2], 16, 32); err == nil && utf8.ValidRune(rune(code)) {
				return string(rune(code))
			}
		}
		if groups[3] != "" {
			if decoded, ok := namedEntities[groups[3]]; ok {
				return decoded
			}
		}
		return m
	})
}
