package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// PreRule converts <pre> to a fenced code block. Text is collected verbatim
// from the DOM (no whitespace collapsing), line-number gutters are stripped
// by class heuristics, and the fence is sized to never collide with the
// code content.
type PreRule struct{}

func (PreRule) Tags() []string { return []string{"pre"} }

func (PreRule) Convert(n *html.Node, cx *Context) string {
	lang := detectLanguage(n)

	code := strings.TrimRight(collectCodeText(n), "\n")
	if code == "" {
		return ""
	}

	fence := calculateFence(code, cx.Opts.CodeFence)
	return "\n\n" + fence + lang + "\n" + code + "\n" + fence + "\n\n"
}

// gutterClasses mark sub-elements that hold line numbers, not code.
var gutterClasses = []string{"gutter", "line-number", "line-numbers", "lineno", "linenumber"}

func isGutter(n *html.Node) bool {
	class := dom.GetAttributeOr(n, "class", "")
	if class == "" {
		return false
	}
	for _, g := range gutterClasses {
		if strings.Contains(class, g) {
			return true
		}
	}
	return false
}

// collectCodeText gathers the raw text of a <pre> subtree, skipping gutter
// elements entirely.
func collectCodeText(pre *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if isGutter(n) {
				return
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				walk(child)
			}
		}
	}
	for child := pre.FirstChild; child != nil; child = child.NextSibling {
		walk(child)
	}
	return b.String()
}

// detectLanguage resolves the code language from the class attribute of the
// <pre> element or its inner <code> child.
func detectLanguage(pre *html.Node) string {
	if lang := languageFromClass(dom.GetAttributeOr(pre, "class", "")); lang != "" {
		return lang
	}
	for child := pre.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && dom.NodeName(child) == "code" {
			if lang := languageFromClass(dom.GetAttributeOr(child, "class", "")); lang != "" {
				return lang
			}
		}
	}
	return ""
}

// hljsTokenClasses are highlight.js classes that name syntax tokens, not
// languages.
var hljsTokenClasses = map[string]bool{
	"keyword":  true,
	"string":   true,
	"number":   true,
	"comment":  true,
	"function": true,
	"class":    true,
	"built_in": true,
}

// knownLanguages is the allow-list for bare class names like class="python".
var knownLanguages = map[string]bool{
	"bash": true, "c": true, "cpp": true, "csharp": true, "css": true,
	"dart": true, "diff": true, "go": true, "graphql": true, "html": true,
	"java": true, "javascript": true, "js": true, "json": true, "kotlin": true,
	"lua": true, "makefile": true, "markdown": true, "objectivec": true,
	"perl": true, "php": true, "plaintext": true, "python": true, "r": true,
	"ruby": true, "rust": true, "scala": true, "shell": true, "sql": true,
	"swift": true, "typescript": true, "ts": true, "xml": true, "yaml": true,
	"yml": true,
}

func languageFromClass(class string) string {
	if class == "" {
		return ""
	}
	parts := strings.Fields(class)

	// Prefixed patterns take priority over bare names.
	for _, part := range parts {
		if lang, ok := strings.CutPrefix(part, "language-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(part, "lang-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(part, "highlight-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(part, "hljs-"); ok {
			if !hljsTokenClasses[lang] {
				return lang
			}
		}
	}

	for _, part := range parts {
		lower := strings.ToLower(part)
		if knownLanguages[lower] {
			return lower
		}
	}
	return ""
}

// calculateFence returns a fence one longer than the longest run of the
// fence character inside code, with a minimum of three.
func calculateFence(code string, fenceChar rune) string {
	if fenceChar == 0 {
		fenceChar = '`'
	}
	maxRun, run := 0, 0
	for _, c := range code {
		if c == fenceChar {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}

	length := maxRun + 1
	if length < 3 {
		length = 3
	}
	return strings.Repeat(string(fenceChar), length)
}
