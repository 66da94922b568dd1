package rules

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/options"
	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// HeadingRule converts h1-h6 to ATX or Setext headings.
type HeadingRule struct{}

func (HeadingRule) Tags() []string {
	return []string{"h1", "h2", "h3", "h4", "h5", "h6"}
}

func (HeadingRule) Convert(n *html.Node, cx *Context) string {
	name := dom.NodeName(n)
	level, err := strconv.Atoi(name[1:])
	if err != nil || level < 1 || level > 6 {
		level = 1
	}

	content := textutil.CollapseText(cx.Children(n))
	if content == "" {
		return ""
	}

	// Setext only exists for levels 1-2; deeper levels stay ATX.
	if cx.Opts.HeadingStyle == options.HeadingSetext && level <= 2 {
		underline := "="
		if level == 2 {
			underline = "-"
		}
		// Rune count keeps the underline aligned for non-ASCII headings.
		return "\n\n" + content + "\n" + strings.Repeat(underline, utf8.RuneCountInString(content)) + "\n\n"
	}

	return "\n\n" + strings.Repeat("#", level) + " " + content + "\n\n"
}
