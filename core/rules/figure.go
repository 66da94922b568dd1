package rules

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// FigureRule converts <figure> to an image plus an italic caption line.
// Inside a <picture> the first <img> wins; <source> candidates are ignored.
type FigureRule struct{}

func (FigureRule) Tags() []string { return []string{"figure"} }

func (FigureRule) Convert(n *html.Node, cx *Context) string {
	var imageMD, caption string

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch dom.NodeName(child) {
		case "img":
			if md := imageMarkdown(child); md != "" {
				imageMD = md
			}
		case "figcaption":
			caption = textutil.CollapseText(cx.Children(child))
		case "picture":
			for pc := child.FirstChild; pc != nil; pc = pc.NextSibling {
				if pc.Type == html.ElementNode && dom.NodeName(pc) == "img" {
					if md := imageMarkdown(pc); md != "" {
						imageMD = md
						break
					}
				}
			}
		default:
			// An image may be nested deeper, e.g. inside a link.
			if imageMD == "" {
				if nested := cx.Children(child); strings.Contains(nested, "![") {
					imageMD = nested
				}
			}
		}
	}

	if imageMD == "" {
		return ""
	}

	result := "\n\n" + strings.TrimSpace(imageMD)
	if caption != "" {
		result += "\n*" + caption + "*"
	}
	return result + "\n\n"
}

// imageMarkdown renders a figure's image with its src verbatim: base-URL
// resolution and URL escaping apply only to standalone <img> elements.
func imageMarkdown(img *html.Node) string {
	src := dom.GetAttributeOr(img, "src", "")
	if src == "" {
		return ""
	}
	alt := dom.GetAttributeOr(img, "alt", "")
	return "![" + alt + "](" + src + ")"
}
