// Package converter orchestrates the conversion pipeline:
// parse → compile selectors → precompute metadata → rule-dispatched walk →
// postprocess. One call performs exactly two O(n) traversals over the DOM
// plus one pass over the produced text.
package converter

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/options"
	"github.com/vakra-dev/supermarkdown/core/postprocess"
	"github.com/vakra-dev/supermarkdown/core/precompute"
	"github.com/vakra-dev/supermarkdown/core/rules"
	"github.com/vakra-dev/supermarkdown/core/selector"
	"github.com/vakra-dev/supermarkdown/core/textutil"
)

// Converter converts HTML documents to markdown. The rule registry is built
// once; a Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	rules []rules.Rule
}

// New returns a Converter with the default rule registry.
func New() *Converter {
	return &Converter{rules: rules.Default()}
}

// Convert parses html and converts it to markdown. Empty input yields empty
// output; malformed input is absorbed by the parser's recovery, so the
// result is always a (possibly empty) string.
func (c *Converter) Convert(input string, opts *options.Options) string {
	if input == "" {
		return ""
	}

	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		// The html5 parser recovers from malformed markup; an error here
		// means the reader failed, which a strings.Reader cannot. Keep the
		// conversion total regardless.
		return ""
	}

	return c.ConvertFrom(root, opts)
}

// ConvertFrom runs the pipeline over an already-parsed subtree. Used by the
// document-level entry point and the goquery adapters.
func (c *Converter) ConvertFrom(root *html.Node, opts *options.Options) string {
	if opts == nil {
		opts = options.New()
	}

	selectors := selector.Compile(opts.ExcludeSelectors, opts.IncludeSelectors)
	meta := precompute.Run(root, selectors, opts)

	cx := &rules.Context{Meta: meta, Opts: opts}
	cx.Children = func(n *html.Node) string {
		return c.convertChildren(n, cx)
	}

	markdown := c.convertNode(root, cx)
	return postprocess.Run(markdown, opts)
}

// convertNode converts one node: pruned subtrees return nothing, matched
// rules take over their subtree, unmatched elements are transparent.
func (c *Converter) convertNode(n *html.Node, cx *rules.Context) string {
	if n.Type == html.ElementNode {
		if m, ok := cx.Meta[n]; ok && m.Skip && !m.ForceKeep {
			// Prune the subtree unless a force-kept node hides inside it;
			// then descend so that node can surface. The skipped element's
			// own text is dropped in convertChildren.
			if !m.KeepDescendant {
				return ""
			}
			return c.convertChildren(n, cx)
		}
		if rule := rules.Find(c.rules, dom.NodeName(n)); rule != nil {
			return rule.Convert(n, cx)
		}
	}
	return c.convertChildren(n, cx)
}

// convertChildren concatenates the conversion of a node's children. Text
// nodes are entity-decoded and block-normalized; rules needing verbatim
// text (preformatted code) collect it from the DOM directly instead.
func (c *Converter) convertChildren(n *html.Node, cx *rules.Context) string {
	suppressText := false
	if m, ok := cx.Meta[n]; ok && m.Skip && !m.ForceKeep {
		suppressText = true
	}

	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if !suppressText {
				b.WriteString(textutil.NormalizeBlock(textutil.DecodeEntities(child.Data)))
			}
		case html.ElementNode:
			b.WriteString(c.convertNode(child, cx))
		}
	}
	return b.String()
}
