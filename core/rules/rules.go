// Package rules implements the per-tag conversion behaviors as a closed,
// ordered registry. Each rule owns a disjoint set of tag names and turns one
// element into a markdown fragment, deciding itself whether and how to
// convert its children through the callback on Context.
package rules

import (
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/options"
	"github.com/vakra-dev/supermarkdown/core/precompute"
)

// Context is the narrow capability a rule receives from the orchestrator.
type Context struct {
	// Meta is the read-only metadata map from the precompute pass.
	Meta precompute.Map

	// Opts is the conversion configuration.
	Opts *options.Options

	// Children converts the child nodes of an element and returns the
	// concatenated markdown. Rules call it when (and only when) they want
	// their subtree rendered.
	Children func(n *html.Node) string
}

// Rule converts the elements of a fixed set of tags to markdown.
type Rule interface {
	// Tags returns the tag names this rule owns. Tag sets are disjoint
	// across the default registry by construction.
	Tags() []string

	// Convert renders the element to a markdown fragment.
	Convert(n *html.Node, cx *Context) string
}

// Default returns the registry in resolution order: block rules first, then
// inline rules, then HTML passthrough rules. First match wins.
func Default() []Rule {
	return []Rule{
		// Block elements
		HeadingRule{},
		ParagraphRule{},
		PreRule{},
		BlockquoteRule{},
		ListRule{},
		ListItemRule{},
		DefListRule{},
		DefTermRule{},
		DefDescRule{},
		TableRule{},
		HorizontalRule{},
		DetailsRule{},
		FigureRule{},
		// Inline elements
		LinkRule{},
		ImageRule{},
		StrongRule{},
		EmphasisRule{},
		StrikethroughRule{},
		CodeRule{},
		SuperscriptRule{},
		SubscriptRule{},
		BreakRule{},
		// HTML passthrough elements
		KbdRule{},
		MarkRule{},
		AbbrRule{},
		SampRule{},
		VarRule{},
	}
}

// Find returns the first rule owning tag, or nil when no rule matches.
func Find(registry []Rule, tag string) Rule {
	for _, r := range registry {
		for _, t := range r.Tags() {
			if t == tag {
				return r
			}
		}
	}
	return nil
}
