// Package precompute performs the single depth-first pass that resolves
// list numbering, list indentation, and selector-based visibility before
// conversion starts. Doing this up front keeps the converter's nested
// traversals O(n): list and skip context is never recomputed per subtree.
package precompute

import (
	"fmt"
	"strconv"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/vakra-dev/supermarkdown/core/options"
	"github.com/vakra-dev/supermarkdown/core/selector"
)

// NodeMetadata holds the precomputed, per-element data the converter reads.
type NodeMetadata struct {
	// ListPrefix is the rendered item prefix for <li> nodes ("- ", "12. ").
	ListPrefix string

	// AncestorIndent is the indentation in spaces contributed by enclosing
	// lists.
	AncestorIndent int

	// Skip suppresses the node and its subtree (an exclude selector matched
	// it or an ancestor).
	Skip bool

	// ForceKeep re-includes the node's subtree despite an ancestor's
	// exclusion match.
	ForceKeep bool

	// KeepDescendant marks an element whose subtree contains a force-kept
	// node. The converter must descend through it even when it is skipped,
	// so the kept subtree can surface.
	KeepDescendant bool
}

// Map associates element nodes with their metadata. Node pointers are the
// stable per-node identifiers; only nodes needing non-default data get an
// entry, so memory stays proportional to affected nodes. The map is built
// once per conversion and read-only afterward.
type Map map[*html.Node]*NodeMetadata

// listContext tracks one enclosing <ul>/<ol> during traversal.
type listContext struct {
	ordered   bool
	index     int // last emitted item number, 1-based after first increment
	indent    int // spaces inherited from enclosing lists
	prefixLen int // length of the most recent item's prefix
}

// walker carries the transient traversal state.
type walker struct {
	meta      Map
	listStack []*listContext
	skipDepth int // depth that introduced the active skip, 0 when none
	keepDepth int // depth that introduced the active force-keep, 0 when none
	depth     int
	selectors *selector.Set
	opts      *options.Options
}

// Run performs the precompute traversal from root (exclusive) over its
// subtree and returns the metadata map.
func Run(root *html.Node, selectors *selector.Set, opts *options.Options) Map {
	w := &walker{
		meta:      make(Map),
		selectors: selectors,
		opts:      opts,
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		w.visit(child)
	}
	return w.meta
}

func (w *walker) visit(n *html.Node) {
	w.depth++

	if n.Type == html.ElementNode {
		w.enterElement(n)
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		w.visit(child)
	}

	if n.Type == html.ElementNode {
		name := dom.NodeName(n)
		if name == "ul" || name == "ol" {
			w.listStack = w.listStack[:len(w.listStack)-1]
		}
	}

	// Leaving the element that introduced the skip or keep clears it.
	if w.skipDepth == w.depth {
		w.skipDepth = 0
	}
	if w.keepDepth == w.depth {
		w.keepDepth = 0
	}
	w.depth--
}

func (w *walker) enterElement(n *html.Node) {
	name := dom.NodeName(n)

	switch name {
	case "ul", "ol":
		indent := 0
		if top := w.top(); top != nil {
			indent = top.indent + top.prefixLen
		}
		ctx := &listContext{
			ordered:   name == "ol",
			indent:    indent,
			prefixLen: 2,
		}
		if name == "ol" {
			// Honor an explicit start offset; index is incremented before
			// each item, so store start-1.
			if start, err := strconv.Atoi(dom.GetAttributeOr(n, "start", "")); err == nil && start > 0 {
				ctx.index = start - 1
			}
		}
		w.listStack = append(w.listStack, ctx)

	case "li":
		if top := w.top(); top != nil {
			top.index++
			var prefix string
			if top.ordered {
				prefix = fmt.Sprintf("%d. ", top.index)
			} else {
				prefix = fmt.Sprintf("%c ", w.opts.BulletMarker)
			}
			top.prefixLen = len(prefix)

			m := w.entry(n)
			m.ListPrefix = prefix
			m.AncestorIndent = top.indent
		}
	}

	forceKeep := w.selectors.MatchesInclude(n)
	matchesExclude := w.selectors.MatchesExclude(n)

	var skip bool
	switch {
	case forceKeep:
		skip = false
		if w.keepDepth == 0 {
			w.keepDepth = w.depth
		}
		w.markAncestors(n)
	case matchesExclude:
		if w.skipDepth == 0 {
			w.skipDepth = w.depth
		}
		skip = true
	default:
		// A force-keep re-includes its whole subtree, so a skip that
		// started above the keep does not reach here.
		skip = w.skipDepth != 0 && (w.keepDepth == 0 || w.skipDepth > w.keepDepth)
	}

	if skip || forceKeep {
		m := w.entry(n)
		m.Skip = skip
		m.ForceKeep = forceKeep
	}
}

// markAncestors flags every ancestor of a force-kept node so the converter
// descends through skipped ancestors instead of pruning them.
func (w *walker) markAncestors(n *html.Node) {
	for p := n.Parent; p != nil; p = p.Parent {
		m := w.entry(p)
		if m.KeepDescendant {
			return
		}
		m.KeepDescendant = true
	}
}

func (w *walker) top() *listContext {
	if len(w.listStack) == 0 {
		return nil
	}
	return w.listStack[len(w.listStack)-1]
}

func (w *walker) entry(n *html.Node) *NodeMetadata {
	m, ok := w.meta[n]
	if !ok {
		m = &NodeMetadata{}
		w.meta[n] = m
	}
	return m
}
