// Package selector compiles the exclude/include CSS selector lists into a
// reusable matcher set. Compilation happens once per conversion; matching
// happens once per element during the precompute pass.
package selector

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Set holds the compiled exclude and include matchers for one conversion.
type Set struct {
	exclude []cascadia.Selector
	include []cascadia.Selector

	// Dropped lists the selector strings that failed to compile. They are
	// silently absent from the matcher set; callers may report them.
	Dropped []string
}

// Compile builds a Set from raw selector strings. A selector that fails to
// compile is dropped: it simply never matches.
func Compile(exclude, include []string) *Set {
	s := &Set{}
	s.exclude = s.compileAll(exclude)
	s.include = s.compileAll(include)
	return s
}

func (s *Set) compileAll(raw []string) []cascadia.Selector {
	var compiled []cascadia.Selector
	for _, expr := range raw {
		sel, err := cascadia.Compile(expr)
		if err != nil {
			s.Dropped = append(s.Dropped, expr)
			continue
		}
		compiled = append(compiled, sel)
	}
	return compiled
}

// MatchesExclude reports whether n matches any exclude selector.
func (s *Set) MatchesExclude(n *html.Node) bool {
	return matchesAny(s.exclude, n)
}

// MatchesInclude reports whether n matches any include selector.
func (s *Set) MatchesInclude(n *html.Node) bool {
	return matchesAny(s.include, n)
}

func matchesAny(sels []cascadia.Selector, n *html.Node) bool {
	for _, sel := range sels {
		if sel(n) {
			return true
		}
	}
	return false
}
