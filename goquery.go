package supermarkdown

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ConvertDocument converts a goquery document to Markdown. Callers that
// already hold a parsed document (scrapers, crawlers) avoid a re-parse.
func ConvertDocument(doc *goquery.Document, opts *Options) string {
	if doc == nil {
		return ""
	}
	return ConvertSelection(doc.Selection, opts)
}

// ConvertSelection converts every node in a goquery selection and joins the
// results with blank lines. An empty selection yields an empty string.
func ConvertSelection(sel *goquery.Selection, opts *Options) string {
	if sel == nil {
		return ""
	}

	var parts []string
	for _, n := range sel.Nodes {
		if md := ConvertNode(n, opts); md != "" {
			parts = append(parts, md)
		}
	}
	return strings.Join(parts, "\n\n")
}
