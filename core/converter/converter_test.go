package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vakra-dev/supermarkdown/core/options"
)

func convert(t *testing.T, input string) string {
	t.Helper()
	return New().Convert(input, options.New())
}

func convertWith(t *testing.T, input string, opts *options.Options) string {
	t.Helper()
	return New().Convert(input, opts)
}

func TestConvert_EmptyInput(t *testing.T) {
	assert.Equal(t, "", convert(t, ""))
}

func TestConvert_Heading(t *testing.T) {
	assert.Equal(t, "# Title", convert(t, "<h1>Title</h1>"))
}

func TestConvert_AllHeadingLevels(t *testing.T) {
	got := convert(t, "<h1>A</h1><h2>B</h2><h3>C</h3><h4>D</h4><h5>E</h5><h6>F</h6>")
	for _, want := range []string{"# A", "## B", "### C", "#### D", "##### E", "###### F"} {
		assert.Contains(t, got, want)
	}
}

func TestConvert_SetextHeadings(t *testing.T) {
	opts := options.New().WithHeadingStyle(options.HeadingSetext)
	got := convertWith(t, "<h1>Title</h1>", opts)
	assert.Contains(t, got, "Title\n=====")

	got = convertWith(t, "<h2>Section</h2>", opts)
	assert.Contains(t, got, "Section\n-------")
}

func TestConvert_Paragraphs(t *testing.T) {
	assert.Equal(t, "Hello World", convert(t, "<p>Hello World</p>"))
	assert.Equal(t, "one\n\ntwo", convert(t, "<p>one</p><p>two</p>"))
}

func TestConvert_Link(t *testing.T) {
	got := convert(t, `<a href="https://example.com">Link</a>`)
	assert.Equal(t, "[Link](https://example.com)", got)
}

func TestConvert_Autolink(t *testing.T) {
	got := convert(t, `<a href="https://example.com">https://example.com</a>`)
	assert.Equal(t, "<https://example.com>", got)
}

func TestConvert_Image(t *testing.T) {
	got := convert(t, `<img src="image.png" alt="Alt text">`)
	assert.Equal(t, "![Alt text](image.png)", got)
}

func TestConvert_Emphasis(t *testing.T) {
	assert.Equal(t, "*italic*", convert(t, "<em>italic</em>"))
	assert.Equal(t, "**bold**", convert(t, "<strong>bold</strong>"))
	assert.Equal(t, "~~gone~~", convert(t, "<del>gone</del>"))
}

func TestConvert_NestedElements(t *testing.T) {
	got := convert(t, "<p>This is <strong>bold and <em>italic</em></strong> text.</p>")
	assert.Equal(t, "This is **bold and *italic*** text.", got)
}

func TestConvert_InlineCode(t *testing.T) {
	assert.Equal(t, "`inline`", convert(t, "<code>inline</code>"))

	got := convert(t, "<p>Use <code>fmt.Println</code> here</p>")
	assert.Equal(t, "Use `fmt.Println` here", got)
}

func TestConvert_Pre(t *testing.T) {
	got := convert(t, "<pre>code block</pre>")
	assert.Contains(t, got, "```")
	assert.Contains(t, got, "code block")
}

func TestConvert_PreWithLanguage(t *testing.T) {
	got := convert(t, `<pre><code class="language-rust">fn main() {}</code></pre>`)
	assert.Equal(t, "```rust\nfn main() {}\n```", got)
}

func TestConvert_UnorderedList(t *testing.T) {
	got := convert(t, "<ul><li>One</li><li>Two</li></ul>")
	assert.Equal(t, "- One\n- Two", got)
}

func TestConvert_OrderedList(t *testing.T) {
	got := convert(t, "<ol><li>First</li><li>Second</li></ol>")
	assert.Equal(t, "1. First\n2. Second", got)
}

func TestConvert_OrderedListStart(t *testing.T) {
	got := convert(t, `<ol start="5"><li>five</li><li>six</li></ol>`)
	assert.Contains(t, got, "5. five")
	assert.Contains(t, got, "6. six")
}

func TestConvert_NestedList(t *testing.T) {
	got := convert(t, "<ul><li>First<ul><li>Nested</li></ul></li></ul>")
	assert.Contains(t, got, "- First")
	assert.Contains(t, got, "    - Nested")
}

func TestConvert_EmptyListItemsSuppressed(t *testing.T) {
	got := convert(t, "<ul><li>a</li><li>   </li><li>b</li></ul>")
	assert.Equal(t, 2, strings.Count(got, "- "))
}

func TestConvert_Blockquote(t *testing.T) {
	got := convert(t, "<blockquote>Quote</blockquote>")
	assert.Contains(t, got, "> Quote")
}

func TestConvert_NestedBlockquotes(t *testing.T) {
	got := convert(t, "<blockquote>Outer<blockquote>Inner</blockquote></blockquote>")
	assert.Contains(t, got, "> Outer")
	assert.Contains(t, got, "> > Inner")
}

func TestConvert_DeeplyNestedBlockquotes(t *testing.T) {
	got := convert(t,
		"<blockquote>Level 1<blockquote>Level 2<blockquote>Level 3</blockquote></blockquote></blockquote>")
	assert.Contains(t, got, "> Level 1")
	assert.Contains(t, got, "> > Level 2")
	assert.Contains(t, got, "> > > Level 3")
}

func TestConvert_HorizontalRule(t *testing.T) {
	assert.Equal(t, "---", convert(t, "<hr>"))
}

func TestConvert_EntityDecoding(t *testing.T) {
	got := convert(t, "<p>&lt;html&gt; &amp; more</p>")
	assert.Equal(t, "<html> & more", got)
}

func TestConvert_Table(t *testing.T) {
	got := convert(t, "<table><tr><th>A</th></tr><tr><td>x</td></tr></table>")

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "x")

	// Matching pipe counts across header, separator, and data rows.
	assert.Equal(t, strings.Count(lines[0], "|"), strings.Count(lines[1], "|"))
	assert.Equal(t, strings.Count(lines[0], "|"), strings.Count(lines[2], "|"))
}

func TestConvert_WhitespaceNormalization(t *testing.T) {
	assert.Equal(t, "Hello world", convert(t, "<p>Hello    world</p>"))
	assert.Equal(t, "Hello world", convert(t, "<p>Hello\n\n\nworld</p>"))
	assert.Equal(t, "Hello world", convert(t, "<p>Hello\t\tworld</p>"))
	assert.Equal(t, "Hello world", convert(t, "<p>Hello  \n\t  world</p>"))
}

func TestConvert_MalformedHTML(t *testing.T) {
	got := convert(t, "<p>unclosed <b>bold")
	assert.Contains(t, got, "unclosed")
	assert.Contains(t, got, "**bold**")
}

func TestConvert_ExcludeSelector(t *testing.T) {
	opts := options.New().WithExcludeSelectors([]string{"nav"})
	got := convertWith(t, "<div><nav>Skip this</nav><p>Keep this</p></div>", opts)
	assert.NotContains(t, got, "Skip this")
	assert.Contains(t, got, "Keep this")
}

func TestConvert_ExcludeByClassAndID(t *testing.T) {
	opts := options.New().WithExcludeSelectors([]string{".ad", "#sidebar"})
	got := convertWith(t,
		`<p>start</p><div class="ad">buy now</div><div id="sidebar">links</div><p>end</p>`, opts)
	assert.Equal(t, "start\n\nend", got)
}

func TestConvert_IncludeOverridesExclude(t *testing.T) {
	opts := options.New().
		WithExcludeSelectors([]string{"nav"}).
		WithIncludeSelectors([]string{".keep"})
	got := convertWith(t,
		`<nav>Noise<div class="keep">Important</div></nav>`, opts)
	assert.Contains(t, got, "Important")
	assert.NotContains(t, got, "Noise")
}

func TestConvert_ExcludeInsideIncludedSubtree(t *testing.T) {
	// An exclude match inside a force-kept subtree suppresses the matching
	// element and everything under it.
	opts := options.New().
		WithExcludeSelectors([]string{".ad"}).
		WithIncludeSelectors([]string{".keep"})
	got := convertWith(t,
		`<div class="keep"><p>kept</p><div class="ad"><p>inner text</p></div></div>`, opts)
	assert.Equal(t, "kept", got)
}

func TestConvert_NestedExcludeMatches(t *testing.T) {
	// A second exclude match inside an already-skipped region changes
	// nothing; content after the outer match's subtree is unaffected.
	opts := options.New().WithExcludeSelectors([]string{"nav", ".ad"})
	got := convertWith(t,
		`<nav><p>navtext</p><div class="ad">buy</div></nav><p>after</p>`, opts)
	assert.Equal(t, "after", got)
}

func TestConvert_InvalidSelectorIgnored(t *testing.T) {
	opts := options.New().WithExcludeSelectors([]string{"[[["})
	got := convertWith(t, "<p>still converts</p>", opts)
	assert.Equal(t, "still converts", got)
}

func TestConvert_ReferencedLinks(t *testing.T) {
	opts := options.New().WithLinkStyle(options.LinkReferenced)
	got := convertWith(t,
		`<p><a href="https://a.com">A</a> and <a href="https://b.com">B</a></p>`, opts)
	assert.Contains(t, got, "[A][1]")
	assert.Contains(t, got, "[B][2]")
	assert.Contains(t, got, "[1]: https://a.com")
	assert.Contains(t, got, "[2]: https://b.com")
}

func TestConvert_BaseURL(t *testing.T) {
	opts := options.New().WithBaseURL("https://example.com")
	got := convertWith(t, `<p><a href="/docs">Docs</a></p>`, opts)
	assert.Equal(t, "[Docs](https://example.com/docs)", got)
}

func TestConvert_CustomBullet(t *testing.T) {
	opts := options.New().WithBulletMarker('*')
	got := convertWith(t, "<ul><li>x</li></ul>", opts)
	assert.Equal(t, "* x", got)
}

func TestConvert_TildeFence(t *testing.T) {
	opts := options.New().WithCodeFence('~')
	got := convertWith(t, "<pre>code</pre>", opts)
	assert.Equal(t, "~~~\ncode\n~~~", got)
}

func TestConvert_NilOptions(t *testing.T) {
	got := New().Convert("<p>defaults apply</p>", nil)
	assert.Equal(t, "defaults apply", got)
}

func TestConvert_DefinitionList(t *testing.T) {
	got := convert(t, "<dl><dt>Term</dt><dd>Definition</dd></dl>")
	assert.Equal(t, "Term\n: Definition", got)
}

func TestConvert_Details(t *testing.T) {
	got := convert(t, "<details><summary>More</summary><p>Hidden</p></details>")
	assert.Contains(t, got, "> **More**")
	assert.Contains(t, got, "> Hidden")
}

func TestConvert_Figure(t *testing.T) {
	got := convert(t, `<figure><img src="/a.png" alt="A"><figcaption>Caption</figcaption></figure>`)
	assert.Contains(t, got, "![A](/a.png)")
	assert.Contains(t, got, "*Caption*")
}

func TestConvert_HardBreak(t *testing.T) {
	got := convert(t, "<p>line one<br>line two</p>")
	assert.Contains(t, got, "line one")
	assert.Contains(t, got, "line two")
	assert.Contains(t, got, "\n")
}

func TestConvert_ComplexDocument(t *testing.T) {
	html := `
		<article>
			<h1>Article Title</h1>
			<p>First paragraph with <strong>bold</strong> and <em>italic</em>.</p>
			<h2>Section</h2>
			<p>A <a href="https://example.com">link</a> here.</p>
			<ul>
				<li>Item 1</li>
				<li>Item 2</li>
			</ul>
			<pre><code class="language-rust">fn main() {}</code></pre>
		</article>
	`
	got := convert(t, html)

	assert.Contains(t, got, "# Article Title")
	assert.Contains(t, got, "## Section")
	assert.Contains(t, got, "**bold**")
	assert.Contains(t, got, "*italic*")
	assert.Contains(t, got, "[link](https://example.com)")
	assert.Contains(t, got, "- Item 1")
	assert.Contains(t, got, "```rust")
	assert.Contains(t, got, "fn main()")
}

func TestConvert_NoTripleNewlines(t *testing.T) {
	got := convert(t, "<p>a</p><div></div><div></div><p>b</p>")
	assert.NotContains(t, got, "\n\n\n")
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := New()
	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- c.Convert("<h1>Same</h1>", options.New())
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, "# Same", <-done)
	}
}
