// Command supermarkdown converts HTML to Markdown.
//
// It reads from a file path argument or standard input and writes Markdown
// to standard output:
//
//	supermarkdown page.html > page.md
//	curl -s https://example.com | supermarkdown --exclude "nav,.ad"
package main

func main() {
	Execute()
}
