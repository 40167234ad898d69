// Package extract converts HTML pages into the lightweight markup dialect
// understood by the markup package, so fetched or saved web content can be
// carried through the same conversion pipeline as hand-written sources.
package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

type elementType int

const (
	elemParagraph elementType = iota
	elemHeading
	elemQuote
	elemListItem
	elemTable
	elemSeparator
)

// element is one block-level piece of extracted content.
type element struct {
	typ     elementType
	text    string
	level   int  // headings
	ordered bool // list items
	headers []string
	rows    [][]string
}

// Page holds the block-level content extracted from one HTML document.
type Page struct {
	Title string
	elems []element
}

// ParseFile extracts content from an HTML file on disk.
func ParseFile(filename string) (*Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse extracts content from HTML read from r.
func Parse(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	p := &Page{}
	p.extractTitle(doc)

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	p.walk(body)

	return p, nil
}

// BlockCount returns the number of extracted block elements.
func (p *Page) BlockCount() int {
	return len(p.elems)
}

// extractTitle pulls the document title out of the head element.
func (p *Page) extractTitle(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "title" {
				p.Title = strings.TrimSpace(textContent(c))
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.extractTitle(c)
	}
}

// walk recursively processes body nodes, appending one element per
// content-bearing block.
func (p *Page) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		if skipElement(n.Data) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			if level > 3 {
				// The markup dialect has three heading levels.
				level = 3
			}
			if text := inlineText(n); text != "" {
				p.elems = append(p.elems, element{typ: elemHeading, text: text, level: level})
			}
			return

		case "p":
			if text := inlineText(n); text != "" {
				p.elems = append(p.elems, element{typ: elemParagraph, text: text})
			}
			return

		case "div":
			if blockContainer(n) {
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					p.walk(c)
				}
				return
			}
			if text := inlineText(n); text != "" {
				p.elems = append(p.elems, element{typ: elemParagraph, text: text})
			}
			return

		case "blockquote":
			if text := inlineText(n); text != "" {
				p.elems = append(p.elems, element{typ: elemQuote, text: text})
			}
			return

		case "ul", "ol":
			p.walkList(n, n.Data == "ol")
			return

		case "pre", "code":
			// The dialect has no code blocks; keep the text as a
			// plain paragraph.
			if text := strings.TrimSpace(textContent(n)); text != "" {
				p.elems = append(p.elems, element{typ: elemParagraph, text: flatten(text)})
			}
			return

		case "table":
			if tbl := p.parseTable(n); tbl != nil {
				p.elems = append(p.elems, *tbl)
			}
			return

		case "hr":
			p.elems = append(p.elems, element{typ: elemSeparator})
			return

		case "nav", "aside", "header", "footer":
			// Boilerplate chrome, not document content.
			return

		case "article", "section", "main":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				p.walk(c)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

// walkList emits one list-item element per li. Nested lists flatten into
// the enclosing run since the dialect has a single list level.
func (p *Page) walkList(n *html.Node, ordered bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		if text := directInlineText(c); text != "" {
			p.elems = append(p.elems, element{typ: elemListItem, text: text, ordered: ordered})
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				p.walkList(g, g.Data == "ol")
			}
		}
	}
}

// parseTable reads an HTML table into header and data rows. The first row
// supplies the headers whether or not the table declares a thead.
func (p *Page) parseTable(n *html.Node) *element {
	var rows [][]string
	collectRows(n, &rows)
	if len(rows) == 0 {
		return nil
	}
	return &element{typ: elemTable, headers: rows[0], rows: rows[1:]}
}

func collectRows(n *html.Node, rows *[][]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "thead", "tbody", "tfoot":
			collectRows(c, rows)
		case "tr":
			var row []string
			for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode && (cell.Data == "td" || cell.Data == "th") {
					row = append(row, cellText(cell))
				}
			}
			if len(row) > 0 {
				*rows = append(*rows, row)
			}
		}
	}
}

// skipElement reports whether an element carries no document content.
func skipElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "iframe", "object", "embed":
		return true
	}
	return false
}

// blockContainer reports whether the node holds block-level children.
func blockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "p", "ul", "ol", "table", "blockquote", "pre", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6", "article", "section":
			return true
		}
	}
	return false
}

// findElement returns the first descendant with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent extracts raw text from a node and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && skipElement(n.Data) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// inlineText extracts text from a node, translating strong/em nesting into
// the dialect's emphasis markers and collapsing whitespace runs.
func inlineText(n *html.Node) string {
	var sb strings.Builder
	inlineTextRecursive(n, &sb)
	return flatten(sb.String())
}

func inlineTextRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type != html.ElementNode {
		return
	}
	if skipElement(n.Data) {
		return
	}

	marker := ""
	switch n.Data {
	case "strong", "b":
		marker = "**"
	case "em", "i":
		marker = "*"
	case "br":
		sb.WriteString(" ")
		return
	}

	if marker != "" {
		inner := flatten(collectInline(n))
		if inner != "" {
			sb.WriteString(marker)
			sb.WriteString(inner)
			sb.WriteString(marker)
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineTextRecursive(c, sb)
	}
}

func collectInline(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		inlineTextRecursive(c, &sb)
	}
	return sb.String()
}

// directInlineText extracts a list item's own text, excluding nested lists.
func directInlineText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		inlineTextRecursive(c, &sb)
	}
	return flatten(sb.String())
}

// cellText extracts table cell text with pipe characters removed so the
// cell cannot break the rendered row.
func cellText(n *html.Node) string {
	return flatten(strings.ReplaceAll(textContent(n), "|", " "))
}

// flatten collapses whitespace runs to single spaces and trims the ends.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
