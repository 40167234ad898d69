package extract

import (
	"fmt"
	"strings"
)

// Markup renders the extracted page as markup source. The output parses
// back into the same block sequence, so a page can be saved, edited, and
// converted later.
func (p *Page) Markup() string {
	var blocks []string
	counter := 0

	for i, e := range p.elems {
		switch e.typ {
		case elemHeading:
			blocks = append(blocks, strings.Repeat("#", e.level)+" "+e.text)

		case elemParagraph:
			blocks = append(blocks, e.text)

		case elemQuote:
			blocks = append(blocks, "> "+e.text)

		case elemListItem:
			if e.ordered {
				if i == 0 || p.elems[i-1].typ != elemListItem || !p.elems[i-1].ordered {
					counter = 0
				}
				counter++
				blocks = append(blocks, fmt.Sprintf("%d. %s", counter, e.text))
			} else {
				blocks = append(blocks, "- "+e.text)
			}

		case elemTable:
			blocks = append(blocks, renderTable(e.headers, e.rows))

		case elemSeparator:
			blocks = append(blocks, "---")
		}
	}

	out := strings.Join(blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out
}

// renderTable writes a pipe table with a separator row after the headers.
func renderTable(headers []string, rows [][]string) string {
	var sb strings.Builder

	writeRow := func(cells []string) {
		sb.WriteString("|")
		for _, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(c)
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sb.WriteString("|")
	for range headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}

	return strings.TrimRight(sb.String(), "\n")
}
