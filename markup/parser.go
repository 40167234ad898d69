package markup

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zvishalem/sofer/model"
)

var (
	// orderedItemPattern matches a numbered list item: leading integer,
	// period, whitespace, text.
	orderedItemPattern = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

	// unorderedItemPattern matches a bulleted list item: leading - or *
	// followed by whitespace. The whitespace requirement keeps *emphasis*
	// lines out of the list branch.
	unorderedItemPattern = regexp.MustCompile(`^[-*]\s+(.+)$`)
)

// Parse splits src into lines, collects footnote definitions in a first
// pass, then classifies every line into blocks in a second pass. It never
// fails: malformed markup degrades to plain paragraphs.
func Parse(src string) ([]model.Block, []model.Footnote) {
	lines := strings.Split(src, "\n")
	notes := CollectFootnotes(lines)
	p := &parser{lines: lines}
	return p.parse(), sortFootnotes(notes)
}

// sortFootnotes flattens the collected map into entries sorted ascending by
// numeric id for stable rendering order.
func sortFootnotes(notes map[int]string) []model.Footnote {
	ids := make([]int, 0, len(notes))
	for id := range notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	entries := make([]model.Footnote, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, model.Footnote{ID: id, Text: notes[id]})
	}
	return entries
}

// parser consumes the line slice with an explicit cursor. A cursor (rather
// than a forward-only iterator) is required because the table branch
// consumes a variable-length run of lines.
type parser struct {
	lines []string
	pos   int
}

func (p *parser) parse() []model.Block {
	var blocks []model.Block
	for p.pos < len(p.lines) {
		if b := p.next(); b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// next classifies the line at the cursor and returns at most one block,
// advancing the cursor past everything it consumed. Dispatch order matters:
// first match wins.
func (p *parser) next() model.Block {
	line := strings.TrimRight(p.lines[p.pos], " \t\r")
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		p.pos++
		return nil

	case isFootnoteDef(line):
		// Already collected in the first pass.
		p.pos++
		return nil

	case trimmed == "---":
		p.pos++
		return &model.Separator{}
	}

	if strings.HasPrefix(line, "###") {
		p.pos++
		return &model.Heading{Level: 3, Spans: ScanSpans(headingText(line, "###"))}
	}
	if strings.HasPrefix(line, "##") {
		p.pos++
		return &model.Heading{Level: 2, Spans: ScanSpans(headingText(line, "##"))}
	}
	if strings.HasPrefix(line, "#") {
		p.pos++
		return &model.Heading{Level: 1, Spans: ScanSpans(headingText(line, "#"))}
	}

	if strings.HasPrefix(line, ">") {
		p.pos++
		return &model.Blockquote{Spans: ScanSpans(strings.TrimSpace(strings.TrimPrefix(line, ">")))}
	}

	if strings.Contains(line, "|") && p.pos+1 < len(p.lines) && strings.Contains(p.lines[p.pos+1], "|") {
		if tbl := p.parseTable(); tbl != nil {
			return tbl
		}
	}

	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		p.pos++
		return &model.ListItem{Ordered: true, Spans: ScanSpans(RewriteFootnoteRefs(m[2]))}
	}
	if m := unorderedItemPattern.FindStringSubmatch(trimmed); m != nil {
		p.pos++
		return &model.ListItem{Ordered: false, Spans: ScanSpans(RewriteFootnoteRefs(m[1]))}
	}

	p.pos++
	return &model.Paragraph{Spans: ScanSpans(RewriteFootnoteRefs(trimmed))}
}

// parseTable consumes the contiguous run of delimiter-containing lines
// starting at the cursor. The first line supplies the headers, the second
// is assumed to be the header/body separator and discarded unconditionally,
// and the rest become data rows. It returns nil with the cursor unchanged
// when fewer than two delimiter lines exist; the caller then falls through
// to the paragraph branch.
func (p *parser) parseTable() *model.Table {
	start := p.pos
	end := start
	for end < len(p.lines) && strings.Contains(p.lines[end], "|") {
		end++
	}
	if end-start < 2 {
		return nil
	}

	tbl := &model.Table{Headers: splitRow(p.lines[start])}
	for _, line := range p.lines[start+2 : end] {
		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}
		tbl.Rows = append(tbl.Rows, cells)
	}

	p.pos = end
	return tbl
}

// splitRow splits a table line on the pipe delimiter, trimming each cell
// and dropping empty cells. Leading and trailing pipes therefore contribute
// nothing, matching the lenient historical behavior.
func splitRow(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}

// headingText strips the leading marker run and surrounding whitespace.
func headingText(line, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}
