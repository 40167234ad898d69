package markup

import (
	"regexp"

	"github.com/zvishalem/sofer/model"
)

// emphasisPattern matches **bold** or *italic* with a non-greedy body so
// the shortest enclosed run wins. The bold alternative comes first so a
// double marker is never half-consumed as an italic open.
var emphasisPattern = regexp.MustCompile(`\*\*(.+?)\*\*|\*(.+?)\*`)

// ScanSpans tokenizes a single line into styled spans. Text outside any
// emphasis marker becomes a normal span with spacing preserved; a line with
// no markers (including an unterminated marker, which is treated as plain
// text) yields one normal span equal to the whole line. Emphasis content is
// stored verbatim and never re-scanned for nested styles.
func ScanSpans(line string) []model.Span {
	var spans []model.Span

	pos := 0
	for _, m := range emphasisPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > pos {
			spans = append(spans, model.Normal(line[pos:m[0]]))
		}
		if m[2] >= 0 {
			spans = append(spans, model.Bold(line[m[2]:m[3]]))
		} else {
			spans = append(spans, model.Italic(line[m[4]:m[5]]))
		}
		pos = m[1]
	}

	if pos < len(line) {
		spans = append(spans, model.Normal(line[pos:]))
	}
	if len(spans) == 0 {
		spans = append(spans, model.Normal(line))
	}
	return spans
}
