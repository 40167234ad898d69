package markup

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// footnoteDefPattern matches a footnote definition line: [^N]: text
	footnoteDefPattern = regexp.MustCompile(`^\[\^(\d+)\]:\s*(.+)$`)

	// footnoteRefPattern matches an inline footnote reference: [^N]
	footnoteRefPattern = regexp.MustCompile(`\[\^(\d+)\]`)
)

// CollectFootnotes scans every line for footnote definitions and returns an
// id-to-text map. Definitions may appear anywhere in the file, interleaved
// with body text; a later definition of the same id overwrites the earlier
// one. This pass must complete before block parsing so that forward
// references resolve.
func CollectFootnotes(lines []string) map[int]string {
	notes := make(map[int]string)
	for _, line := range lines {
		m := footnoteDefPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		notes[id] = strings.TrimSpace(m[2])
	}
	return notes
}

// RewriteFootnoteRefs replaces inline references [^N] with bracketed
// numerals [N]. It is a pure textual substitution; resolution against the
// collected map happens only in the rendered footnotes section.
func RewriteFootnoteRefs(s string) string {
	return footnoteRefPattern.ReplaceAllString(s, "[$1]")
}

// isFootnoteDef reports whether the line is a footnote definition, which
// the block parser elides from the body.
func isFootnoteDef(line string) bool {
	return footnoteDefPattern.MatchString(strings.TrimSpace(line))
}
