package model

import "strings"

// SpanKind represents the emphasis style of an inline text run.
type SpanKind int

const (
	SpanNormal SpanKind = iota
	SpanBold
	SpanItalic
)

func (k SpanKind) String() string {
	switch k {
	case SpanNormal:
		return "Normal"
	case SpanBold:
		return "Bold"
	case SpanItalic:
		return "Italic"
	default:
		return "Unknown"
	}
}

// Span is an inline run of text carrying one emphasis style within a block.
// A span's text is stored verbatim; emphasis content is never re-scanned
// for nested styles.
type Span struct {
	Kind SpanKind
	Text string
}

// Normal returns a span with no emphasis.
func Normal(text string) Span { return Span{Kind: SpanNormal, Text: text} }

// Bold returns a bold span.
func Bold(text string) Span { return Span{Kind: SpanBold, Text: text} }

// Italic returns an italic span.
func Italic(text string) Span { return Span{Kind: SpanItalic, Text: text} }

// PlainText concatenates the text of all spans, discarding styling.
func PlainText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
