// Package model provides the intermediate representation (IR) for parsed
// markup content.
//
// This package defines the data structures that sit between the markup
// parser and the DOCX renderer. The parser produces these types and the
// renderer consumes them, making them the primary API for inspecting a
// converted document.
//
// # Document Structure
//
// The [Document] type represents a complete document with a title, an
// ordered list of body blocks, and collected footnotes:
//
//	doc := model.NewDocument("מיהו מבוטח בביטוח הלאומי?")
//	doc.AddBlock(&model.Heading{Level: 1, Spans: spans})
//
// # Blocks
//
// All body content implements the [Block] interface. The concrete types are:
//
//   - [Heading] - headings (levels 1-3)
//   - [Paragraph] - text paragraphs
//   - [Blockquote] - indented quotations
//   - [ListItem] - a single ordered or unordered list item
//   - [Table] - a table with one header row and data rows
//   - [Separator] - a visual break with no content
//   - [PageBreak] - a forced page break
//
// List items are emitted individually in source order; consumers that need
// whole lists group consecutive items of the same kind.
//
// # Spans
//
// Text-bearing blocks hold their content as an ordered slice of [Span]
// values. Spans partition a line's characters with no gaps or overlaps,
// each carrying one emphasis style (normal, bold, or italic).
//
// # Footnotes
//
// Footnote definitions never appear as body blocks. They are collected into
// [Footnote] entries, sorted ascending by numeric ID, and rendered as a
// separate section after the body.
package model
