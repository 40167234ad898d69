package model

import "strings"

// BlockType represents the type of a document block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeading
	BlockTypeParagraph
	BlockTypeBlockquote
	BlockTypeListItem
	BlockTypeTable
	BlockTypeSeparator
	BlockTypePageBreak
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeading:
		return "Heading"
	case BlockTypeParagraph:
		return "Paragraph"
	case BlockTypeBlockquote:
		return "Blockquote"
	case BlockTypeListItem:
		return "ListItem"
	case BlockTypeTable:
		return "Table"
	case BlockTypeSeparator:
		return "Separator"
	case BlockTypePageBreak:
		return "PageBreak"
	default:
		return "Unknown"
	}
}

// Block is the interface for all document body blocks.
type Block interface {
	Type() BlockType
}

// TextBlock is an interface for blocks containing text.
type TextBlock interface {
	Block
	GetText() string
}

// Heading represents a heading of level 1-3.
type Heading struct {
	Level int // 1 (largest) to 3 (smallest)
	Spans []Span
}

func (h *Heading) Type() BlockType { return BlockTypeHeading }
func (h *Heading) GetText() string { return PlainText(h.Spans) }

// Paragraph represents a plain paragraph of text.
type Paragraph struct {
	Spans []Span
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }
func (p *Paragraph) GetText() string { return PlainText(p.Spans) }

// Blockquote represents a quoted paragraph, rendered with symmetric
// left/right indentation.
type Blockquote struct {
	Spans []Span
}

func (b *Blockquote) Type() BlockType { return BlockTypeBlockquote }
func (b *Blockquote) GetText() string { return PlainText(b.Spans) }

// ListItem represents a single list item. Items are emitted individually in
// source order; consecutive items of the same kind form one visual list.
type ListItem struct {
	Ordered bool
	Spans   []Span
}

func (li *ListItem) Type() BlockType { return BlockTypeListItem }
func (li *ListItem) GetText() string { return PlainText(li.Spans) }

// Table represents a table with one header row and zero or more data rows.
// Row width conforms to the header width when rendered: missing cells in a
// short row are left empty, extra cells are ignored.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t *Table) Type() BlockType { return BlockTypeTable }

func (t *Table) GetText() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, "\t"))
	}
	return sb.String()
}

// ColCount returns the number of columns, defined by the header row.
func (t *Table) ColCount() int { return len(t.Headers) }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// Separator represents a visual break with no content.
type Separator struct{}

func (s *Separator) Type() BlockType { return BlockTypeSeparator }

// PageBreak represents a forced page break.
type PageBreak struct{}

func (p *PageBreak) Type() BlockType { return BlockTypePageBreak }
