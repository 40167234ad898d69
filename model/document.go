package model

import "sort"

// Footnote is a single collected footnote definition. IDs are positive
// integers as written in the source; entries are compared numerically.
type Footnote struct {
	ID   int
	Text string
}

// Document represents a complete parsed document. It is built once per
// conversion run and not mutated after construction.
type Document struct {
	Title     string
	Blocks    []Block
	Footnotes []Footnote // sorted ascending by ID
}

// NewDocument creates a new empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{
		Title:  title,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the document body.
func (d *Document) AddBlock(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// BlockCount returns the number of body blocks.
func (d *Document) BlockCount() int {
	return len(d.Blocks)
}

// HasFootnotes reports whether any footnote definitions were collected.
func (d *Document) HasFootnotes() bool {
	return len(d.Footnotes) > 0
}

// SetFootnotes replaces the footnote list from an id-to-text map, sorted
// ascending by numeric ID for stable rendering order.
func (d *Document) SetFootnotes(notes map[int]string) {
	ids := make([]int, 0, len(notes))
	for id := range notes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	d.Footnotes = make([]Footnote, 0, len(ids))
	for _, id := range ids {
		d.Footnotes = append(d.Footnotes, Footnote{ID: id, Text: notes[id]})
	}
}

// Headings returns all headings in source order.
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, b := range d.Blocks {
		if h, ok := b.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Tables returns all tables in source order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// ExtractText returns the plain text of all text-bearing blocks, one block
// per line, with styling and markers discarded.
func (d *Document) ExtractText() string {
	var text string
	for _, b := range d.Blocks {
		tb, ok := b.(TextBlock)
		if !ok {
			continue
		}
		if text != "" {
			text += "\n"
		}
		text += tb.GetText()
	}
	return text
}
