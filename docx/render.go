package docx

import (
	"fmt"
	"strconv"

	"github.com/zvishalem/sofer/markup"
	"github.com/zvishalem/sofer/model"
)

// Indentation used for blockquotes and footnote entries, in twips.
const (
	quoteIndentTwips   = 720 // 0.5"
	hangingIndentTwips = 360 // 0.25"
)

// renderer walks the document model and produces the word/document.xml
// tree. All styling decisions come from the Style value; the renderer holds
// no other state.
type renderer struct {
	style Style
}

// document renders the complete body: title page, body blocks, and the
// footnotes section when any footnotes were collected.
func (r *renderer) document(doc *model.Document) *documentXML {
	var content []any

	if doc.Title != "" {
		content = append(content, r.titleParagraph(doc.Title), r.pageBreak())
	}

	for _, b := range doc.Blocks {
		content = append(content, r.block(b))
	}

	if doc.HasFootnotes() {
		content = append(content, r.footnoteSection(doc.Footnotes)...)
	}

	return &documentXML{
		XmlnsW: nsW,
		Body: &bodyXML{
			Content: content,
			SectPr:  r.sectionProps(),
		},
	}
}

// block renders a single body block.
func (r *renderer) block(b model.Block) any {
	switch blk := b.(type) {
	case *model.Heading:
		return r.headingParagraph(blk)
	case *model.Paragraph:
		return r.paragraph(blk.Spans, r.props())
	case *model.Blockquote:
		props := r.props()
		props.Indent = &indentXML{
			Left:  twips(quoteIndentTwips),
			Right: twips(quoteIndentTwips),
		}
		return r.paragraph(blk.Spans, props)
	case *model.ListItem:
		return r.listItemParagraph(blk)
	case *model.Table:
		return r.table(blk)
	case *model.Separator:
		// A visual break renders as an empty paragraph.
		return &paragraphXML{}
	case *model.PageBreak:
		return r.pageBreak()
	default:
		return &paragraphXML{}
	}
}

// props returns fresh paragraph properties carrying the direction flag.
// Direction is set per block, not as a document default, because every
// block is constructed independently.
func (r *renderer) props() *paragraphPropsXML {
	p := &paragraphPropsXML{}
	if r.style.rtl() {
		p.Bidi = &emptyXML{}
	}
	return p
}

// paragraph renders spans as successive styled runs under the given
// properties. Empty properties are dropped so plain paragraphs stay plain.
func (r *renderer) paragraph(spans []model.Span, props *paragraphPropsXML) *paragraphXML {
	if props != nil && *props == (paragraphPropsXML{}) {
		props = nil
	}
	p := &paragraphXML{Props: props}
	for _, s := range spans {
		p.Runs = append(p.Runs, r.run(s))
	}
	return p
}

// run renders one span: bold spans set the bold attribute, italic spans the
// italic attribute, normal spans carry neither.
func (r *renderer) run(s model.Span) runXML {
	run := runXML{Text: &textXML{Space: "preserve", Value: s.Text}}
	switch s.Kind {
	case model.SpanBold:
		run.Props = &runPropsXML{Bold: &emptyXML{}, BoldCS: &emptyXML{}}
	case model.SpanItalic:
		run.Props = &runPropsXML{Italic: &emptyXML{}, ItalicCS: &emptyXML{}}
	}
	return run
}

// headingParagraph renders a heading with its level style.
func (r *renderer) headingParagraph(h *model.Heading) *paragraphXML {
	props := r.props()
	props.Style = &valXML{Val: styleHeadingPrefix + strconv.Itoa(h.Level)}
	return r.paragraph(h.Spans, props)
}

// listItemParagraph renders a single list item with the matching list style
// and numbering reference.
func (r *renderer) listItemParagraph(li *model.ListItem) *paragraphXML {
	props := r.props()
	if li.Ordered {
		props.Style = &valXML{Val: styleListNumber}
		props.NumPr = &numberingPropsXML{
			ILvl:  valXML{Val: "0"},
			NumID: valXML{Val: numIDOrdered},
		}
	} else {
		props.Style = &valXML{Val: styleListBullet}
		props.NumPr = &numberingPropsXML{
			ILvl:  valXML{Val: "0"},
			NumID: valXML{Val: numIDUnordered},
		}
	}
	return r.paragraph(li.Spans, props)
}

// titleParagraph renders the centered title-page paragraph with direct
// formatting at the title size.
func (r *renderer) titleParagraph(title string) *paragraphXML {
	props := r.props()
	props.Justify = &valXML{Val: "center"}

	size := halfPoints(r.style.TitleSize)
	run := runXML{
		Props: &runPropsXML{
			Fonts:  &fontsXML{ASCII: r.style.Font, HAnsi: r.style.Font, CS: r.style.Font},
			Bold:   &emptyXML{},
			BoldCS: &emptyXML{},
			Size:   &valXML{Val: size},
			SizeCS: &valXML{Val: size},
		},
		Text: &textXML{Space: "preserve", Value: title},
	}
	return &paragraphXML{Props: props, Runs: []runXML{run}}
}

// pageBreak renders a paragraph holding a forced page break.
func (r *renderer) pageBreak() *paragraphXML {
	return &paragraphXML{
		Runs: []runXML{{Break: &breakXML{Type: "page"}}},
	}
}

// table renders a grid with one bold header row followed by one row per
// data row. Row width conforms to the header width: short rows leave their
// trailing cells empty, extra cells are ignored.
func (r *renderer) table(t *model.Table) any {
	cols := t.ColCount()
	if cols == 0 {
		// A degenerate table with no header cells renders as nothing
		// visible.
		return &paragraphXML{}
	}

	colWidth := r.style.contentWidthTwips() / cols
	grid := tableGridXML{}
	for i := 0; i < cols; i++ {
		grid.Cols = append(grid.Cols, gridColXML{W: twips(colWidth)})
	}

	tbl := &tableXML{
		Props: tablePropsXML{
			Style: &valXML{Val: styleTableGrid},
			Width: &tableWidthXML{W: "0", Type: "auto"},
			Look:  &tableLookXML{FirstRow: "1", NoHBand: "0", NoVBand: "1"},
		},
		Grid: grid,
	}
	if r.style.rtl() {
		tbl.Props.BidiVisual = &emptyXML{}
	}

	header := tableRowXML{}
	for _, text := range t.Headers {
		header.Cells = append(header.Cells, r.cell(text, colWidth, true))
	}
	tbl.Rows = append(tbl.Rows, header)

	for _, row := range t.Rows {
		tr := tableRowXML{}
		for col := 0; col < cols; col++ {
			text := ""
			if col < len(row) {
				text = row[col]
			}
			tr.Cells = append(tr.Cells, r.cell(text, colWidth, false))
		}
		tbl.Rows = append(tbl.Rows, tr)
	}

	return tbl
}

// cell renders one table cell holding a single aligned paragraph. Header
// cells are bold; alignment follows the paragraph direction.
func (r *renderer) cell(text string, widthTwips int, header bool) tableCellXML {
	props := r.props()
	if r.style.rtl() {
		props.Justify = &valXML{Val: "right"}
	} else {
		props.Justify = &valXML{Val: "left"}
	}

	run := runXML{Text: &textXML{Space: "preserve", Value: text}}
	if header {
		run.Props = &runPropsXML{Bold: &emptyXML{}, BoldCS: &emptyXML{}}
	}

	return tableCellXML{
		Props: &cellPropsXML{
			Width: &tableWidthXML{W: twips(widthTwips), Type: "dxa"},
		},
		Paragraphs: []paragraphXML{{Props: props, Runs: []runXML{run}}},
	}
}

// footnoteSection renders the trailing footnotes pages: a forced page
// break, a centered section heading, and one hanging-indent paragraph per
// entry in ascending id order.
func (r *renderer) footnoteSection(notes []model.Footnote) []any {
	content := []any{r.pageBreak()}

	heading := r.props()
	heading.Justify = &valXML{Val: "center"}
	size := halfPoints(r.style.headingSize(2))
	content = append(content, &paragraphXML{
		Props: heading,
		Runs: []runXML{{
			Props: &runPropsXML{
				Fonts:  &fontsXML{ASCII: r.style.Font, HAnsi: r.style.Font, CS: r.style.Font},
				Bold:   &emptyXML{},
				BoldCS: &emptyXML{},
				Size:   &valXML{Val: size},
				SizeCS: &valXML{Val: size},
			},
			Text: &textXML{Space: "preserve", Value: r.style.FootnotesTitle},
		}},
	})

	content = append(content, &paragraphXML{})

	for _, fn := range notes {
		props := r.props()
		props.Indent = &indentXML{
			Left:    twips(quoteIndentTwips),
			Hanging: twips(hangingIndentTwips),
		}
		// Footnote text carries inline emphasis like any body line.
		spans := append(
			[]model.Span{model.Normal(fmt.Sprintf("[%d] ", fn.ID))},
			markup.ScanSpans(fn.Text)...,
		)
		content = append(content, r.paragraph(spans, props))
	}

	return content
}

// sectionProps returns the section properties: Letter page size with the
// uniform margins applied once at document setup.
func (r *renderer) sectionProps() *sectPrXML {
	m := twips(r.style.MarginTwips)
	return &sectPrXML{
		PageSize: pageSizeXML{W: twips(pageWidthTwips), H: twips(pageHeightTwips)},
		Margins: pageMarginsXML{
			Top:    m,
			Right:  m,
			Bottom: m,
			Left:   m,
			Header: "720",
			Footer: "720",
			Gutter: "0",
		},
	}
}
