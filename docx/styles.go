package docx

import (
	"encoding/xml"
	"strconv"
)

// stylesXML represents word/styles.xml.
type stylesXML struct {
	XMLName     xml.Name       `xml:"w:styles"`
	XmlnsW      string         `xml:"xmlns:w,attr"`
	DocDefaults docDefaultsXML `xml:"w:docDefaults"`
	Styles      []styleDefXML
}

// docDefaultsXML represents document default formatting.
type docDefaultsXML struct {
	XMLName    xml.Name      `xml:"w:docDefaults"`
	RPrDefault rPrDefaultXML `xml:"w:rPrDefault"`
}

// rPrDefaultXML represents default run properties.
type rPrDefaultXML struct {
	RPr *runPropsXML `xml:"w:rPr,omitempty"`
}

// styleDefXML represents a single style definition. Child order follows the
// OOXML schema sequence.
type styleDefXML struct {
	XMLName    xml.Name           `xml:"w:style"`
	Type       string             `xml:"w:type,attr"`
	StyleID    string             `xml:"w:styleId,attr"`
	Default    string             `xml:"w:default,attr,omitempty"`
	Name       valXML             `xml:"w:name"`
	BasedOn    *valXML            `xml:"w:basedOn,omitempty"`
	Next       *valXML            `xml:"w:next,omitempty"`
	QFormat    *emptyXML          `xml:"w:qFormat,omitempty"`
	PPr        *paragraphPropsXML `xml:"w:pPr,omitempty"`
	RPr        *runPropsXML       `xml:"w:rPr,omitempty"`
	TblPr      *styleTablePrXML   `xml:"w:tblPr,omitempty"`
	TblStylePr []tableStylePrXML
}

// styleTablePrXML represents table properties inside a table style.
type styleTablePrXML struct {
	Borders *tableBordersXML `xml:"w:tblBorders,omitempty"`
}

// tableBordersXML represents the six table border definitions.
type tableBordersXML struct {
	Top     borderXML `xml:"w:top"`
	Left    borderXML `xml:"w:left"`
	Bottom  borderXML `xml:"w:bottom"`
	Right   borderXML `xml:"w:right"`
	InsideH borderXML `xml:"w:insideH"`
	InsideV borderXML `xml:"w:insideV"`
}

// borderXML represents a single border line.
type borderXML struct {
	Val   string `xml:"w:val,attr"`
	Sz    string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

// tableStylePrXML represents conditional table formatting (header row,
// banded rows).
type tableStylePrXML struct {
	XMLName xml.Name         `xml:"w:tblStylePr"`
	Type    string           `xml:"w:type,attr"`
	RPr     *runPropsXML     `xml:"w:rPr,omitempty"`
	TcPr    *styleCellPrXML  `xml:"w:tcPr,omitempty"`
}

// styleCellPrXML represents cell properties inside a conditional style.
type styleCellPrXML struct {
	Shading *shadingXML `xml:"w:shd,omitempty"`
}

// shadingXML represents cell shading.
type shadingXML struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

// numberingXML represents word/numbering.xml.
type numberingXML struct {
	XMLName      xml.Name `xml:"w:numbering"`
	XmlnsW       string   `xml:"xmlns:w,attr"`
	AbstractNums []abstractNumXML
	Nums         []numInstanceXML
}

// abstractNumXML represents an abstract numbering definition.
type abstractNumXML struct {
	XMLName xml.Name `xml:"w:abstractNum"`
	ID      string   `xml:"w:abstractNumId,attr"`
	Levels  []levelXML
}

// levelXML represents one numbering level.
type levelXML struct {
	XMLName xml.Name           `xml:"w:lvl"`
	ILvl    string             `xml:"w:ilvl,attr"`
	Start   *valXML            `xml:"w:start,omitempty"`
	NumFmt  valXML             `xml:"w:numFmt"`
	LvlText valXML             `xml:"w:lvlText"`
	LvlJc   valXML             `xml:"w:lvlJc"`
	PPr     *paragraphPropsXML `xml:"w:pPr,omitempty"`
}

// numInstanceXML represents a concrete numbering instance.
type numInstanceXML struct {
	XMLName       xml.Name `xml:"w:num"`
	ID            string   `xml:"w:numId,attr"`
	AbstractNumID valXML   `xml:"w:abstractNumId"`
}

// Numbering instance IDs referenced by list paragraphs.
const (
	numIDOrdered   = "1"
	numIDUnordered = "2"
)

// Paragraph style IDs referenced by the renderer.
const (
	styleHeadingPrefix = "Heading"
	styleListNumber    = "ListNumber"
	styleListBullet    = "ListBullet"
	styleTableGrid     = "LightGridAccent1"
)

// stylesPart builds word/styles.xml from the style configuration: a default
// Normal style, bold heading styles for levels 1-3, list paragraph styles,
// and a banded table style.
func stylesPart(s Style) *stylesXML {
	fonts := &fontsXML{ASCII: s.Font, HAnsi: s.Font, CS: s.Font}

	styles := []styleDefXML{
		{
			Type:    "paragraph",
			StyleID: "Normal",
			Default: "1",
			Name:    valXML{Val: "Normal"},
			QFormat: &emptyXML{},
			RPr: &runPropsXML{
				Fonts:  fonts,
				Size:   &valXML{Val: halfPoints(s.BaseSize)},
				SizeCS: &valXML{Val: halfPoints(s.BaseSize)},
			},
		},
	}

	for level := 1; level <= 3; level++ {
		styles = append(styles, headingStyle(s, level, fonts))
	}

	styles = append(styles,
		styleDefXML{
			Type:    "paragraph",
			StyleID: styleListNumber,
			Name:    valXML{Val: "List Number"},
			BasedOn: &valXML{Val: "Normal"},
			QFormat: &emptyXML{},
			PPr: &paragraphPropsXML{
				NumPr: &numberingPropsXML{
					ILvl:  valXML{Val: "0"},
					NumID: valXML{Val: numIDOrdered},
				},
			},
		},
		styleDefXML{
			Type:    "paragraph",
			StyleID: styleListBullet,
			Name:    valXML{Val: "List Bullet"},
			BasedOn: &valXML{Val: "Normal"},
			QFormat: &emptyXML{},
			PPr: &paragraphPropsXML{
				NumPr: &numberingPropsXML{
					ILvl:  valXML{Val: "0"},
					NumID: valXML{Val: numIDUnordered},
				},
			},
		},
		tableGridStyle(),
	)

	return &stylesXML{
		XmlnsW: nsW,
		DocDefaults: docDefaultsXML{
			RPrDefault: rPrDefaultXML{
				RPr: &runPropsXML{
					Fonts:  fonts,
					Size:   &valXML{Val: halfPoints(s.BaseSize)},
					SizeCS: &valXML{Val: halfPoints(s.BaseSize)},
				},
			},
		},
		Styles: styles,
	}
}

// headingStyle builds the bold heading style for one level.
func headingStyle(s Style, level int, fonts *fontsXML) styleDefXML {
	size := halfPoints(s.headingSize(level))
	lvl := strconv.Itoa(level)
	return styleDefXML{
		Type:    "paragraph",
		StyleID: styleHeadingPrefix + lvl,
		Name:    valXML{Val: "heading " + lvl},
		BasedOn: &valXML{Val: "Normal"},
		Next:    &valXML{Val: "Normal"},
		QFormat: &emptyXML{},
		PPr: &paragraphPropsXML{
			Spacing: &spacingXML{Before: "240", After: "120"},
			Outline: &valXML{Val: strconv.Itoa(level - 1)},
		},
		RPr: &runPropsXML{
			Fonts:  fonts,
			Bold:   &emptyXML{},
			BoldCS: &emptyXML{},
			Size:   &valXML{Val: size},
			SizeCS: &valXML{Val: size},
		},
	}
}

// tableGridStyle builds the banded grid table style: full single-line
// borders, a bold header row, and shaded alternating bands.
func tableGridStyle() styleDefXML {
	border := borderXML{Val: "single", Sz: "4", Space: "0", Color: "4472C4"}
	return styleDefXML{
		Type:    "table",
		StyleID: styleTableGrid,
		Name:    valXML{Val: "Light Grid Accent 1"},
		TblPr: &styleTablePrXML{
			Borders: &tableBordersXML{
				Top:     border,
				Left:    border,
				Bottom:  border,
				Right:   border,
				InsideH: border,
				InsideV: border,
			},
		},
		TblStylePr: []tableStylePrXML{
			{
				Type: "firstRow",
				RPr:  &runPropsXML{Bold: &emptyXML{}, BoldCS: &emptyXML{}},
			},
			{
				Type: "band1Horz",
				TcPr: &styleCellPrXML{
					Shading: &shadingXML{Val: "clear", Color: "auto", Fill: "D9E2F3"},
				},
			},
		},
	}
}

// numberingPart builds word/numbering.xml with one decimal and one bullet
// list definition.
func numberingPart() *numberingXML {
	return &numberingXML{
		XmlnsW: nsW,
		AbstractNums: []abstractNumXML{
			{
				ID: "1",
				Levels: []levelXML{
					{
						ILvl:    "0",
						Start:   &valXML{Val: "1"},
						NumFmt:  valXML{Val: "decimal"},
						LvlText: valXML{Val: "%1."},
						LvlJc:   valXML{Val: "left"},
						PPr: &paragraphPropsXML{
							Indent: &indentXML{Left: "720", Hanging: "360"},
						},
					},
				},
			},
			{
				ID: "2",
				Levels: []levelXML{
					{
						ILvl:    "0",
						NumFmt:  valXML{Val: "bullet"},
						LvlText: valXML{Val: "•"},
						LvlJc:   valXML{Val: "left"},
						PPr: &paragraphPropsXML{
							Indent: &indentXML{Left: "720", Hanging: "360"},
						},
					},
				},
			},
		},
		Nums: []numInstanceXML{
			{ID: numIDOrdered, AbstractNumID: valXML{Val: "1"}},
			{ID: numIDUnordered, AbstractNumID: valXML{Val: "2"}},
		},
	}
}
