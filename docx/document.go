package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel     = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCP      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
	nsEP      = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
)

// Element names carry explicit "w:" prefixes so xml.Marshal emits
// WordprocessingML as Word expects it; the prefix is declared once on the
// w:document root.

// documentXML represents word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    *bodyXML `xml:"w:body"`
}

// bodyXML represents the document body. Content holds *paragraphXML and
// *tableXML values in document order; each carries its own XMLName, which
// xml.Marshal uses for the element name.
type bodyXML struct {
	XMLName xml.Name `xml:"w:body"`
	Content []any
	SectPr  *sectPrXML
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName xml.Name           `xml:"w:p"`
	Props   *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Runs    []runXML
}

// paragraphPropsXML represents paragraph properties (<w:pPr>). Field order
// follows the OOXML schema sequence.
type paragraphPropsXML struct {
	Style   *valXML           `xml:"w:pStyle,omitempty"`
	NumPr   *numberingPropsXML `xml:"w:numPr,omitempty"`
	Bidi    *emptyXML         `xml:"w:bidi,omitempty"`
	Spacing *spacingXML       `xml:"w:spacing,omitempty"`
	Indent  *indentXML        `xml:"w:ind,omitempty"`
	Justify *valXML           `xml:"w:jc,omitempty"`
	Outline *valXML           `xml:"w:outlineLvl,omitempty"`
}

// numberingPropsXML represents numbering properties for list paragraphs.
type numberingPropsXML struct {
	ILvl  valXML `xml:"w:ilvl"`
	NumID valXML `xml:"w:numId"`
}

// valXML represents any single-value element (<w:... w:val="..."/>).
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// emptyXML represents a toggle element with no attributes (<w:bidi/>, <w:b/>).
type emptyXML struct{}

// spacingXML represents paragraph spacing in twips.
type spacingXML struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
	Line   string `xml:"w:line,attr,omitempty"`
}

// indentXML represents paragraph indentation in twips.
type indentXML struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Right   string `xml:"w:right,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName xml.Name     `xml:"w:r"`
	Props   *runPropsXML `xml:"w:rPr,omitempty"`
	Break   *breakXML    `xml:"w:br,omitempty"`
	Text    *textXML     `xml:"w:t,omitempty"`
}

// runPropsXML represents run properties (<w:rPr>). The *CS variants carry
// the formatting onto complex-script (Hebrew) characters.
type runPropsXML struct {
	Fonts    *fontsXML `xml:"w:rFonts,omitempty"`
	Bold     *emptyXML `xml:"w:b,omitempty"`
	BoldCS   *emptyXML `xml:"w:bCs,omitempty"`
	Italic   *emptyXML `xml:"w:i,omitempty"`
	ItalicCS *emptyXML `xml:"w:iCs,omitempty"`
	Size     *valXML   `xml:"w:sz,omitempty"`
	SizeCS   *valXML   `xml:"w:szCs,omitempty"`
	RTL      *emptyXML `xml:"w:rtl,omitempty"`
}

// fontsXML represents font settings (<w:rFonts>).
type fontsXML struct {
	ASCII string `xml:"w:ascii,attr,omitempty"`
	HAnsi string `xml:"w:hAnsi,attr,omitempty"`
	CS    string `xml:"w:cs,attr,omitempty"`
}

// textXML represents text content (<w:t>). Space is always "preserve" so
// leading/trailing span whitespace survives.
type textXML struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

// breakXML represents a break (<w:br>); Type "page" forces a page break.
type breakXML struct {
	Type string `xml:"w:type,attr,omitempty"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name       `xml:"w:tbl"`
	Props   tablePropsXML  `xml:"w:tblPr"`
	Grid    tableGridXML   `xml:"w:tblGrid"`
	Rows    []tableRowXML
}

// tablePropsXML represents table properties. Field order follows the OOXML
// schema sequence (bidiVisual precedes tblW).
type tablePropsXML struct {
	Style      *valXML         `xml:"w:tblStyle,omitempty"`
	BidiVisual *emptyXML       `xml:"w:bidiVisual,omitempty"`
	Width      *tableWidthXML  `xml:"w:tblW,omitempty"`
	Look       *tableLookXML   `xml:"w:tblLook,omitempty"`
}

// tableWidthXML represents table/cell width.
type tableWidthXML struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"` // dxa (twips), pct, auto
}

// tableLookXML enables conditional formatting parts of the table style.
type tableLookXML struct {
	FirstRow string `xml:"w:firstRow,attr"`
	NoHBand  string `xml:"w:noHBand,attr"`
	NoVBand  string `xml:"w:noVBand,attr"`
}

// tableGridXML represents the table grid definition.
type tableGridXML struct {
	Cols []gridColXML `xml:"w:gridCol"`
}

// gridColXML represents a grid column with its width in twips.
type gridColXML struct {
	W string `xml:"w:w,attr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"w:tr"`
	Cells   []tableCellXML `xml:"w:tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	XMLName    xml.Name       `xml:"w:tc"`
	Props      *cellPropsXML  `xml:"w:tcPr,omitempty"`
	Paragraphs []paragraphXML `xml:"w:p"`
}

// cellPropsXML represents cell properties (<w:tcPr>).
type cellPropsXML struct {
	Width *tableWidthXML `xml:"w:tcW,omitempty"`
}

// sectPrXML represents section properties (<w:sectPr>): page size and the
// uniform margins applied once at document setup.
type sectPrXML struct {
	XMLName  xml.Name       `xml:"w:sectPr"`
	PageSize pageSizeXML    `xml:"w:pgSz"`
	Margins  pageMarginsXML `xml:"w:pgMar"`
}

// pageSizeXML represents page dimensions in twips.
type pageSizeXML struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

// pageMarginsXML represents page margins in twips.
type pageMarginsXML struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// relationshipsXML represents a _rels/*.rels part.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents a single package relationship.
type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata).
type corePropertiesXML struct {
	XMLName      xml.Name       `xml:"cp:coreProperties"`
	XmlnsCP      string         `xml:"xmlns:cp,attr"`
	XmlnsDC      string         `xml:"xmlns:dc,attr"`
	XmlnsDCTerms string         `xml:"xmlns:dcterms,attr"`
	XmlnsXSI     string         `xml:"xmlns:xsi,attr"`
	Title        string         `xml:"dc:title"`
	Creator      string         `xml:"dc:creator"`
	Created      dctermsDateXML `xml:"dcterms:created"`
	Modified     dctermsDateXML `xml:"dcterms:modified"`
}

// dctermsDateXML represents a typed dcterms date value.
type dctermsDateXML struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	Application string   `xml:"Application"`
}
