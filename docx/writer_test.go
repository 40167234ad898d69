package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zvishalem/sofer/model"
)

// Minimal read-side structs. The decoder matches element local names, so
// the w: prefix written by the marshaler is transparent here.

type readDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    readBody `xml:"body"`
}

type readBody struct {
	Paragraphs []readParagraph `xml:"p"`
	Tables     []readTable     `xml:"tbl"`
}

type readParagraph struct {
	Props readParaProps `xml:"pPr"`
	Runs  []readRun     `xml:"r"`
}

type readParaProps struct {
	Style   readVal   `xml:"pStyle"`
	Bidi    *struct{} `xml:"bidi"`
	Justify readVal   `xml:"jc"`
	Indent  struct {
		Left    string `xml:"left,attr"`
		Right   string `xml:"right,attr"`
		Hanging string `xml:"hanging,attr"`
	} `xml:"ind"`
}

type readVal struct {
	Val string `xml:"val,attr"`
}

type readRun struct {
	Props struct {
		Bold   *struct{} `xml:"b"`
		Italic *struct{} `xml:"i"`
	} `xml:"rPr"`
	Breaks []struct {
		Type string `xml:"type,attr"`
	} `xml:"br"`
	Text string `xml:"t"`
}

type readTable struct {
	Rows []struct {
		Cells []struct {
			Paragraphs []readParagraph `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

func (p readParagraph) text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func (p readParagraph) hasPageBreak() bool {
	for _, r := range p.Runs {
		for _, br := range r.Breaks {
			if br.Type == "page" {
				return true
			}
		}
	}
	return false
}

func sampleDocument() *model.Document {
	doc := model.NewDocument("ספר הדוגמה")
	doc.AddBlock(&model.Heading{Level: 2, Spans: []model.Span{model.Normal("פרק ראשון")}})
	doc.AddBlock(&model.Paragraph{Spans: []model.Span{
		model.Normal("טקסט עם "),
		model.Bold("הדגשה"),
		model.Normal(" וגם "),
		model.Italic("הטיה"),
		model.Normal(" [1]"),
	}})
	doc.AddBlock(&model.Blockquote{Spans: []model.Span{model.Normal("ציטוט")}})
	doc.AddBlock(&model.Table{
		Headers: []string{"שם", "ערך"},
		Rows:    [][]string{{"א", "1"}, {"ב"}},
	})
	doc.Footnotes = []model.Footnote{{ID: 1, Text: "הערה ראשונה"}}
	return doc
}

func writeSample(t *testing.T, doc *model.Document) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, doc, DefaultStyle()); err != nil {
		t.Fatalf("write: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	return zr
}

func readPart(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	f, err := zr.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func readMainDocument(t *testing.T, zr *zip.Reader) readDocument {
	t.Helper()
	var doc readDocument
	if err := xml.Unmarshal(readPart(t, zr, "word/document.xml"), &doc); err != nil {
		t.Fatalf("unmarshal document.xml: %v", err)
	}
	return doc
}

func TestWritePackageParts(t *testing.T) {
	zr := writeSample(t, sampleDocument())

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/numbering.xml",
	}
	for _, name := range want {
		if _, err := zr.Open(name); err != nil {
			t.Errorf("missing package part %s: %v", name, err)
		}
	}
}

func TestWriteDocumentStructure(t *testing.T) {
	doc := readMainDocument(t, writeSample(t, sampleDocument()))
	paras := doc.Body.Paragraphs

	if len(paras) == 0 {
		t.Fatal("no paragraphs in document body")
	}

	title := paras[0]
	if title.text() != "ספר הדוגמה" {
		t.Errorf("title text = %q", title.text())
	}
	if title.Props.Justify.Val != "center" {
		t.Errorf("title alignment = %q, want center", title.Props.Justify.Val)
	}
	if !paras[1].hasPageBreak() {
		t.Error("title page must end with a forced page break")
	}

	heading := paras[2]
	if heading.Props.Style.Val != "Heading2" {
		t.Errorf("heading style = %q, want Heading2", heading.Props.Style.Val)
	}
	if heading.Props.Bidi == nil {
		t.Error("heading paragraph lost bidi")
	}

	body := paras[3]
	if got := body.text(); got != "טקסט עם הדגשה וגם הטיה [1]" {
		t.Errorf("body text = %q", got)
	}
	var sawBold, sawItalic bool
	for _, r := range body.Runs {
		if r.Props.Bold != nil && r.Text == "הדגשה" {
			sawBold = true
		}
		if r.Props.Italic != nil && r.Text == "הטיה" {
			sawItalic = true
		}
	}
	if !sawBold || !sawItalic {
		t.Errorf("span formatting lost: bold=%v italic=%v", sawBold, sawItalic)
	}

	quote := paras[4]
	if quote.Props.Indent.Left != "720" || quote.Props.Indent.Right != "720" {
		t.Errorf("blockquote indent = %+v", quote.Props.Indent)
	}
}

func TestWriteTableContent(t *testing.T) {
	doc := readMainDocument(t, writeSample(t, sampleDocument()))

	if len(doc.Body.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(doc.Body.Tables))
	}
	tbl := doc.Body.Tables[0]
	if len(tbl.Rows) != 3 {
		t.Fatalf("table rows = %d, want 3", len(tbl.Rows))
	}

	header := tbl.Rows[0]
	if got := header.Cells[0].Paragraphs[0].text(); got != "שם" {
		t.Errorf("header cell = %q", got)
	}
	if header.Cells[0].Paragraphs[0].Runs[0].Props.Bold == nil {
		t.Error("header cell must be bold")
	}

	// The short row still carries a cell for every header column.
	short := tbl.Rows[2]
	if len(short.Cells) != 2 {
		t.Fatalf("short row cells = %d, want 2", len(short.Cells))
	}
	if got := short.Cells[1].Paragraphs[0].text(); got != "" {
		t.Errorf("padded cell = %q, want empty", got)
	}
}

func TestWriteFootnoteSection(t *testing.T) {
	doc := readMainDocument(t, writeSample(t, sampleDocument()))
	paras := doc.Body.Paragraphs

	var headingIdx = -1
	for i, p := range paras {
		if p.text() == "הערות שוליים" {
			headingIdx = i
		}
	}
	if headingIdx < 0 {
		t.Fatal("footnote section heading not found")
	}
	if !paras[headingIdx-1].hasPageBreak() {
		t.Error("footnote section must start on a fresh page")
	}

	entry := paras[len(paras)-1]
	if got := entry.text(); got != "[1] הערה ראשונה" {
		t.Errorf("footnote entry = %q", got)
	}
	if entry.Props.Indent.Left != "720" || entry.Props.Indent.Hanging != "360" {
		t.Errorf("footnote indent = %+v, want hanging layout", entry.Props.Indent)
	}
}

func TestWriteWithoutFootnotes(t *testing.T) {
	plain := model.NewDocument("")
	plain.AddBlock(&model.Paragraph{Spans: []model.Span{model.Normal("גוף")}})

	doc := readMainDocument(t, writeSample(t, plain))
	for _, p := range doc.Body.Paragraphs {
		if p.text() == DefaultStyle().FootnotesTitle {
			t.Fatal("footnote section rendered for a document without footnotes")
		}
		if p.hasPageBreak() {
			t.Fatal("no page breaks expected without a title page or footnotes")
		}
	}
}

func TestCreateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.docx")
	if err := Create(path, sampleDocument(), DefaultStyle()); err != nil {
		t.Fatalf("create: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty output file")
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer zr.Close()
	if _, err := zr.Open("word/document.xml"); err != nil {
		t.Errorf("main document part missing: %v", err)
	}
}
