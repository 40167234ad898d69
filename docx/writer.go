// Package docx writes paginated, styled DOCX (Office Open XML) documents
// from the parsed document model.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zvishalem/sofer/model"
)

// contentTypes is the static [Content_Types].xml part.
const contentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

// Relationship type URIs.
const (
	relTypeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCore      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeApp       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relTypeStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
)

// Create renders doc with the given style and writes the DOCX package to
// path. I/O faults are fatal and returned with their underlying cause; no
// partial output is guaranteed to be valid.
func Create(path string, doc *model.Document, style Style) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := Write(f, doc, style); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// Write renders doc with the given style and writes a complete DOCX
// package to w.
func Write(w io.Writer, doc *model.Document, style Style) error {
	r := &renderer{style: style}

	parts := []struct {
		name string
		data any
	}{
		{"_rels/.rels", rootRelationships()},
		{"docProps/core.xml", coreProperties(doc.Title, time.Now().UTC())},
		{"docProps/app.xml", &appPropertiesXML{Xmlns: nsEP, Application: "sofer"}},
		{"word/document.xml", r.document(doc)},
		{"word/_rels/document.xml.rels", documentRelationships()},
		{"word/styles.xml", stylesPart(style)},
		{"word/numbering.xml", numberingPart()},
	}

	zw := zip.NewWriter(w)

	if err := writePart(zw, "[Content_Types].xml", []byte(contentTypes)); err != nil {
		zw.Close()
		return err
	}
	for _, p := range parts {
		data, err := xml.Marshal(p.data)
		if err != nil {
			zw.Close()
			return fmt.Errorf("marshaling %s: %w", p.name, err)
		}
		if err := writePart(zw, p.name, append([]byte(xml.Header), data...)); err != nil {
			zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// writePart adds a single file to the ZIP archive.
func writePart(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("writing archive entry %s: %w", name, err)
	}
	return nil
}

// rootRelationships builds the package-level _rels/.rels part.
func rootRelationships() *relationshipsXML {
	return &relationshipsXML{
		Xmlns: nsRel,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeDocument, Target: "word/document.xml"},
			{ID: "rId2", Type: relTypeCore, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeApp, Target: "docProps/app.xml"},
		},
	}
}

// documentRelationships builds word/_rels/document.xml.rels.
func documentRelationships() *relationshipsXML {
	return &relationshipsXML{
		Xmlns: nsRel,
		Relationships: []relationshipXML{
			{ID: "rId1", Type: relTypeStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relTypeNumbering, Target: "numbering.xml"},
		},
	}
}

// coreProperties builds docProps/core.xml with the document title and
// creation timestamps.
func coreProperties(title string, now time.Time) *corePropertiesXML {
	stamp := now.Format("2006-01-02T15:04:05Z")
	return &corePropertiesXML{
		XmlnsCP:      nsCP,
		XmlnsDC:      nsDC,
		XmlnsDCTerms: nsDCTerms,
		XmlnsXSI:     nsXSI,
		Title:        title,
		Creator:      "sofer",
		Created:      dctermsDateXML{Type: "dcterms:W3CDTF", Value: stamp},
		Modified:     dctermsDateXML{Type: "dcterms:W3CDTF", Value: stamp},
	}
}
