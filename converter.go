package sofer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/zvishalem/sofer/docx"
	"github.com/zvishalem/sofer/extract"
	"github.com/zvishalem/sofer/format"
	"github.com/zvishalem/sofer/markup"
	"github.com/zvishalem/sofer/model"
	"github.com/zvishalem/sofer/text"
)

// Converter provides a fluent interface for turning markup or HTML sources
// into DOCX documents. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	filename  string
	source    string
	hasSource bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
// This ensures immutability, each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:  c.filename,
		source:    c.source,
		hasSource: c.hasSource,
		options:   c.options.clone(),
		err:       c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Title sets the document title, rendered on a page of its own before the
// body.
//
// Example:
//
//	err := sofer.Open("book.md").Title("ספר הדוגמה").WriteDOCX("book.docx")
func (c *Converter) Title(title string) *Converter {
	nc := c.clone()
	nc.options.title = title
	nc.options.titleSet = true
	return nc
}

// Font sets the font family used throughout the document.
func (c *Converter) Font(name string) *Converter {
	nc := c.clone()
	if name == "" {
		nc.err = fmt.Errorf("font name cannot be empty")
		return nc
	}
	nc.options.font = name
	return nc
}

// BaseSize sets the body text size in points. Headings and the title keep
// their own sizes.
func (c *Converter) BaseSize(points int) *Converter {
	nc := c.clone()
	if points < 1 {
		nc.err = fmt.Errorf("base size must be positive, got %d", points)
		return nc
	}
	nc.options.baseSize = points
	return nc
}

// Margins sets the uniform page margin in inches on all four sides. The
// margin must be non-negative and small enough to leave usable width on
// the page.
func (c *Converter) Margins(inches float64) *Converter {
	nc := c.clone()
	if inches < 0 {
		nc.err = fmt.Errorf("margin cannot be negative, got %g", inches)
		return nc
	}
	twips := int(inches * 1440)
	if twips >= docx.MaxMarginTwips {
		nc.err = fmt.Errorf("margin of %g inches leaves no room on the page", inches)
		return nc
	}
	nc.options.marginTwips = twips
	return nc
}

// LTR renders the document left-to-right instead of the default
// right-to-left layout.
func (c *Converter) LTR() *Converter {
	nc := c.clone()
	nc.options.direction = text.LTR
	nc.options.detectDirection = false
	return nc
}

// DetectDirection chooses the paragraph direction from the source text
// instead of assuming right-to-left. Sources with no strong-direction
// characters keep the default.
func (c *Converter) DetectDirection() *Converter {
	nc := c.clone()
	nc.options.detectDirection = true
	return nc
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Markup returns the markup source that will be converted. For HTML inputs
// this is the extracted markup; for markup inputs it is the source itself.
func (c *Converter) Markup() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	src, _, err := c.loadSource()
	return src, err
}

// Document parses the source and returns the built document model.
//
// Example:
//
//	doc, err := sofer.Open("book.md").Document()
func (c *Converter) Document() (*model.Document, error) {
	if c.err != nil {
		return nil, c.err
	}

	src, pageTitle, err := c.loadSource()
	if err != nil {
		return nil, err
	}

	title := pageTitle
	if c.options.titleSet {
		title = c.options.title
	}

	blocks, footnotes := markup.Parse(src)
	doc := model.NewDocument(title)
	for _, b := range blocks {
		doc.AddBlock(b)
	}
	doc.Footnotes = footnotes

	return doc, nil
}

// WriteDOCX converts the source and writes the result to path.
//
// Example:
//
//	err := sofer.Open("book.md").WriteDOCX("book.docx")
func (c *Converter) WriteDOCX(path string) error {
	doc, err := c.Document()
	if err != nil {
		return err
	}

	style := c.options.style()
	if c.options.detectDirection {
		if dir := text.DetectDirection(doc.ExtractText()); dir != text.Neutral {
			style.Direction = dir
		}
	}

	return docx.Create(path, doc, style)
}

// loadSource returns the markup source and, for HTML inputs, the page
// title. Files without an HTML extension are still sniffed for HTML
// content, so a saved page behind a .txt or unknown extension routes
// through extraction.
func (c *Converter) loadSource() (src, pageTitle string, err error) {
	if c.hasSource {
		return c.source, "", nil
	}
	if c.filename == "" {
		return "", "", fmt.Errorf("no source specified")
	}

	if format.Detect(c.filename) == format.HTML {
		page, err := extract.ParseFile(c.filename)
		if err != nil {
			return "", "", fmt.Errorf("extracting %s: %w", c.filename, err)
		}
		return page.Markup(), page.Title, nil
	}

	data, err := os.ReadFile(c.filename)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", c.filename, err)
	}

	if format.DetectFromContent(data) == format.HTML {
		page, err := extract.Parse(bytes.NewReader(data))
		if err != nil {
			return "", "", fmt.Errorf("extracting %s: %w", c.filename, err)
		}
		return page.Markup(), page.Title, nil
	}

	if format.Detect(c.filename) == format.Unknown {
		return "", "", fmt.Errorf("unsupported file format: %s", c.filename)
	}
	return string(data), "", nil
}
