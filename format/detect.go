// Package format provides input format detection for the sofer converter.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Markup indicates a plain-text file in the markup dialect.
	Markup
	// HTML indicates an HTML document, routed through the extract package
	// before parsing.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Markup:
		return "Markup"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Markup:
		return ".md"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines input format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".txt":
		return Markup
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromContent sniffs the content to determine format. Anything that
// does not look like HTML is treated as markup text, since the markup
// dialect has no distinguishing magic of its own.
func DetectFromContent(data []byte) Format {
	if detectHTMLMagic(data) {
		return HTML
	}
	return Markup
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	// Check for common HTML signatures (case-insensitive for DOCTYPE)
	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
