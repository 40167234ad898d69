// Package sofer provides a fluent API for converting Hebrew lightweight
// markup into styled, paginated DOCX documents.
//
// Basic usage:
//
//	err := sofer.Open("book.md").Title("ספר הדוגמה").WriteDOCX("book.docx")
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	err := sofer.Open("notes.md").
//	    Font("Arial").
//	    BaseSize(11).
//	    DetectDirection().
//	    WriteDOCX("notes.docx")
//
// HTML sources are extracted to markup first, so saved web pages convert
// through the same pipeline. For advanced use cases, the lower-level
// markup, model, and docx packages are also available.
package sofer

import (
	"fmt"
	"io"
)

// Open prepares a source file for conversion and returns a Converter for
// fluent configuration. The file format is detected from the extension;
// the file itself is not read until a terminal operation runs.
//
// Example:
//
//	err := sofer.Open("book.md").WriteDOCX("book.docx")
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString creates a Converter from markup source held in memory.
//
// Example:
//
//	doc, err := sofer.FromString("# כותרת\n\nפסקה.").Document()
func FromString(src string) *Converter {
	return &Converter{
		source:    src,
		hasSource: true,
		options:   defaultOptions(),
	}
}

// FromReader creates a Converter from markup read from r. The reader is
// consumed immediately.
func FromReader(r io.Reader) *Converter {
	data, err := io.ReadAll(r)
	c := &Converter{
		source:    string(data),
		hasSource: true,
		options:   defaultOptions(),
	}
	if err != nil {
		c.err = fmt.Errorf("reading source: %w", err)
	}
	return c
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := sofer.Must(sofer.Open("book.md").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
