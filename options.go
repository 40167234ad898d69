package sofer

import (
	"github.com/zvishalem/sofer/docx"
	"github.com/zvishalem/sofer/text"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Document title; when unset, HTML sources fall back to their page
	// title and markup sources produce an untitled document.
	title    string
	titleSet bool

	// Styling overrides applied on top of the default style.
	font     string
	baseSize int

	// Uniform page margin in twips.
	marginTwips int

	// Direction handling
	direction       text.Direction
	detectDirection bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	base := docx.DefaultStyle()
	return ConvertOptions{
		font:        base.Font,
		baseSize:    base.BaseSize,
		marginTwips: base.MarginTwips,
		direction:   base.Direction,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		title:           o.title,
		titleSet:        o.titleSet,
		font:            o.font,
		baseSize:        o.baseSize,
		marginTwips:     o.marginTwips,
		direction:       o.direction,
		detectDirection: o.detectDirection,
	}
}

// style materializes the options into a renderer style.
func (o ConvertOptions) style() docx.Style {
	s := docx.DefaultStyle()
	s.Font = o.font
	s.BaseSize = o.baseSize
	s.MarginTwips = o.marginTwips
	s.Direction = o.direction
	return s
}
