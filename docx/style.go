package docx

import (
	"strconv"

	"github.com/zvishalem/sofer/text"
)

// twipsPerInch is the OOXML measurement unit: twentieths of a point.
const twipsPerInch = 1440

// Letter page size in twips.
const (
	pageWidthTwips  = 12240
	pageHeightTwips = 15840
)

// MaxMarginTwips is the largest uniform margin a Style can carry. The
// margin is applied on both sides, so doubling it must leave a positive
// content width on the page.
const MaxMarginTwips = pageWidthTwips / 2

// Style is the immutable rendering configuration for a conversion run. It
// is passed into the renderer rather than held as process-wide state, so
// repeated or concurrent conversions cannot interfere.
type Style struct {
	// Font is applied to all text, including complex-script (Hebrew) runs.
	Font string

	// BaseSize is the body text size in points.
	BaseSize int

	// TitleSize is the title-page text size in points.
	TitleSize int

	// HeadingSizes are the sizes in points for heading levels 1-3, largest
	// first. All heading levels render bold.
	HeadingSizes [3]int

	// Direction is the paragraph direction applied to every text-bearing
	// block.
	Direction text.Direction

	// MarginTwips is the uniform page margin on all four sides.
	MarginTwips int

	// FootnotesTitle is the centered heading of the footnotes section.
	FootnotesTitle string
}

// DefaultStyle returns the configuration used for Hebrew legal research
// papers: David font, 12pt body, bold 18/16/14pt headings, RTL paragraph
// direction, and one-inch margins.
func DefaultStyle() Style {
	return Style{
		Font:           "David",
		BaseSize:       12,
		TitleSize:      24,
		HeadingSizes:   [3]int{18, 16, 14},
		Direction:      text.RTL,
		MarginTwips:    twipsPerInch,
		FootnotesTitle: "הערות שוליים",
	}
}

// rtl reports whether paragraphs render right-to-left.
func (s Style) rtl() bool { return s.Direction == text.RTL }

// headingSize returns the point size for a heading level, falling back to
// the body size for out-of-range levels.
func (s Style) headingSize(level int) int {
	if level >= 1 && level <= len(s.HeadingSizes) {
		return s.HeadingSizes[level-1]
	}
	return s.BaseSize
}

// contentWidthTwips returns the usable width between the margins.
func (s Style) contentWidthTwips() int {
	return pageWidthTwips - 2*s.MarginTwips
}

// halfPoints converts a point size to the half-point string OOXML expects.
func halfPoints(pt int) string {
	return strconv.Itoa(pt * 2)
}

// twips formats a twip measurement as a string.
func twips(n int) string {
	return strconv.Itoa(n)
}
