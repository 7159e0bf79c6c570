// Package textflow is the generic wrap-and-paginate primitive behind every
// document report. It knows nothing about entity kinds: callers hand it
// styled blocks, it hands back pages of positioned line instructions for an
// external page-emission collaborator to render.
package textflow

// ColorTag names a style slot for a block or line. The page-emission
// collaborator owns the mapping from tag to concrete color.
type ColorTag string

const (
	TagDefault ColorTag = "default"
	TagHeading ColorTag = "heading"
	TagAccent  ColorTag = "accent"
	TagMuted   ColorTag = "muted"
	TagGood    ColorTag = "good"
	TagWarn    ColorTag = "warn"
	TagBad     ColorTag = "bad"
)

// Block is one logical run of text to be wrapped and flowed onto pages.
type Block struct {
	Text     string
	FontSize float64
	Indent   float64
	Color    ColorTag
}

// Line is one positioned, styled line instruction on a page. X and Y are
// the left edge and baseline-top of the line in page units.
type Line struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Color    ColorTag
}

// Page is an ordered sequence of line instructions.
type Page struct {
	Lines []Line
}

// Geometry fixes the page size and margin for one layout call.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// A4 is the fixed page geometry used for every exported document.
var A4 = Geometry{PageWidth: 210, PageHeight: 297, Margin: 15}

// Standard block font sizes shared by the report compilers.
const (
	SizeTitle   = 18.0
	SizeHeading = 14.0
	SizeSubhead = 12.0
	SizeBody    = 10.0
	SizeSmall   = 8.0
)

// TitleBlock builds the leading title block of a report.
func TitleBlock(text string) Block {
	return Block{Text: text, FontSize: SizeTitle, Color: TagHeading}
}

// HeadingBlock builds a section header block.
func HeadingBlock(text string) Block {
	return Block{Text: text, FontSize: SizeHeading, Color: TagAccent}
}

// SubheadBlock builds a sub-section header block.
func SubheadBlock(text string, indent float64) Block {
	return Block{Text: text, FontSize: SizeSubhead, Indent: indent, Color: TagAccent}
}

// BodyBlock builds a regular body text block.
func BodyBlock(text string, indent float64) Block {
	return Block{Text: text, FontSize: SizeBody, Indent: indent, Color: TagDefault}
}

// MutedBlock builds a de-emphasized body block.
func MutedBlock(text string, indent float64) Block {
	return Block{Text: text, FontSize: SizeSmall, Indent: indent, Color: TagMuted}
}
