package textflow

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lineSpacing converts a font size into the fixed per-line cursor advance.
const lineSpacing = 1.2

// blockGap is the vertical gap inserted after every block.
const blockGap = 3.0

// Measurer reports the rendered width of text at a font size, in page
// units. Layout never splits words, so the measurer decides how many fit.
type Measurer func(text string, fontSize float64) float64

// glyphWidthFactor approximates the average glyph advance as a fraction of
// the font size, tuned for the proportional face the document renderer uses.
const glyphWidthFactor = 0.5

// DefaultMeasurer estimates text width from the terminal display width of
// the string. lipgloss.Width counts double-width runes correctly, which
// keeps wrapping stable for non-ASCII attendee and task names.
func DefaultMeasurer(text string, fontSize float64) float64 {
	return float64(lipgloss.Width(text)) * fontSize * glyphWidthFactor
}

// LineHeight returns the vertical cursor advance for a font size.
func LineHeight(fontSize float64) float64 {
	return fontSize * lineSpacing
}

// Layout flows blocks onto pages. Each block is greedily word-wrapped to
// the width left inside the margins after its indent, then emitted line by
// line; when the next line would cross the bottom margin a new page is
// started and the block continues there. Identical inputs always produce
// identical page sequences.
func Layout(blocks []Block, geom Geometry, measure Measurer) []Page {
	if measure == nil {
		measure = DefaultMeasurer
	}

	var pages []Page
	var cur Page
	cursorY := geom.Margin

	flush := func() {
		pages = append(pages, cur)
		cur = Page{}
		cursorY = geom.Margin
	}

	for _, b := range blocks {
		avail := geom.PageWidth - 2*geom.Margin - b.Indent
		lh := LineHeight(b.FontSize)

		for _, text := range Wrap(b.Text, avail, b.FontSize, measure) {
			if cursorY+lh > geom.PageHeight-geom.Margin {
				flush()
			}
			cur.Lines = append(cur.Lines, Line{
				Text:     text,
				X:        geom.Margin + b.Indent,
				Y:        cursorY,
				FontSize: b.FontSize,
				Color:    b.Color,
			})
			cursorY += lh
		}

		cursorY += blockGap
	}

	if len(cur.Lines) > 0 || len(pages) == 0 {
		pages = append(pages, cur)
	}
	return pages
}

// Wrap greedily packs words into lines no wider than avail. Words are never
// split: a single word wider than avail occupies its own line unsplit.
// Empty or whitespace-only text yields one empty line so the block still
// occupies vertical space.
func Wrap(text string, avail, fontSize float64, measure Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate, fontSize) <= avail {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
