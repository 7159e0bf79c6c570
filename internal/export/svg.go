package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// svgScale converts page units to SVG user units.
const svgScale = 3.0

// pageGap is the vertical gap between stacked pages in page units.
const pageGap = 10.0

// tagColors maps the closed color-tag set to document colors.
var tagColors = map[textflow.ColorTag]string{
	textflow.TagDefault: "#282828",
	textflow.TagHeading: "#af3a03",
	textflow.TagAccent:  "#076678",
	textflow.TagMuted:   "#928374",
	textflow.TagGood:    "#79740e",
	textflow.TagWarn:    "#b57614",
	textflow.TagBad:     "#9d0006",
}

// SVGWriter renders paginated line instructions into a single SVG document
// with pages stacked vertically.
type SVGWriter struct{}

func NewSVGWriter() *SVGWriter { return &SVGWriter{} }

func (w *SVGWriter) Ext() string { return ".svg" }

// WritePages serializes the full page sequence to path in one shot.
func (w *SVGWriter) WritePages(path string, geom textflow.Geometry, pages []textflow.Page) error {
	return os.WriteFile(path, []byte(w.Render(geom, pages)), 0644)
}

// Render builds the SVG text for a page sequence.
func (w *SVGWriter) Render(geom textflow.Geometry, pages []textflow.Page) string {
	width := geom.PageWidth * svgScale
	totalHeight := (geom.PageHeight*float64(len(pages)) + pageGap*float64(len(pages)-1)) * svgScale
	if len(pages) == 0 {
		totalHeight = 0
	}

	var svg strings.Builder
	svg.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	svg.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, totalHeight, width, totalHeight))

	for i, page := range pages {
		offsetY := float64(i) * (geom.PageHeight + pageGap) * svgScale
		svg.WriteString(fmt.Sprintf(`  <g transform="translate(0,%.1f)">`+"\n", offsetY))
		svg.WriteString(fmt.Sprintf(
			`    <rect x="0" y="0" width="%.0f" height="%.0f" fill="#fbf1c7" stroke="#928374"/>`+"\n",
			width, geom.PageHeight*svgScale))

		for _, line := range page.Lines {
			if line.Text == "" {
				continue
			}
			color, ok := tagColors[line.Color]
			if !ok {
				color = tagColors[textflow.TagDefault]
			}
			// Y is the top of the line; shift down by the font size so the
			// text baseline sits inside its slot.
			svg.WriteString(fmt.Sprintf(
				`    <text x="%.1f" y="%.1f" font-family="Helvetica, sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
				line.X*svgScale, (line.Y+line.FontSize)*svgScale, line.FontSize*svgScale, color, escapeXML(line.Text)))
		}

		svg.WriteString("  </g>\n")
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// escapeXML escapes the five XML special characters in text content.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
