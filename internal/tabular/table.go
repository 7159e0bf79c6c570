// Package tabular flattens nested record collections into fixed-column row
// sets for the workbook-writer collaborator. Flattening is pure append-only
// accumulation: headers are constant per kind and identical for empty and
// non-empty input.
package tabular

import "github.com/charmbracelet/lipgloss"

// Table is an ordered header row plus data rows. Every row has exactly
// len(Headers) cells in header order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Widths returns the display width of each column: the maximum of the
// header width and every cell width in that column. Widths are measured as
// rendered width, not byte length, so wide runes count properly.
func (t Table) Widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
