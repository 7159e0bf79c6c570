package report

import (
	"strings"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// Summary assembles the plain-text handoff string for a collection: the
// same blocks the document compiler produces, rendered without pagination.
// Message clients get exactly the grouping, ordering and metrics of the
// paginated report.
func Summary(kind domain.ReportKind, snap domain.Snapshot, now time.Time) (string, error) {
	blocks, err := Compile(kind, snap, now)
	if err != nil {
		return "", err
	}
	return RenderPlain(blocks), nil
}

// RenderPlain flattens a block sequence into plain text. Title and heading
// blocks are underlined; indents become leading spaces.
func RenderPlain(blocks []textflow.Block) string {
	var b strings.Builder

	for _, blk := range blocks {
		pad := strings.Repeat(" ", int(blk.Indent/indentSection)*2)
		b.WriteString(pad + blk.Text + "\n")

		switch blk.FontSize {
		case textflow.SizeTitle:
			b.WriteString(strings.Repeat("=", textWidth(blk.Text)) + "\n")
		case textflow.SizeHeading:
			b.WriteString(pad + strings.Repeat("-", textWidth(blk.Text)) + "\n")
		}
	}

	return b.String()
}

func textWidth(s string) int {
	n := len([]rune(s))
	if n < 1 {
		n = 1
	}
	return n
}
