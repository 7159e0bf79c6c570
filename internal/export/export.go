// Package export defines the rendering and serialization collaborators the
// core hands its finished instruction sequences to, plus the concrete
// writers wired in by cmd. The core never encodes file bytes itself; a
// compile call fails as a whole when its collaborator is missing.
package export

import (
	"fmt"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/tabular"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// PageWriter renders a full page sequence into one document file.
type PageWriter interface {
	// WritePages receives the complete page sequence at once; partial
	// delivery never happens.
	WritePages(path string, geom textflow.Geometry, pages []textflow.Page) error
	// Ext is the file extension including the dot.
	Ext() string
}

// WorkbookWriter serializes one flattened table into a spreadsheet file.
type WorkbookWriter interface {
	WriteTable(path, sheet string, table tabular.Table) error
	Ext() string
}

// Filename builds the output name <ReportKindStem>_<ISO-date><ext>.
func Filename(kind domain.ReportKind, date time.Time, ext string) string {
	return fmt.Sprintf("%s_%s%s", kind.FileStem(), domain.FormatDate(date), ext)
}
