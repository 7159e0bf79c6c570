// Package service orchestrates compiles and the handoff to the rendering
// and serialization collaborators. Data-quality problems are recovered
// inside the engines; only collaborator availability fails a call, and it
// fails the whole call before any output is written.
package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/export"
	"github.com/Silvia-9/taskflow-canvas/internal/report"
	"github.com/Silvia-9/taskflow-canvas/internal/tabular"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// ErrNoPageWriter reports a missing page-emission collaborator.
var ErrNoPageWriter = errors.New("document renderer is not available")

// ErrNoWorkbookWriter reports a missing workbook-writer collaborator.
var ErrNoWorkbookWriter = errors.New("workbook writer is not available")

// ReportService compiles collections and hands finished instruction
// sequences to the configured collaborators.
type ReportService struct {
	pages    export.PageWriter
	workbook export.WorkbookWriter
	outDir   string
	now      func() time.Time
}

// NewReportService wires the collaborators. Either writer may be nil, in
// which case the corresponding export fails with a terminal error.
func NewReportService(pages export.PageWriter, workbook export.WorkbookWriter, outDir string, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{pages: pages, workbook: workbook, outDir: outDir, now: now}
}

// ExportDocument compiles the collection into pages and hands the complete
// sequence to the page writer once. It returns the written path.
func (s *ReportService) ExportDocument(kind domain.ReportKind, snap domain.Snapshot) (string, error) {
	if s.pages == nil {
		return "", fmt.Errorf("exporting %s document: %w", kind, ErrNoPageWriter)
	}

	now := s.now()
	blocks, err := report.Compile(kind, snap, now)
	if err != nil {
		return "", err
	}
	laid := textflow.Layout(blocks, textflow.A4, textflow.DefaultMeasurer)

	path := filepath.Join(s.outDir, export.Filename(kind, now, s.pages.Ext()))
	if err := s.pages.WritePages(path, textflow.A4, laid); err != nil {
		return "", fmt.Errorf("writing %s document: %w", kind, err)
	}
	return path, nil
}

// ExportWorkbook flattens the collection and hands the row set to the
// workbook writer once. It returns the written path.
func (s *ReportService) ExportWorkbook(kind domain.ReportKind, snap domain.Snapshot) (string, error) {
	if s.workbook == nil {
		return "", fmt.Errorf("exporting %s workbook: %w", kind, ErrNoWorkbookWriter)
	}

	table, err := tabular.Flatten(kind, snap)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.outDir, export.Filename(kind, s.now(), s.workbook.Ext()))
	if err := s.workbook.WriteTable(path, kind.FileStem(), table); err != nil {
		return "", fmt.Errorf("writing %s workbook: %w", kind, err)
	}
	return path, nil
}

// Summary builds the plain-text handoff string for message clients.
func (s *ReportService) Summary(kind domain.ReportKind, snap domain.Snapshot) (string, error) {
	return report.Summary(kind, snap, s.now())
}
