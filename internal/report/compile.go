// Package report turns collection snapshots into ordered styled block
// sequences. One compiler per entity kind; all of them are pure: the
// generation timestamp is a parameter, never read inside.
package report

import (
	"fmt"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
)

// Indent steps shared by all compilers, in page units.
const (
	indentSection = 4.0
	indentDetail  = 8.0
)

// Compile dispatches to the compiler for the given report kind.
func Compile(kind domain.ReportKind, snap domain.Snapshot, now time.Time) ([]textflow.Block, error) {
	switch kind {
	case domain.KindMeetings:
		return CompileMeetings(snap.Meetings, now), nil
	case domain.KindSchedules:
		return CompileSchedules(snap.Schedules, now), nil
	case domain.KindKanban:
		return CompileKanban(snap.Cards, now), nil
	case domain.KindBudgets:
		return CompileBudgets(snap.Budgets, now), nil
	case domain.KindRisks:
		return CompileRisks(snap.Risks, now), nil
	default:
		return nil, fmt.Errorf("compile: unknown report kind %q", kind)
	}
}

// header emits the leading title and generation-timestamp blocks common to
// every report.
func header(kind domain.ReportKind, now time.Time) []textflow.Block {
	return []textflow.Block{
		textflow.TitleBlock(kind.Title()),
		textflow.MutedBlock("Generated: "+now.Format("Jan 2, 2006 15:04"), 0),
	}
}

// emptyNotice is the single informational block emitted for an empty
// collection. An empty collection is not a fault.
func emptyNotice(what string) textflow.Block {
	return textflow.BodyBlock(fmt.Sprintf("No %s recorded yet.", what), 0)
}
