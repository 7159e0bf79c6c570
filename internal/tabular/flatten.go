package tabular

import (
	"fmt"
	"strings"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/metrics"
)

// Flatten dispatches to the flattener for the given report kind.
func Flatten(kind domain.ReportKind, snap domain.Snapshot) (Table, error) {
	switch kind {
	case domain.KindMeetings:
		return FlattenMeetings(snap.Meetings), nil
	case domain.KindSchedules:
		return FlattenSchedules(snap.Schedules), nil
	case domain.KindKanban:
		return FlattenCards(snap.Cards), nil
	case domain.KindBudgets:
		return FlattenBudgets(snap.Budgets), nil
	case domain.KindRisks:
		return FlattenRisks(snap.Risks), nil
	default:
		return Table{}, fmt.Errorf("flatten: unknown report kind %q", kind)
	}
}

var meetingHeaders = []string{
	"Title", "Date", "Time", "Attendees", "Agenda", "Discussion",
	"Action Items", "Next Meeting",
}

// FlattenMeetings emits one row per meeting. Action items are joined into a
// single delimited cell on the meeting's sole row.
func FlattenMeetings(meetings []domain.MeetingRecord) Table {
	t := Table{Headers: meetingHeaders}
	for _, m := range meetings {
		t.Rows = append(t.Rows, []string{
			m.Title, m.Date, m.Time, m.Attendees, m.Agenda, m.Discussion,
			JoinActionItems(m.ActionItems), m.NextMeetingDate,
		})
	}
	return t
}

// JoinActionItems renders an ordered action-item list as a single cell,
// "task (Owner: x, Due: y)" entries separated by "; ".
func JoinActionItems(items []domain.ActionItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (Owner: %s, Due: %s)", it.Task, it.Owner, it.DueDate))
	}
	return strings.Join(parts, "; ")
}

var scheduleHeaders = []string{
	"Project", "Project Start", "Project End",
	"Task", "Task Start", "Task End", "Status", "Assignee",
}

// FlattenSchedules emits one row per task with the parent project scalars
// repeated. A schedule with no tasks contributes no rows.
func FlattenSchedules(schedules []domain.ScheduleRecord) Table {
	t := Table{Headers: scheduleHeaders}
	for _, s := range schedules {
		for _, task := range s.Tasks {
			t.Rows = append(t.Rows, []string{
				s.ProjectName, s.StartDate, s.EndDate,
				task.Description, task.Start, task.End,
				task.Status.Label(), task.Assignee,
			})
		}
	}
	return t
}

var cardHeaders = []string{
	"Title", "Description", "Assignee", "Priority", "Status", "Due Date", "Tags",
}

// FlattenCards emits one row per kanban card with tags comma-joined.
func FlattenCards(cards []domain.TaskCardRecord) Table {
	t := Table{Headers: cardHeaders}
	for _, c := range cards {
		t.Rows = append(t.Rows, []string{
			c.Title, c.Description, c.Assignee,
			c.Priority.Label(), c.Status.Label(), c.DueDate,
			strings.Join(c.Tags, ", "),
		})
	}
	return t
}

var budgetHeaders = []string{
	"Project", "Category", "Description",
	"Planned Value", "Earned Value", "Actual Cost",
	"SV", "CV", "SPI", "CPI", "Status", "Notes",
}

// FlattenBudgets emits one summary row per project followed by one row per
// budget item carrying its own variance figures.
func FlattenBudgets(budgets []domain.BudgetRecord) Table {
	t := Table{Headers: budgetHeaders}
	for _, b := range budgets {
		total := metrics.ComputeBudget(b.Items)
		t.Rows = append(t.Rows, []string{
			b.ProjectName, "TOTAL", fmt.Sprintf("BAC %s", Money(b.TotalBudget)),
			Money(total.PV), Money(total.EV), Money(total.AC),
			Money(total.SV), Money(total.CV),
			Index(total.SPI), Index(total.CPI),
			total.Health.Label(), "",
		})
		for _, it := range b.Items {
			v := metrics.ItemVariance(it)
			t.Rows = append(t.Rows, []string{
				b.ProjectName, it.Category, it.Description,
				Money(it.PlannedValue), Money(it.EarnedValue), Money(it.ActualCost),
				Money(v.SV), Money(v.CV),
				Index(v.SPI), Index(v.CPI),
				v.Health.Label(), it.Notes,
			})
		}
	}
	return t
}

var riskHeaders = []string{
	"Project", "Description", "Probability", "Impact", "Risk Level",
	"Category", "Mitigation", "Owner", "Status",
}

// FlattenRisks emits one row per risk with the derived risk level column.
func FlattenRisks(registers []domain.RiskRecord) Table {
	t := Table{Headers: riskHeaders}
	for _, r := range registers {
		for _, risk := range r.Risks {
			level := metrics.RiskLevel(risk.Probability, risk.Impact)
			t.Rows = append(t.Rows, []string{
				r.ProjectName, risk.Description,
				risk.Probability.Label(), risk.Impact.Label(), level.Label(),
				risk.Category, risk.Mitigation, risk.Owner, risk.Status.Label(),
			})
		}
	}
	return t
}

// Money renders a monetary amount with two decimals.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Index renders a performance index with two decimals.
func Index(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
