package tabular

import (
	"testing"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_HeadersStableAcrossEmptiness(t *testing.T) {
	full := domain.Snapshot{
		Meetings: []domain.MeetingRecord{{Title: "Kickoff"}},
		Schedules: []domain.ScheduleRecord{{
			ProjectName: "Relaunch",
			Tasks:       []domain.TaskRecord{{Description: "Design"}},
		}},
		Cards:   []domain.TaskCardRecord{{Title: "Card"}},
		Budgets: []domain.BudgetRecord{{ProjectName: "Relaunch"}},
		Risks: []domain.RiskRecord{{
			ProjectName: "Relaunch",
			Risks:       []domain.Risk{{Description: "Slip"}},
		}},
	}

	for _, kind := range domain.AllReportKinds {
		empty, err := Flatten(kind, domain.Snapshot{})
		require.NoError(t, err)
		filled, err := Flatten(kind, full)
		require.NoError(t, err)

		assert.Equalf(t, filled.Headers, empty.Headers, "%s headers must not depend on input", kind)
		assert.Emptyf(t, empty.Rows, "%s empty input must yield zero rows", kind)
		assert.NotEmptyf(t, filled.Rows, "%s non-empty input must yield rows", kind)

		for _, row := range filled.Rows {
			assert.Len(t, row, len(filled.Headers))
		}
	}
}

func TestFlatten_UnknownKind(t *testing.T) {
	_, err := Flatten(domain.ReportKind("invoices"), domain.Snapshot{})
	assert.Error(t, err)
}

func TestFlattenMeetings_JoinsActionItems(t *testing.T) {
	meetings := []domain.MeetingRecord{{
		Title: "Sprint Review",
		Date:  "2024-05-02",
		ActionItems: []domain.ActionItem{
			{Task: "Update roadmap", Owner: "Dana", DueDate: "2024-05-10"},
			{Task: "Book venue", Owner: "Lee", DueDate: "2024-05-12"},
		},
	}}

	tbl := FlattenMeetings(meetings)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t,
		"Update roadmap (Owner: Dana, Due: 2024-05-10); Book venue (Owner: Lee, Due: 2024-05-12)",
		tbl.Rows[0][6])
}

func TestFlattenSchedules_OneRowPerTask(t *testing.T) {
	schedules := []domain.ScheduleRecord{{
		ProjectName: "Relaunch",
		StartDate:   "2024-01-01",
		EndDate:     "2024-03-31",
		Tasks: []domain.TaskRecord{
			{Description: "Design", Start: "2024-01-01", End: "2024-01-20", Status: domain.TaskCompleted, Assignee: "Mori"},
			{Description: "Build", Start: "2024-01-21", End: "2024-03-01", Status: domain.TaskInProgress, Assignee: "Avery"},
		},
	}}

	tbl := FlattenSchedules(schedules)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Relaunch", tbl.Rows[0][0], "parent scalars repeat on every task row")
	assert.Equal(t, "Relaunch", tbl.Rows[1][0])
	assert.Equal(t, "Design", tbl.Rows[0][3])
	assert.Equal(t, "In Progress", tbl.Rows[1][6])
}

func TestFlattenBudgets_SummaryRowThenItems(t *testing.T) {
	budgets := []domain.BudgetRecord{{
		ProjectName: "Relaunch",
		TotalBudget: 10000,
		Items: []domain.BudgetItem{
			{Category: "Development", Description: "Backend", PlannedValue: 4000, EarnedValue: 3000, ActualCost: 5000},
		},
	}}

	tbl := FlattenBudgets(budgets)

	require.Len(t, tbl.Rows, 2)
	summary, item := tbl.Rows[0], tbl.Rows[1]

	assert.Equal(t, "TOTAL", summary[1])
	assert.Equal(t, "BAC 10000.00", summary[2])
	assert.Equal(t, "-1000.00", summary[6])
	assert.Equal(t, "-2000.00", summary[7])
	assert.Equal(t, "0.75", summary[8])
	assert.Equal(t, "0.60", summary[9])
	assert.Equal(t, "Critical", summary[10])

	assert.Equal(t, "Development", item[1])
	assert.Equal(t, "-1000.00", item[6])
}

func TestFlattenRisks_ComputedLevelColumn(t *testing.T) {
	registers := []domain.RiskRecord{{
		ProjectName: "Relaunch",
		Risks: []domain.Risk{{
			Description: "Vendor slips",
			Probability: domain.RatingHigh,
			Impact:      domain.RatingMedium,
			Status:      domain.RiskOpen,
		}},
	}}

	tbl := FlattenRisks(registers)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "High", tbl.Rows[0][4], "High x Medium scores 6 and derives High")
}

func TestFlattenCards_TagsCommaJoined(t *testing.T) {
	cards := []domain.TaskCardRecord{{
		Title:    "Ship newsletter",
		Priority: domain.RatingMedium,
		Status:   domain.CardReview,
		Tags:     []string{"marketing", "q2"},
	}}

	tbl := FlattenCards(cards)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "marketing, q2", tbl.Rows[0][6])
	assert.Equal(t, "Review", tbl.Rows[0][4])
}

func TestTableWidths_MaxOfHeaderAndCells(t *testing.T) {
	tbl := Table{
		Headers: []string{"ID", "Description"},
		Rows: [][]string{
			{"1234567890", "short"},
			{"1", "x"},
		},
	}

	assert.Equal(t, []int{10, 11}, tbl.Widths())
}
