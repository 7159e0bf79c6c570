package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/Silvia-9/taskflow-canvas/internal/textflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Meetings: []domain.MeetingRecord{{
			ID:         "m-1",
			Title:      "Sprint Planning",
			Date:       "2024-05-01",
			Time:       "10:00",
			Attendees:  "Dana, Lee, Mori",
			Agenda:     "Plan sprint 12",
			Discussion: "Scope agreed.",
			ActionItems: []domain.ActionItem{
				{Task: "Write migration plan", Owner: "Dana", DueDate: "2024-05-08"},
				{Task: "Review backlog", Owner: "Lee", DueDate: "2024-05-09"},
			},
			NextMeetingDate: "2024-05-15",
		}},
		Schedules: []domain.ScheduleRecord{{
			ID:          "s-1",
			ProjectName: "Website Relaunch",
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-31",
			Tasks: []domain.TaskRecord{
				{Description: "Design", Start: "2024-01-11", End: "2024-01-21", Status: domain.TaskInProgress, Assignee: "Mori"},
			},
		}},
		Cards: []domain.TaskCardRecord{
			{ID: "c-1", Title: "Draft newsletter", Status: domain.CardInProgress, Priority: domain.RatingMedium},
			{ID: "c-2", Title: "Fix invoice bug", Status: domain.CardInProgress, Priority: domain.RatingHigh},
			{ID: "c-3", Title: "Archive Q1 docs", Status: domain.CardDone, Priority: domain.RatingLow, Tags: []string{"ops", "q1"}},
		},
		Budgets: []domain.BudgetRecord{{
			ID:          "b-1",
			ProjectName: "Website Relaunch",
			TotalBudget: 10000,
			Items: []domain.BudgetItem{
				{Category: "Development", Description: "Backend", PlannedValue: 4000, EarnedValue: 3000, ActualCost: 5000},
			},
		}},
		Risks: []domain.RiskRecord{{
			ID:          "r-1",
			ProjectName: "Website Relaunch",
			Risks: []domain.Risk{
				{Description: "Vendor slips", Probability: domain.RatingHigh, Impact: domain.RatingMedium, Status: domain.RiskOpen, Owner: "Lee"},
				{Description: "Scope creep", Probability: domain.RatingLow, Impact: domain.RatingLow, Status: domain.RiskMitigated, Owner: "Dana"},
			},
		}},
	}
}

// blockTexts extracts the text of every block for order assertions.
func blockTexts(blocks []textflow.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Text
	}
	return out
}

func indexOf(texts []string, substr string) int {
	for i, t := range texts {
		if strings.Contains(t, substr) {
			return i
		}
	}
	return -1
}

func TestCompile_AllKindsStartWithTitleAndTimestamp(t *testing.T) {
	snap := testSnapshot()

	for _, kind := range domain.AllReportKinds {
		blocks, err := Compile(kind, snap, testNow)
		require.NoError(t, err)
		require.GreaterOrEqualf(t, len(blocks), 3, "%s report too short", kind)

		assert.Equal(t, kind.Title(), blocks[0].Text)
		assert.Equal(t, textflow.SizeTitle, blocks[0].FontSize)
		assert.Equal(t, "Generated: May 2, 2024 09:30", blocks[1].Text)
	}
}

func TestCompile_UnknownKind(t *testing.T) {
	_, err := Compile(domain.ReportKind("invoices"), domain.Snapshot{}, testNow)
	assert.Error(t, err)
}

func TestCompile_EmptyCollectionsYieldSingleNotice(t *testing.T) {
	for _, kind := range domain.AllReportKinds {
		blocks, err := Compile(kind, domain.Snapshot{}, testNow)
		require.NoError(t, err)

		require.Lenf(t, blocks, 3, "%s: title, timestamp, notice", kind)
		assert.Contains(t, blocks[2].Text, "No ")
	}
}

func TestCompile_IdempotentExceptTimestamp(t *testing.T) {
	snap := testSnapshot()

	for _, kind := range domain.AllReportKinds {
		a, err := Compile(kind, snap, testNow)
		require.NoError(t, err)
		b, err := Compile(kind, snap, testNow.Add(48*time.Hour))
		require.NoError(t, err)

		require.Len(t, b, len(a))
		for i := range a {
			if i == 1 {
				assert.NotEqual(t, a[i].Text, b[i].Text, "timestamp block must differ")
				continue
			}
			assert.Equalf(t, a[i], b[i], "%s block %d changed between compiles", kind, i)
		}
	}
}

func TestCompileMeetings_ActionItemsNumberedInInsertionOrder(t *testing.T) {
	blocks := CompileMeetings(testSnapshot().Meetings, testNow)
	texts := blockTexts(blocks)

	first := indexOf(texts, "1. Write migration plan (Owner: Dana, Due: 2024-05-08)")
	second := indexOf(texts, "2. Review backlog (Owner: Lee, Due: 2024-05-09)")

	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestCompileMeetings_MissingScalarsRenderEmpty(t *testing.T) {
	blocks := CompileMeetings([]domain.MeetingRecord{{Title: "Standup"}}, testNow)
	texts := blockTexts(blocks)

	assert.NotEqual(t, -1, indexOf(texts, "Attendees: "))
	assert.NotEqual(t, -1, indexOf(texts, "Next meeting: "))
}

func TestCompileKanban_GroupsInFixedOrderWithCounts(t *testing.T) {
	blocks := CompileKanban(testSnapshot().Cards, testNow)
	texts := blockTexts(blocks)

	inProgress := indexOf(texts, "In Progress (2)")
	done := indexOf(texts, "Done (1)")

	require.NotEqual(t, -1, inProgress)
	require.NotEqual(t, -1, done)
	assert.Less(t, inProgress, done)

	assert.Equal(t, -1, indexOf(texts, "Not Started ("), "empty groups are skipped")
	assert.Equal(t, -1, indexOf(texts, "Review ("), "empty groups are skipped")

	// Cards keep original order inside a group.
	assert.Less(t, indexOf(texts, "1. Draft newsletter"), indexOf(texts, "2. Fix invoice bug"))
}

func TestCompileBudgets_SummaryBeforeItems(t *testing.T) {
	blocks := CompileBudgets(testSnapshot().Budgets, testNow)
	texts := blockTexts(blocks)

	bac := indexOf(texts, "BAC: 10000.00")
	variances := indexOf(texts, "SV: -1000.00    CV: -2000.00    SPI: 0.75    CPI: 0.60")
	status := indexOf(texts, "Status: Critical    Remaining budget: 5000.00")
	item := indexOf(texts, "1. Development - Backend")

	require.NotEqual(t, -1, bac)
	require.NotEqual(t, -1, variances)
	require.NotEqual(t, -1, status)
	require.NotEqual(t, -1, item)

	assert.Less(t, bac, item, "metrics summary precedes itemized entries")
	assert.Less(t, status, item)

	// Per-item variance line under the item.
	itemVariance := indexOf(texts[item:], "SV: -1000.00")
	assert.NotEqual(t, -1, itemVariance)
}

func TestCompileRisks_AggregatesFirstThenStatusGroups(t *testing.T) {
	blocks := CompileRisks(testSnapshot().Risks, testNow)
	texts := blockTexts(blocks)

	overview := indexOf(texts, "Open: 1    Mitigated: 1    Closed: 0    High priority: 1")
	open := indexOf(texts, "Open (1)")
	mitigated := indexOf(texts, "Mitigated (1)")

	require.NotEqual(t, -1, overview)
	require.NotEqual(t, -1, open)
	require.NotEqual(t, -1, mitigated)

	assert.Less(t, overview, open)
	assert.Less(t, open, mitigated)
	assert.Equal(t, -1, indexOf(texts, "Closed ("), "empty status groups are skipped")
}

func TestCompileSchedules_TasksInAuthoredOrderWithBars(t *testing.T) {
	schedules := []domain.ScheduleRecord{{
		ProjectName: "Relaunch",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-31",
		Tasks: []domain.TaskRecord{
			{Description: "Zeta later task", Start: "2024-01-20", End: "2024-01-30", Status: domain.TaskNotStarted},
			{Description: "Alpha early task", Start: "2024-01-01", End: "2024-01-10", Status: domain.TaskCompleted},
		},
	}}

	blocks := CompileSchedules(schedules, testNow)
	texts := blockTexts(blocks)

	assert.Less(t, indexOf(texts, "1. Zeta later task"), indexOf(texts, "2. Alpha early task"),
		"tasks keep authored order, no regrouping or sorting")

	// Each task is followed by a bar line bounded by pipes.
	barCount := 0
	for _, txt := range texts {
		if strings.HasPrefix(txt, "|") && strings.HasSuffix(txt, "|") {
			barCount++
		}
	}
	assert.Equal(t, 2, barCount)
}

func TestSummary_SameOrderingAsCompiledBlocks(t *testing.T) {
	snap := testSnapshot()

	s, err := Summary(domain.KindBudgets, snap, testNow)
	require.NoError(t, err)

	blocks, err := Compile(domain.KindBudgets, snap, testNow)
	require.NoError(t, err)

	offset := 0
	for _, b := range blocks {
		pos := strings.Index(s[offset:], b.Text)
		require.NotEqualf(t, -1, pos, "summary missing block text %q in order", b.Text)
		offset += pos + len(b.Text)
	}
}

func TestSummary_NoPagination(t *testing.T) {
	s, err := Summary(domain.KindMeetings, testSnapshot(), testNow)
	require.NoError(t, err)

	assert.Contains(t, s, "Meeting Minutes Report")
	assert.Contains(t, s, "Sprint Planning")
	assert.NotContains(t, s, "\f")
}
