package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWorkspace = `
meetings:
  - title: Sprint Planning
    date: "2024-05-01"
    time: "10:00"
    attendees: Dana, Lee
    action_items:
      - task: Write migration plan
        owner: Dana
        due_date: "2024-05-08"
schedules:
  - project: Website Relaunch
    start_date: "2024-01-01"
    end_date: "2024-01-31"
    tasks:
      - description: Design
        start: "2024-01-01"
        end: "2024-01-10"
        status: completed
        assignee: Mori
      - description: Build
        start: "2024-01-11"
        end: "2024-01-31"
        status: in_progress
cards:
  - title: Draft newsletter
    priority: medium
    status: review
    tags: [marketing, q2]
budgets:
  - project: Website Relaunch
    total_budget: 10000
    items:
      - category: Development
        planned_value: 4000
        earned_value: 3000
        actual_cost: 5000
risks:
  - project: Website Relaunch
    risks:
      - description: Vendor slips
        probability: high
        impact: medium
        status: open
`

func TestLoad_SampleWorkspace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleWorkspace), 0644))

	snap, err := Load(path)
	require.NoError(t, err)

	require.Len(t, snap.Meetings, 1)
	assert.Equal(t, "Sprint Planning", snap.Meetings[0].Title)
	require.Len(t, snap.Meetings[0].ActionItems, 1)

	require.Len(t, snap.Schedules, 1)
	require.Len(t, snap.Schedules[0].Tasks, 2)
	assert.Equal(t, domain.TaskCompleted, snap.Schedules[0].Tasks[0].Status)
	assert.Equal(t, domain.TaskInProgress, snap.Schedules[0].Tasks[1].Status)

	require.Len(t, snap.Cards, 1)
	assert.Equal(t, domain.CardReview, snap.Cards[0].Status)
	assert.Equal(t, []string{"marketing", "q2"}, snap.Cards[0].Tags)

	require.Len(t, snap.Budgets, 1)
	assert.Equal(t, 10000.0, snap.Budgets[0].TotalBudget)

	require.Len(t, snap.Risks, 1)
	assert.Equal(t, domain.RatingHigh, snap.Risks[0].Risks[0].Probability)
}

func TestConvert_DefaultsForEmptyEnums(t *testing.T) {
	snap, err := Convert(Workspace{
		Schedules: []ScheduleImport{{Project: "P", Tasks: []TaskImport{{Description: "T"}}}},
		Cards:     []CardImport{{Title: "C"}},
		Risks:     []RiskSetImport{{Project: "P", Risks: []RiskImport{{Description: "R"}}}},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskNotStarted, snap.Schedules[0].Tasks[0].Status)
	assert.Equal(t, domain.CardNotStarted, snap.Cards[0].Status)
	assert.Equal(t, domain.RatingLow, snap.Cards[0].Priority)
	assert.Equal(t, domain.RiskOpen, snap.Risks[0].Risks[0].Status)
}

func TestConvert_RejectsUnknownEnums(t *testing.T) {
	_, err := Convert(Workspace{
		Schedules: []ScheduleImport{{Project: "P", Tasks: []TaskImport{{Description: "T", Status: "paused"}}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown task status "paused"`)
	assert.Contains(t, err.Error(), "schedules[0].tasks[0]")

	_, err = Convert(Workspace{
		Risks: []RiskSetImport{{Project: "P", Risks: []RiskImport{{Description: "R", Impact: "severe"}}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown impact "severe"`)
}

func TestConvert_RejectsNegativeMoney(t *testing.T) {
	_, err := Convert(Workspace{
		Budgets: []BudgetImport{{Project: "P", Items: []BudgetItemImport{{Category: "Dev", PlannedValue: -5}}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("meetings:\n  - title: X\n    chairperson: Y\n"))
	assert.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := Parse([]byte(""))
	assert.Error(t, err, "an empty stream has no document to decode")
}
