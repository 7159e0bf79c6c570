package importer

import (
	"fmt"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
)

// Convert validates a parsed workspace and produces the domain collections,
// preserving authored order everywhere. Enum fields must use their canonical
// values; empty status and rating fields fall back to the mildest variant.
func Convert(ws Workspace) (domain.Snapshot, error) {
	var snap domain.Snapshot

	for i, m := range ws.Meetings {
		if m.Title == "" {
			return domain.Snapshot{}, fmt.Errorf("meetings[%d]: title is required", i)
		}
		items := make([]domain.ActionItem, 0, len(m.ActionItems))
		for _, it := range m.ActionItems {
			items = append(items, domain.ActionItem{Task: it.Task, Owner: it.Owner, DueDate: it.DueDate})
		}
		snap.Meetings = append(snap.Meetings, domain.MeetingRecord{
			Title:           m.Title,
			Date:            m.Date,
			Time:            m.Time,
			Attendees:       m.Attendees,
			Agenda:          m.Agenda,
			Discussion:      m.Discussion,
			ActionItems:     items,
			NextMeetingDate: m.NextMeetingDate,
		})
	}

	for i, s := range ws.Schedules {
		if s.Project == "" {
			return domain.Snapshot{}, fmt.Errorf("schedules[%d]: project is required", i)
		}
		rec := domain.ScheduleRecord{
			ProjectName: s.Project,
			StartDate:   s.StartDate,
			EndDate:     s.EndDate,
		}
		for j, task := range s.Tasks {
			status, err := taskStatus(task.Status)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("schedules[%d].tasks[%d]: %w", i, j, err)
			}
			rec.Tasks = append(rec.Tasks, domain.TaskRecord{
				Description: task.Description,
				Start:       task.Start,
				End:         task.End,
				Status:      status,
				Assignee:    task.Assignee,
			})
		}
		snap.Schedules = append(snap.Schedules, rec)
	}

	for i, c := range ws.Cards {
		if c.Title == "" {
			return domain.Snapshot{}, fmt.Errorf("cards[%d]: title is required", i)
		}
		priority, err := riskRating("priority", c.Priority)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("cards[%d]: %w", i, err)
		}
		status, err := cardStatus(c.Status)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("cards[%d]: %w", i, err)
		}
		snap.Cards = append(snap.Cards, domain.TaskCardRecord{
			Title:       c.Title,
			Description: c.Description,
			Assignee:    c.Assignee,
			Priority:    priority,
			Status:      status,
			DueDate:     c.DueDate,
			Tags:        c.Tags,
		})
	}

	for i, b := range ws.Budgets {
		if b.Project == "" {
			return domain.Snapshot{}, fmt.Errorf("budgets[%d]: project is required", i)
		}
		if b.TotalBudget < 0 {
			return domain.Snapshot{}, fmt.Errorf("budgets[%d]: total_budget must not be negative", i)
		}
		rec := domain.BudgetRecord{ProjectName: b.Project, TotalBudget: b.TotalBudget}
		for j, it := range b.Items {
			if it.PlannedValue < 0 || it.ActualCost < 0 || it.EarnedValue < 0 {
				return domain.Snapshot{}, fmt.Errorf("budgets[%d].items[%d]: monetary fields must not be negative", i, j)
			}
			rec.Items = append(rec.Items, domain.BudgetItem{
				Category:     it.Category,
				Description:  it.Description,
				PlannedValue: it.PlannedValue,
				ActualCost:   it.ActualCost,
				EarnedValue:  it.EarnedValue,
				Notes:        it.Notes,
			})
		}
		snap.Budgets = append(snap.Budgets, rec)
	}

	for i, r := range ws.Risks {
		if r.Project == "" {
			return domain.Snapshot{}, fmt.Errorf("risks[%d]: project is required", i)
		}
		rec := domain.RiskRecord{ProjectName: r.Project}
		for j, risk := range r.Risks {
			probability, err := riskRating("probability", risk.Probability)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("risks[%d].risks[%d]: %w", i, j, err)
			}
			impact, err := riskRating("impact", risk.Impact)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("risks[%d].risks[%d]: %w", i, j, err)
			}
			status, err := riskStatus(risk.Status)
			if err != nil {
				return domain.Snapshot{}, fmt.Errorf("risks[%d].risks[%d]: %w", i, j, err)
			}
			rec.Risks = append(rec.Risks, domain.Risk{
				Description: risk.Description,
				Probability: probability,
				Impact:      impact,
				Category:    risk.Category,
				Mitigation:  risk.Mitigation,
				Owner:       risk.Owner,
				Status:      status,
			})
		}
		snap.Risks = append(snap.Risks, rec)
	}

	return snap, nil
}

// Load parses, validates and converts a workspace file in one step.
func Load(path string) (domain.Snapshot, error) {
	ws, err := ParseFile(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return Convert(ws)
}

func taskStatus(s string) (domain.TaskStatus, error) {
	if s == "" {
		return domain.TaskNotStarted, nil
	}
	if !domain.ValidTaskStatuses[s] {
		return "", fmt.Errorf("unknown task status %q", s)
	}
	return domain.TaskStatus(s), nil
}

func cardStatus(s string) (domain.CardStatus, error) {
	if s == "" {
		return domain.CardNotStarted, nil
	}
	if !domain.ValidCardStatuses[s] {
		return "", fmt.Errorf("unknown card status %q", s)
	}
	return domain.CardStatus(s), nil
}

func riskStatus(s string) (domain.RiskStatus, error) {
	if s == "" {
		return domain.RiskOpen, nil
	}
	if !domain.ValidRiskStatuses[s] {
		return "", fmt.Errorf("unknown risk status %q", s)
	}
	return domain.RiskStatus(s), nil
}

func riskRating(field, s string) (domain.RiskRating, error) {
	if s == "" {
		return domain.RatingLow, nil
	}
	if !domain.ValidRiskRatings[s] {
		return "", fmt.Errorf("unknown %s %q", field, s)
	}
	return domain.RiskRating(s), nil
}
