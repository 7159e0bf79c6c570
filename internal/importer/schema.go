// Package importer loads a workspace file into domain collections so the
// CLI has data to compile. It parses and validates input; it never writes
// anything back.
package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Workspace is the top-level YAML structure of an input file.
type Workspace struct {
	Meetings  []MeetingImport  `yaml:"meetings,omitempty"`
	Schedules []ScheduleImport `yaml:"schedules,omitempty"`
	Cards     []CardImport     `yaml:"cards,omitempty"`
	Budgets   []BudgetImport   `yaml:"budgets,omitempty"`
	Risks     []RiskSetImport  `yaml:"risks,omitempty"`
}

type ActionItemImport struct {
	Task    string `yaml:"task"`
	Owner   string `yaml:"owner,omitempty"`
	DueDate string `yaml:"due_date,omitempty"`
}

type MeetingImport struct {
	Title           string             `yaml:"title"`
	Date            string             `yaml:"date,omitempty"`
	Time            string             `yaml:"time,omitempty"`
	Attendees       string             `yaml:"attendees,omitempty"`
	Agenda          string             `yaml:"agenda,omitempty"`
	Discussion      string             `yaml:"discussion,omitempty"`
	ActionItems     []ActionItemImport `yaml:"action_items,omitempty"`
	NextMeetingDate string             `yaml:"next_meeting,omitempty"`
}

type TaskImport struct {
	Description string `yaml:"description"`
	Start       string `yaml:"start,omitempty"`
	End         string `yaml:"end,omitempty"`
	Status      string `yaml:"status,omitempty"`
	Assignee    string `yaml:"assignee,omitempty"`
}

type ScheduleImport struct {
	Project   string       `yaml:"project"`
	StartDate string       `yaml:"start_date,omitempty"`
	EndDate   string       `yaml:"end_date,omitempty"`
	Tasks     []TaskImport `yaml:"tasks,omitempty"`
}

type CardImport struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Assignee    string   `yaml:"assignee,omitempty"`
	Priority    string   `yaml:"priority,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	DueDate     string   `yaml:"due_date,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

type BudgetItemImport struct {
	Category     string  `yaml:"category"`
	Description  string  `yaml:"description,omitempty"`
	PlannedValue float64 `yaml:"planned_value,omitempty"`
	ActualCost   float64 `yaml:"actual_cost,omitempty"`
	EarnedValue  float64 `yaml:"earned_value,omitempty"`
	Notes        string  `yaml:"notes,omitempty"`
}

type BudgetImport struct {
	Project     string             `yaml:"project"`
	TotalBudget float64            `yaml:"total_budget,omitempty"`
	Items       []BudgetItemImport `yaml:"items,omitempty"`
}

type RiskImport struct {
	Description string `yaml:"description"`
	Probability string `yaml:"probability,omitempty"`
	Impact      string `yaml:"impact,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Mitigation  string `yaml:"mitigation,omitempty"`
	Owner       string `yaml:"owner,omitempty"`
	Status      string `yaml:"status,omitempty"`
}

type RiskSetImport struct {
	Project string       `yaml:"project"`
	Risks   []RiskImport `yaml:"risks,omitempty"`
}

// Parse decodes a workspace document. Unknown fields are rejected so typos
// in hand-written files surface immediately.
func Parse(data []byte) (Workspace, error) {
	var ws Workspace
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ws); err != nil {
		return Workspace{}, fmt.Errorf("parsing workspace: %w", err)
	}
	return ws, nil
}

// ParseFile reads and decodes a workspace file.
func ParseFile(path string) (Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Workspace{}, fmt.Errorf("reading workspace: %w", err)
	}
	return Parse(data)
}
