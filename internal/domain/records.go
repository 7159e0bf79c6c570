package domain

// The five record kinds are plain value structs. The surrounding CRUD layer
// assigns IDs at creation; the compile/flatten/geometry core treats every
// record as an immutable snapshot and never mutates one.

// ActionItem is a single follow-up captured in meeting minutes.
// Order within a meeting is insertion order and is preserved everywhere.
type ActionItem struct {
	Task    string
	Owner   string
	DueDate string
}

// MeetingRecord holds one set of meeting minutes.
type MeetingRecord struct {
	ID              string
	Title           string
	Date            string
	Time            string
	Attendees       string
	Agenda          string
	Discussion      string
	ActionItems     []ActionItem
	NextMeetingDate string
}

// TaskRecord is a single task on a project schedule. Task dates may fall
// outside the project bounds; geometry clamps rather than faulting.
type TaskRecord struct {
	Description string
	Start       string
	End         string
	Status      TaskStatus
	Assignee    string
}

// ScheduleRecord is one project schedule with its ordered task list.
type ScheduleRecord struct {
	ID          string
	ProjectName string
	StartDate   string
	EndDate     string
	Tasks       []TaskRecord
}

// BudgetItem is one budget line with its EVM measurement fields.
// Monetary fields may be zero, never negative (enforced upstream).
type BudgetItem struct {
	Category     string
	Description  string
	PlannedValue float64
	ActualCost   float64
	EarnedValue  float64
	Notes        string
}

// BudgetRecord is one project budget. TotalBudget is the BAC.
type BudgetRecord struct {
	ID          string
	ProjectName string
	TotalBudget float64
	Items       []BudgetItem
}

// Risk is a single entry in a risk register. The risk level is derived
// from Probability and Impact and never stored.
type Risk struct {
	Description string
	Probability RiskRating
	Impact      RiskRating
	Category    string
	Mitigation  string
	Owner       string
	Status      RiskStatus
}

// RiskRecord is one project risk register.
type RiskRecord struct {
	ID          string
	ProjectName string
	Risks       []Risk
}

// TaskCardRecord is one kanban card. Tags keep insertion order.
type TaskCardRecord struct {
	ID          string
	Title       string
	Description string
	Assignee    string
	Priority    RiskRating
	Status      CardStatus
	DueDate     string
	Tags        []string
}

// Snapshot bundles point-in-time copies of all five collections for one
// compile call. Slices inside a snapshot must not alias live store state.
type Snapshot struct {
	Meetings  []MeetingRecord
	Schedules []ScheduleRecord
	Cards     []TaskCardRecord
	Budgets   []BudgetRecord
	Risks     []RiskRecord
}
