package domain

// ReportKind selects which collection a compile, flatten or summary call
// operates on. Dispatch is always over this enum, never over filenames.
type ReportKind string

const (
	KindMeetings  ReportKind = "meetings"
	KindSchedules ReportKind = "schedules"
	KindKanban    ReportKind = "kanban"
	KindBudgets   ReportKind = "budgets"
	KindRisks     ReportKind = "risks"
)

// AllReportKinds lists every report kind in presentation order.
var AllReportKinds = []ReportKind{
	KindMeetings, KindSchedules, KindKanban, KindBudgets, KindRisks,
}

// Title returns the human-readable report title for the kind.
func (k ReportKind) Title() string {
	switch k {
	case KindMeetings:
		return "Meeting Minutes Report"
	case KindSchedules:
		return "Project Schedule Report"
	case KindKanban:
		return "Kanban Board Report"
	case KindBudgets:
		return "Budget Report"
	case KindRisks:
		return "Risk Register Report"
	default:
		return string(k)
	}
}

// FileStem returns the filename stem used for exported documents and sheets.
func (k ReportKind) FileStem() string {
	switch k {
	case KindMeetings:
		return "MeetingMinutes"
	case KindSchedules:
		return "ProjectSchedule"
	case KindKanban:
		return "KanbanBoard"
	case KindBudgets:
		return "BudgetReport"
	case KindRisks:
		return "RiskRegister"
	default:
		return string(k)
	}
}

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

// AllTaskStatuses lists the schedule task statuses in display order.
var AllTaskStatuses = []TaskStatus{
	TaskNotStarted, TaskInProgress, TaskCompleted, TaskBlocked,
}

// Label returns the display label for the status.
func (s TaskStatus) Label() string {
	switch s {
	case TaskNotStarted:
		return "Not Started"
	case TaskInProgress:
		return "In Progress"
	case TaskCompleted:
		return "Completed"
	case TaskBlocked:
		return "Blocked"
	default:
		return string(s)
	}
}

type CardStatus string

const (
	CardNotStarted CardStatus = "not_started"
	CardInProgress CardStatus = "in_progress"
	CardReview     CardStatus = "review"
	CardDone       CardStatus = "done"
)

// AllCardStatuses is the fixed grouping order for kanban reports.
var AllCardStatuses = []CardStatus{
	CardNotStarted, CardInProgress, CardReview, CardDone,
}

func (s CardStatus) Label() string {
	switch s {
	case CardNotStarted:
		return "Not Started"
	case CardInProgress:
		return "In Progress"
	case CardReview:
		return "Review"
	case CardDone:
		return "Done"
	default:
		return string(s)
	}
}

// RiskRating grades probability, impact and the derived risk level.
type RiskRating string

const (
	RatingLow    RiskRating = "low"
	RatingMedium RiskRating = "medium"
	RatingHigh   RiskRating = "high"
)

// AllRiskRatings lists ratings from least to most severe.
var AllRiskRatings = []RiskRating{RatingLow, RatingMedium, RatingHigh}

func (r RiskRating) Label() string {
	switch r {
	case RatingLow:
		return "Low"
	case RatingMedium:
		return "Medium"
	case RatingHigh:
		return "High"
	default:
		return string(r)
	}
}

type RiskStatus string

const (
	RiskOpen      RiskStatus = "open"
	RiskMitigated RiskStatus = "mitigated"
	RiskClosed    RiskStatus = "closed"
)

// AllRiskStatuses is the fixed grouping order for risk reports.
var AllRiskStatuses = []RiskStatus{RiskOpen, RiskMitigated, RiskClosed}

func (s RiskStatus) Label() string {
	switch s {
	case RiskOpen:
		return "Open"
	case RiskMitigated:
		return "Mitigated"
	case RiskClosed:
		return "Closed"
	default:
		return string(s)
	}
}

// BudgetHealth classifies a budget from its schedule and cost indices.
type BudgetHealth string

const (
	BudgetOnTrack        BudgetHealth = "on_track"
	BudgetBehindSchedule BudgetHealth = "behind_schedule"
	BudgetOverBudget     BudgetHealth = "over_budget"
	BudgetCritical       BudgetHealth = "critical"
)

func (h BudgetHealth) Label() string {
	switch h {
	case BudgetOnTrack:
		return "On Track"
	case BudgetBehindSchedule:
		return "Behind Schedule"
	case BudgetOverBudget:
		return "Over Budget"
	case BudgetCritical:
		return "Critical"
	default:
		return string(h)
	}
}

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	string(TaskNotStarted): true, string(TaskInProgress): true,
	string(TaskCompleted): true, string(TaskBlocked): true,
}

// ValidCardStatuses is the canonical set of accepted card status strings.
var ValidCardStatuses = map[string]bool{
	string(CardNotStarted): true, string(CardInProgress): true,
	string(CardReview): true, string(CardDone): true,
}

// ValidRiskRatings is the canonical set of accepted probability/impact strings.
var ValidRiskRatings = map[string]bool{
	string(RatingLow): true, string(RatingMedium): true, string(RatingHigh): true,
}

// ValidRiskStatuses is the canonical set of accepted risk status strings.
var ValidRiskStatuses = map[string]bool{
	string(RiskOpen): true, string(RiskMitigated): true, string(RiskClosed): true,
}
