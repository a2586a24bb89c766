package domain

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
)

// Rank returns a sort priority (lower = more urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	default:
		return 2
	}
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"urgent": true, "high": true, "normal": true,
}

type TaskKind string

const (
	// KindLeaf is a schedulable unit of work.
	KindLeaf TaskKind = "leaf"
	// KindContainer is a project/parent grouping. Containers are never
	// scheduled; only their leaf children are.
	KindContainer TaskKind = "container"
)

type ScheduleKind string

const (
	ScheduleWork ScheduleKind = "work"
	ScheduleHome ScheduleKind = "home"
)

type TaskCategory string

const (
	CategoryClientWork    TaskCategory = "client_work"
	CategoryCreative      TaskCategory = "creative"
	CategoryAdmin         TaskCategory = "admin"
	CategoryCommunication TaskCategory = "communication"
	CategoryLearning      TaskCategory = "learning"
	CategoryErrand        TaskCategory = "errand"
)

// ValidCategories is the canonical set of accepted task category strings.
var ValidCategories = map[string]bool{
	"client_work": true, "creative": true, "admin": true,
	"communication": true, "learning": true, "errand": true,
}

type DayStatus string

const (
	DayOK         DayStatus = "ok"
	DayTight      DayStatus = "tight"
	DayOverloaded DayStatus = "overloaded"
	DayEmpty      DayStatus = "empty"
)

type BlockSource string

const (
	SourceFixed          BlockSource = "fixed"
	SourceDeadlineDriven BlockSource = "deadline_driven"
	SourceProactiveFill  BlockSource = "proactive_fill"
	SourceRolledOver     BlockSource = "rolled_over"
)
