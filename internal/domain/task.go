package domain

import "time"

// Task is the unit of work owned by the application layer. The planner
// only reads tasks; all mutation goes through the task store.
type Task struct {
	ID       string
	Title    string
	Category TaskCategory
	Kind     TaskKind
	ParentID string
	Priority Priority

	// Duration
	EstimatedMin int
	WorkedMin    int

	// A pinned task has an externally set start time (minute of day).
	// The planner never moves it, only flags overlaps.
	FixedStartMin *int

	// Constraints
	DueDate   *time.Time
	NotBefore *time.Time

	Completed    bool
	TimerRunning bool
	// TimerStartedAt is set while the timer runs; the elapsed span is
	// folded into WorkedMin when the timer stops.
	TimerStartedAt *time.Time
	// RolledOver marks a task moved onto its current day by a rebalance
	// pass. Cleared on completion.
	RolledOver bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingMin returns the unworked estimate. WorkedMin may legally exceed
// EstimatedMin (over-runs trigger rebalancing); the floor is zero.
func (t *Task) RemainingMin() int {
	r := t.EstimatedMin - t.WorkedMin
	if r < 0 {
		return 0
	}
	return r
}

// Pinned reports whether the task has a fixed start time.
func (t *Task) Pinned() bool {
	return t.FixedStartMin != nil
}

// Schedulable reports whether the task is a candidate for placement at all:
// a leaf with work remaining. Containers and completed tasks never are.
func (t *Task) Schedulable() bool {
	return t.Kind == KindLeaf && !t.Completed && t.RemainingMin() > 0
}

// Overdue reports whether the task's due date falls strictly before the
// given day (dates are compared at day granularity).
func (t *Task) Overdue(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return DayOf(*t.DueDate).Before(DayOf(day))
}

// StartsBy reports whether the task may start on or before the given day.
func (t *Task) StartsBy(day time.Time) bool {
	if t.NotBefore == nil {
		return true
	}
	return !DayOf(*t.NotBefore).After(DayOf(day))
}

// DayOf truncates a timestamp to midnight in its own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
