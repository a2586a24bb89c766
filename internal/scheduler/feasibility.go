package scheduler

import (
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// FeasibilityReport signals whether a task's remaining work still fits
// between now and its deadline. Informational only: it never alters the
// plan, the caller decides whether to surface a warning.
type FeasibilityReport struct {
	TaskID       string
	Deadline     *time.Time
	Feasible     bool
	RequiredMin  int
	AvailableMin int
	DaysChecked  int
}

// CheckDeadline sums net plannable minutes for every enabled day from
// today through the deadline date inclusive and compares the total to the
// task's remaining work. A task with no deadline is always feasible.
func CheckDeadline(sctx ScheduleContext, t domain.Task) FeasibilityReport {
	report := FeasibilityReport{
		TaskID:      t.ID,
		Deadline:    t.DueDate,
		RequiredMin: t.RemainingMin(),
	}
	if t.DueDate == nil {
		report.Feasible = true
		return report
	}

	today := domain.DayOf(sctx.Now)
	deadline := domain.DayOf(*t.DueDate)
	for date := today; !date.After(deadline); date = date.AddDate(0, 0, 1) {
		cap := sctx.CapacityFor(date, KindForDate(date))
		if cap.Enabled {
			report.AvailableMin += cap.NetMin
		}
		report.DaysChecked++
	}

	report.Feasible = report.AvailableMin >= report.RequiredMin
	return report
}
