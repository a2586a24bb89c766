package scheduler

import (
	"sort"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// RebalanceInput is a snapshot of "today" for the overflow rebalancer: the
// current minute of day, today's and the next working day's candidate
// tasks, and today's fixed intervals for re-checking pulled tasks.
type RebalanceInput struct {
	Date         time.Time
	NowMin       int
	Today        []domain.Task
	Tomorrow     []domain.Task
	TomorrowDate time.Time
	TodayFixed   []OccupiedInterval
}

// TaskMove is one proposed move between adjacent days.
type TaskMove struct {
	TaskID       string
	Title        string
	Priority     domain.Priority
	RemainingMin int
	FromDate     time.Time
	ToDate       time.Time
}

// RebalancePlan is the rebalancer's proposal. Nothing is applied here; the
// application layer applies moves idempotently, keyed by task ID.
type RebalancePlan struct {
	Date         time.Time
	TomorrowDate time.Time
	Kind         domain.ScheduleKind

	RemainingCapacityMin int
	RequiredMin          int
	DeficitMin           int

	MoveToTomorrow []TaskMove
	PullToToday    []TaskMove

	// ResidualDeficitMin is what remains uncovered when protected tasks
	// (urgent, running timer, pinned) cannot be moved. Reported rather
	// than pretending success.
	ResidualDeficitMin int
	SurplusMin         int

	Overflows []EndOfDayOverflow
}

// Rebalance decides, from the real-time clock state, which of today's
// pending tasks must roll to the next working day and which of tomorrow's
// may be pulled into freed capacity. Urgent tasks and tasks with a running
// timer are never moved off today, even if that leaves a residual deficit.
func Rebalance(sctx ScheduleContext, in RebalanceInput) RebalancePlan {
	date := domain.DayOf(in.Date)
	kind := KindForDate(date)
	plan := RebalancePlan{
		Date:         date,
		TomorrowDate: domain.DayOf(in.TomorrowDate),
		Kind:         kind,
	}

	win := sctx.WindowFor(date, kind)
	cap := ComputeCapacity(win, sctx.Config.BufferPct)
	if !cap.Enabled {
		return plan
	}

	budget := cap.NetMin
	if cap.Flexible {
		budget = cap.TotalMin
	}
	elapsed := in.NowMin - win.StartMin
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > cap.TotalMin {
		elapsed = cap.TotalMin
	}
	remaining := budget - elapsed
	if remaining < 0 {
		remaining = 0
	}
	plan.RemainingCapacityMin = remaining

	today := schedulableLeaves(in.Today)
	for _, t := range today {
		if !t.TimerRunning {
			plan.RequiredMin += t.RemainingMin()
		}
	}

	moved := map[string]bool{}
	if plan.RequiredMin > remaining {
		plan.DeficitMin = plan.RequiredMin - remaining
		plan.MoveToTomorrow, plan.ResidualDeficitMin = selectMoves(today, plan.DeficitMin, date, plan.TomorrowDate)
		for _, m := range plan.MoveToTomorrow {
			moved[m.TaskID] = true
		}
	} else {
		plan.SurplusMin = remaining - plan.RequiredMin
		plan.PullToToday, plan.SurplusMin = selectPulls(sctx, in, plan.SurplusMin, date)
	}

	plan.Overflows = endOfDayOverflows(sctx, in, today, moved, win)
	return plan
}

func schedulableLeaves(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		// Rolled-up parents are never counted, only their sub-units.
		if t.Kind != domain.KindLeaf || t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out
}

// selectMoves picks tasks to roll over, lowest priority first, until the
// deficit is covered. Urgent tasks, tasks with a running timer, and pinned
// tasks are protected; the residual deficit is reported when the movable
// pool is too small.
func selectMoves(today []domain.Task, deficit int, date, tomorrow time.Time) ([]TaskMove, int) {
	movable := make([]domain.Task, 0, len(today))
	for _, t := range today {
		if t.Priority == domain.PriorityUrgent || t.TimerRunning || t.Pinned() {
			continue
		}
		if t.RemainingMin() == 0 {
			continue
		}
		movable = append(movable, t)
	}

	// Lowest priority first; within a priority, the farthest due date is
	// the cheapest to defer (no due date counts as farthest).
	sort.SliceStable(movable, func(i, j int) bool {
		a, b := movable[i], movable[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() > b.Priority.Rank()
		}
		if (a.DueDate == nil) != (b.DueDate == nil) {
			return a.DueDate == nil
		}
		if a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.After(*b.DueDate)
		}
		return a.ID < b.ID
	})

	var moves []TaskMove
	covered := 0
	for _, t := range movable {
		if covered >= deficit {
			break
		}
		moves = append(moves, TaskMove{
			TaskID:       t.ID,
			Title:        t.Title,
			Priority:     t.Priority,
			RemainingMin: t.RemainingMin(),
			FromDate:     date,
			ToDate:       tomorrow,
		})
		covered += t.RemainingMin()
	}

	residual := deficit - covered
	if residual < 0 {
		residual = 0
	}
	return moves, residual
}

// selectPulls greedily pulls tomorrow's tasks into today's freed capacity,
// in priority order. A pinned task is re-checked against today's fixed set
// before pulling; colliding pulls are skipped rather than stacked onto an
// existing fixed block.
func selectPulls(sctx ScheduleContext, in RebalanceInput, surplus int, date time.Time) ([]TaskMove, int) {
	candidates := schedulableLeaves(in.Tomorrow)
	SortForScheduling(candidates, sctx.Energy, in.TomorrowDate, nil)

	var pulls []TaskMove
	for _, t := range candidates {
		dur := t.RemainingMin()
		if dur == 0 || dur > surplus {
			continue
		}
		if t.Pinned() && pinnedCollides(t, in.TodayFixed) {
			continue
		}
		pulls = append(pulls, TaskMove{
			TaskID:       t.ID,
			Title:        t.Title,
			Priority:     t.Priority,
			RemainingMin: dur,
			FromDate:     domain.DayOf(in.TomorrowDate),
			ToDate:       date,
		})
		surplus -= dur
	}
	return pulls, surplus
}

func pinnedCollides(t domain.Task, fixed []OccupiedInterval) bool {
	start := *t.FixedStartMin
	end := start + t.RemainingMin()
	for _, iv := range fixed {
		if start < iv.EndMin && iv.StartMin < end {
			return true
		}
	}
	return false
}

// endOfDayOverflows estimates, for the tasks staying on today, which would
// run past the day's end boundary if worked back to back from now.
func endOfDayOverflows(sctx ScheduleContext, in RebalanceInput, today []domain.Task, moved map[string]bool, win domain.DayWindow) []EndOfDayOverflow {
	var overflows []EndOfDayOverflow

	kept := make([]domain.Task, 0, len(today))
	for _, t := range today {
		if moved[t.ID] || t.RemainingMin() == 0 {
			continue
		}
		if t.Pinned() {
			if end := *t.FixedStartMin + t.RemainingMin(); end > win.EndMin {
				overflows = append(overflows, EndOfDayOverflow{TaskID: t.ID, OverflowMin: end - win.EndMin})
			}
			continue
		}
		kept = append(kept, t)
	}

	SortForScheduling(kept, sctx.Energy, in.Date, nil)
	cursor := in.NowMin
	if cursor < win.StartMin {
		cursor = win.StartMin
	}
	for _, t := range kept {
		cursor += t.RemainingMin()
		if cursor > win.EndMin {
			over := cursor - win.EndMin
			if over > t.RemainingMin() {
				over = t.RemainingMin()
			}
			overflows = append(overflows, EndOfDayOverflow{TaskID: t.ID, OverflowMin: over})
		}
	}
	return overflows
}
