package scheduler

import (
	"sort"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// CalendarBlock is an externally pinned event (e.g. from a calendar
// provider). It occupies time like a fixed task but is never movable and
// never resolvable by a suggested fix.
type CalendarBlock struct {
	ID       string
	Title    string
	StartMin int
	EndMin   int
}

// ScheduledBlock is the planner's output unit.
type ScheduledBlock struct {
	TaskID   string
	Title    string
	StartMin int
	EndMin   int
	Fixed    bool
	External bool
	Source   domain.BlockSource
	// InPreferredWindow is false when the block only fit outside its
	// category's preferred energy windows.
	InPreferredWindow bool
}

// EndOfDayOverflow reports a block that runs past the day's end boundary.
// Disposition (move, keep as overtime, cancel) is an explicit user choice.
type EndOfDayOverflow struct {
	TaskID      string
	OverflowMin int
}

// DayInput is one day's scheduling request: the candidate tasks, the
// external calendar blocks occupying the day, and the user's manual
// ordering for the date when one exists.
type DayInput struct {
	Date        time.Time
	Kind        domain.ScheduleKind
	Tasks       []domain.Task
	Calendar    []CalendarBlock
	ManualOrder map[string]int
}

// DaySchedule is the result of one day's pass. It is derived state,
// recomputed from scratch on every pass.
type DaySchedule struct {
	Date     time.Time
	Kind     domain.ScheduleKind
	Status   domain.DayStatus
	Capacity Capacity

	Blocks    []ScheduledBlock
	Unplaced  []domain.Task
	Conflicts []ConflictWarning
	Overflows []EndOfDayOverflow

	// PlacedMin counts flexible minutes placed, for capacity accounting.
	PlacedMin      int
	UtilizationPct float64
}

// tightUtilizationPct is the utilization threshold for a tight day.
const tightUtilizationPct = 90.0

// ScheduleDay runs one day's pass: fixed tasks first (never refused, only
// flagged), conflict detection over the fixed set, then flexible tasks in
// scheduling order through the slot finder. Placement is greedy and
// non-backtracking: work lands as early as possible and earlier placements
// are never reconsidered.
func ScheduleDay(sctx ScheduleContext, in DayInput) DaySchedule {
	date := domain.DayOf(in.Date)
	win := sctx.WindowFor(date, in.Kind)
	cap := ComputeCapacity(win, sctx.Config.BufferPct)

	ds := DaySchedule{Date: date, Kind: in.Kind, Capacity: cap}

	candidates := make([]domain.Task, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		if t.Schedulable() && t.StartsBy(date) {
			candidates = append(candidates, t)
		}
	}

	// Disabled (or malformed) day: everything falls through unplaced.
	if !cap.Enabled {
		ds.Status = domain.DayEmpty
		ds.Unplaced = candidates
		return ds
	}

	if len(candidates) == 0 && len(in.Calendar) == 0 {
		ds.Status = domain.DayEmpty
		return ds
	}

	var occupied []OccupiedInterval

	for _, cb := range in.Calendar {
		occupied = append(occupied, OccupiedInterval{
			StartMin: cb.StartMin,
			EndMin:   cb.EndMin,
			TaskID:   cb.ID,
			Fixed:    true,
			External: true,
		})
		ds.Blocks = append(ds.Blocks, ScheduledBlock{
			TaskID:   cb.ID,
			Title:    cb.Title,
			StartMin: cb.StartMin,
			EndMin:   cb.EndMin,
			Fixed:    true,
			External: true,
			Source:   domain.SourceFixed,
		})
		if cb.EndMin > win.EndMin {
			ds.Overflows = append(ds.Overflows, EndOfDayOverflow{TaskID: cb.ID, OverflowMin: cb.EndMin - win.EndMin})
		}
	}

	fixed, flexible := SplitFixed(candidates)

	// Fixed tasks are placed regardless of capacity.
	for _, t := range fixed {
		start := *t.FixedStartMin
		end := start + t.RemainingMin()
		occupied = append(occupied, OccupiedInterval{StartMin: start, EndMin: end, TaskID: t.ID, Fixed: true})
		ds.Blocks = append(ds.Blocks, ScheduledBlock{
			TaskID:            t.ID,
			Title:             t.Title,
			StartMin:          start,
			EndMin:            end,
			Fixed:             true,
			Source:            domain.SourceFixed,
			InPreferredWindow: true,
		})
		if end > win.EndMin {
			ds.Overflows = append(ds.Overflows, EndOfDayOverflow{TaskID: t.ID, OverflowMin: end - win.EndMin})
		}
	}

	ds.Conflicts = DetectConflicts(occupied)
	SortIntervals(occupied)

	SortForScheduling(flexible, sctx.Energy, date, in.ManualOrder)

	for _, t := range flexible {
		dur := t.RemainingMin()

		// Over capacity: skip but keep going, a later shorter task may
		// still fit.
		if !cap.Flexible && ds.PlacedMin+dur > cap.NetMin {
			ds.Unplaced = append(ds.Unplaced, t)
			continue
		}

		start, ok, preferred := findEnergySlot(sctx.Energy, t.Category, occupied, dur, win)
		if !ok {
			// Capacity headroom exists but the day is too fragmented.
			ds.Unplaced = append(ds.Unplaced, t)
			continue
		}

		ds.Blocks = append(ds.Blocks, ScheduledBlock{
			TaskID:            t.ID,
			Title:             t.Title,
			StartMin:          start,
			EndMin:            start + dur,
			Source:            flexibleSource(t, date),
			InPreferredWindow: preferred,
		})
		occupied = append(occupied, OccupiedInterval{StartMin: start, EndMin: start + dur, TaskID: t.ID})
		SortIntervals(occupied)
		ds.PlacedMin += dur
	}

	sort.SliceStable(ds.Blocks, func(i, j int) bool {
		if ds.Blocks[i].StartMin != ds.Blocks[j].StartMin {
			return ds.Blocks[i].StartMin < ds.Blocks[j].StartMin
		}
		return ds.Blocks[i].TaskID < ds.Blocks[j].TaskID
	})

	ds.UtilizationPct = utilization(ds.PlacedMin+fixedMinutesInWindow(occupied, win), cap)
	ds.Status = dayStatus(ds, cap)
	return ds
}

// findEnergySlot searches the category's preferred windows in order, then
// falls back first to the bound minus the category's avoided windows, and
// only as a last resort to the fully unrestricted bound. Fallback
// placements are marked not optimal unless the category carries no
// preferences at all.
func findEnergySlot(profile *EnergyProfile, cat domain.TaskCategory, occupied []OccupiedInterval, dur int, win domain.DayWindow) (start int, ok, preferred bool) {
	preferredWindows := profile.PreferredWindows(cat)
	for _, ew := range preferredWindows {
		if s, ok := FindSlotInWindow(occupied, dur, win.StartMin, win.EndMin, ew); ok {
			return s, true, true
		}
	}
	avoided := profile.AvoidedWindows(cat)
	if len(avoided) > 0 {
		if s, ok := FindSlotAvoiding(occupied, dur, win.StartMin, win.EndMin, avoided); ok {
			return s, true, len(preferredWindows) == 0
		}
	}
	s, ok := FindSlot(occupied, dur, win.StartMin, win.EndMin)
	return s, ok, len(preferredWindows) == 0 && len(avoided) == 0
}

// flexibleSource records why a flexible block landed on this day.
func flexibleSource(t domain.Task, date time.Time) domain.BlockSource {
	if t.RolledOver {
		return domain.SourceRolledOver
	}
	if t.DueDate != nil && !domain.DayOf(*t.DueDate).After(date) {
		return domain.SourceDeadlineDriven
	}
	return domain.SourceProactiveFill
}

func fixedMinutesInWindow(occupied []OccupiedInterval, win domain.DayWindow) int {
	total := 0
	for _, iv := range occupied {
		if !iv.Fixed {
			continue
		}
		lo := maxInt(iv.StartMin, win.StartMin)
		hi := minInt(iv.EndMin, win.EndMin)
		if hi > lo {
			total += hi - lo
		}
	}
	return total
}

func utilization(usedMin int, cap Capacity) float64 {
	if cap.NetMin <= 0 {
		return 0
	}
	return float64(usedMin) / float64(cap.NetMin) * 100
}

func dayStatus(ds DaySchedule, cap Capacity) domain.DayStatus {
	switch {
	case len(ds.Unplaced) > 0:
		return domain.DayOverloaded
	case len(ds.Blocks) == 0:
		return domain.DayEmpty
	case !cap.Flexible && ds.UtilizationPct >= tightUtilizationPct:
		return domain.DayTight
	default:
		return domain.DayOK
	}
}
