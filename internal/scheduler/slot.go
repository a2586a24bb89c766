package scheduler

import (
	"sort"

	"github.com/lenacroft/tempo/internal/domain"
)

// BreathingMin is the minimum inter-task breathing interval: the search
// cursor advances to occupied.end + BreathingMin after every interval.
const BreathingMin = 5

// OccupiedInterval is the unit the slot finder and conflict detector
// operate on. Built fresh per pass from already-placed or externally
// pinned tasks; appended to as the pass progresses, never mutated.
type OccupiedInterval struct {
	StartMin int
	EndMin   int
	TaskID   string
	Fixed    bool
	// External marks a calendar block supplied by an outside provider.
	// External blocks can never be shifted by a suggested fix.
	External bool
}

// SortIntervals orders intervals by start, then end, then task ID.
func SortIntervals(ivs []OccupiedInterval) {
	sort.SliceStable(ivs, func(i, j int) bool {
		a, b := ivs[i], ivs[j]
		if a.StartMin != b.StartMin {
			return a.StartMin < b.StartMin
		}
		if a.EndMin != b.EndMin {
			return a.EndMin < b.EndMin
		}
		return a.TaskID < b.TaskID
	})
}

// FindSlot returns the earliest start within [lowerMin, upperMin) where
// durationMin consecutive free minutes exist, walking occupied intervals
// sorted by start. The tail gap after the last interval counts.
func FindSlot(occupied []OccupiedInterval, durationMin, lowerMin, upperMin int) (int, bool) {
	if durationMin <= 0 || lowerMin >= upperMin {
		return 0, false
	}
	cursor := lowerMin
	for _, iv := range occupied {
		if iv.EndMin+BreathingMin <= cursor {
			continue
		}
		if iv.StartMin-cursor >= durationMin && cursor+durationMin <= upperMin {
			return cursor, true
		}
		if next := iv.EndMin + BreathingMin; next > cursor {
			cursor = next
		}
	}
	if upperMin-cursor >= durationMin {
		return cursor, true
	}
	return 0, false
}

// FindSlotAvoiding returns the earliest slot within [lowerMin, upperMin)
// that lies entirely outside the avoided windows. The bound is split into
// the sub-ranges between avoided windows and each is searched in order.
func FindSlotAvoiding(occupied []OccupiedInterval, durationMin, lowerMin, upperMin int, avoided []domain.EnergyWindow) (int, bool) {
	for _, r := range subtractWindows(lowerMin, upperMin, avoided) {
		if s, ok := FindSlot(occupied, durationMin, r.lo, r.hi); ok {
			return s, true
		}
	}
	return 0, false
}

type minuteRange struct {
	lo, hi int
}

// subtractWindows splits [lowerMin, upperMin) into the ranges not covered
// by any of the given windows. Windows may overlap or arrive unsorted.
func subtractWindows(lowerMin, upperMin int, windows []domain.EnergyWindow) []minuteRange {
	sorted := make([]domain.EnergyWindow, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartMin < sorted[j].StartMin })

	var out []minuteRange
	cursor := lowerMin
	for _, w := range sorted {
		if w.StartMin > cursor {
			hi := w.StartMin
			if hi > upperMin {
				hi = upperMin
			}
			if hi > cursor {
				out = append(out, minuteRange{lo: cursor, hi: hi})
			}
		}
		if w.EndMin > cursor {
			cursor = w.EndMin
		}
	}
	if cursor < upperMin {
		out = append(out, minuteRange{lo: cursor, hi: upperMin})
	}
	return out
}

// FindSlotInWindow restricts the search bound to the intersection of
// [lowerMin, upperMin) and the energy window before walking. When no slot
// exists in the preferred window the caller retries unrestricted and marks
// the placement as not optimal.
func FindSlotInWindow(occupied []OccupiedInterval, durationMin, lowerMin, upperMin int, win domain.EnergyWindow) (int, bool) {
	lo := lowerMin
	if win.StartMin > lo {
		lo = win.StartMin
	}
	hi := upperMin
	if win.EndMin < hi {
		hi = win.EndMin
	}
	return FindSlot(occupied, durationMin, lo, hi)
}
