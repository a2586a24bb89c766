package scheduler

// ConflictWarning reports an overlap between two fixed intervals on the
// same day, with a suggested fix. The detector never applies the fix;
// resolution is an explicit user-triggered operation.
type ConflictWarning struct {
	// TaskID is the earlier-starting block, OtherTaskID the later one.
	TaskID      string
	OtherTaskID string
	OverlapMin  int

	// ShiftTaskID names the block the suggested fix would move, and
	// SuggestedStartMin where it would move to. Empty when Resolvable
	// is false.
	ShiftTaskID       string
	SuggestedStartMin int

	// Resolvable is false when both blocks are external calendar events:
	// neither side may be shifted.
	Resolvable bool
}

// DetectConflicts tests every pair of fixed intervals for overlap, in input
// order. The suggested fix shifts the later-starting block to begin
// immediately after the earlier one ends; when the later block is an
// external calendar event, only the non-external counterpart may be
// shifted instead.
func DetectConflicts(fixed []OccupiedInterval) []ConflictWarning {
	var warnings []ConflictWarning
	for i := 0; i < len(fixed); i++ {
		for j := i + 1; j < len(fixed); j++ {
			a, b := fixed[i], fixed[j]
			overlap := minInt(a.EndMin, b.EndMin) - maxInt(a.StartMin, b.StartMin)
			if overlap <= 0 {
				continue
			}

			earlier, later := a, b
			if b.StartMin < a.StartMin {
				earlier, later = b, a
			}

			w := ConflictWarning{
				TaskID:      earlier.TaskID,
				OtherTaskID: later.TaskID,
				OverlapMin:  overlap,
			}
			switch {
			case !later.External:
				w.Resolvable = true
				w.ShiftTaskID = later.TaskID
				w.SuggestedStartMin = earlier.EndMin
			case !earlier.External:
				w.Resolvable = true
				w.ShiftTaskID = earlier.TaskID
				w.SuggestedStartMin = later.EndMin
			default:
				// Both external: nothing the planner may move.
			}
			warnings = append(warnings, w)
		}
	}
	return warnings
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
