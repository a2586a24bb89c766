package scheduler

import (
	"sort"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// SplitFixed separates pinned tasks from flexible ones, preserving input
// order. Pinned tasks are placed first, outside the scheduling sort, since
// their position is not negotiable.
func SplitFixed(tasks []domain.Task) (fixed, flexible []domain.Task) {
	for _, t := range tasks {
		if t.Pinned() {
			fixed = append(fixed, t)
		} else {
			flexible = append(flexible, t)
		}
	}
	return fixed, flexible
}

// SortForScheduling sorts flexible tasks into scheduling order by the
// deterministic canonical rules:
// 1. Manual day ordering, when the user has one for this date
// 2. Overdue before not-overdue
// 3. Priority: urgent > high > normal
// 4. Due date: earliest first (nil last)
// 5. Focus-requiring categories before the rest
// 6. Category rank: lower schedules earlier
// 7. Task ID: lexical ascending
func SortForScheduling(tasks []domain.Task, profile *EnergyProfile, day time.Time, manual map[string]int) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		// 1. Manual ordering (entries present sort before absent)
		posA, okA := manual[a.ID]
		posB, okB := manual[b.ID]
		if okA != okB {
			return okA
		}
		if okA && okB && posA != posB {
			return posA < posB
		}

		// 2. Overdue first
		overA, overB := a.Overdue(day), b.Overdue(day)
		if overA != overB {
			return overA
		}

		// 3. Priority
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}

		// 4. Due date (earliest first, nil last)
		if (a.DueDate == nil) != (b.DueDate == nil) {
			return a.DueDate != nil
		}
		if a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}

		// 5. Focus-heavy work claims the earliest capacity
		focusA, focusB := profile.RequiresFocus(a.Category), profile.RequiresFocus(b.Category)
		if focusA != focusB {
			return focusA
		}

		// 6. Category rank
		if ra, rb := profile.CategoryRank(a.Category), profile.CategoryRank(b.Category); ra != rb {
			return ra < rb
		}

		// 7. Task ID (lexical)
		return a.ID < b.ID
	})
}
