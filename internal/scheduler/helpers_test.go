package scheduler

import (
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// monday is a known Monday used as "today" across engine tests.
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

func testCtx() ScheduleContext {
	now := monday.Add(9 * time.Hour)
	return NewScheduleContext(domain.DefaultScheduleConfig(), nil, nil, now)
}

func mkFlex(id string, durationMin int, prio domain.Priority) domain.Task {
	return domain.Task{
		ID:           id,
		Title:        "Task " + id,
		Kind:         domain.KindLeaf,
		Priority:     prio,
		EstimatedMin: durationMin,
	}
}

func mkFixed(id string, startMin, durationMin int) domain.Task {
	t := mkFlex(id, durationMin, domain.PriorityNormal)
	t.FixedStartMin = &startMin
	return t
}

func datePtr(t time.Time) *time.Time { return &t }
