package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lenacroft/tempo/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithCategory(c domain.TaskCategory) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithKind(k domain.TaskKind) TaskOption {
	return func(t *domain.Task) {
		t.Kind = k
	}
}

func WithParent(id string) TaskOption {
	return func(t *domain.Task) {
		t.ParentID = id
	}
}

func WithEstimate(min int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = min
	}
}

func WithWorked(min int) TaskOption {
	return func(t *domain.Task) {
		t.WorkedMin = min
	}
}

func WithFixedStart(min int) TaskOption {
	return func(t *domain.Task) {
		t.FixedStartMin = &min
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithNotBefore(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.NotBefore = &d
	}
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithTimerRunning(startedAt time.Time) TaskOption {
	return func(t *domain.Task) {
		t.TimerRunning = true
		t.TimerStartedAt = &startedAt
	}
}

func WithRolledOver() TaskOption {
	return func(t *domain.Task) {
		t.RolledOver = true
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:           uuid.New().String(),
		Title:        title,
		Category:     domain.CategoryAdmin,
		Kind:         domain.KindLeaf,
		Priority:     domain.PriorityNormal,
		EstimatedMin: 60,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

func NewTestEvent(date time.Time, title string, startMin, endMin int) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		ID:        uuid.New().String(),
		Date:      domain.DayOf(date),
		Title:     title,
		StartMin:  startMin,
		EndMin:    endMin,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestOverride(date time.Time, startMin, endMin int, reason string) *domain.DayOverride {
	return &domain.DayOverride{
		Date:     domain.DayOf(date),
		StartMin: startMin,
		EndMin:   endMin,
		Reason:   reason,
	}
}
