package repository

import (
	"context"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.Task, error)
	// ListSchedulable returns incomplete work units with time remaining,
	// the planner's candidate set.
	ListSchedulable(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	// GetConfig assembles the weekly windows and buffer setting into one
	// config value.
	GetConfig(ctx context.Context) (*domain.ScheduleConfig, error)
	SetWindow(ctx context.Context, weekday time.Weekday, kind domain.ScheduleKind, w domain.DayWindow) error
	SetBufferPct(ctx context.Context, pct float64) error

	ListOverrides(ctx context.Context) (map[string]domain.DayOverride, error)
	UpsertOverride(ctx context.Context, ov *domain.DayOverride) error
	DeleteOverride(ctx context.Context, date time.Time) error
}

type CalendarRepo interface {
	Create(ctx context.Context, e *domain.CalendarEvent) error
	ListByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type PreferenceRepo interface {
	List(ctx context.Context) ([]domain.CategoryPreference, error)
	Upsert(ctx context.Context, p *domain.CategoryPreference) error
	Delete(ctx context.Context, category domain.TaskCategory) error
}

type OrderingRepo interface {
	// Get returns the manual task order for a date as task ID to position.
	Get(ctx context.Context, date time.Time) (map[string]int, error)
	// Set replaces the full ordering for a date.
	Set(ctx context.Context, date time.Time, taskIDs []string) error
	Clear(ctx context.Context, date time.Time) error
}
