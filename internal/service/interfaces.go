package service

import (
	"context"
	"time"

	"github.com/lenacroft/tempo/internal/app"
	"github.com/lenacroft/tempo/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListChildren(ctx context.Context, parentID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, id string) error
	StartTimer(ctx context.Context, id string) error
	// StopTimer stops a running timer and returns the minutes folded into
	// the task's worked total.
	StopTimer(ctx context.Context, id string) (int, error)
	LogWork(ctx context.Context, id string, minutes int) error
	// MoveToDate defers a task so it is not offered before the given day.
	MoveToDate(ctx context.Context, id string, date time.Time) error
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	GetConfig(ctx context.Context) (*domain.ScheduleConfig, error)
	SetWindow(ctx context.Context, weekday time.Weekday, kind domain.ScheduleKind, w domain.DayWindow) error
	SetBufferPct(ctx context.Context, pct float64) error
	ListOverrides(ctx context.Context) (map[string]domain.DayOverride, error)
	SetOverride(ctx context.Context, ov *domain.DayOverride) error
	ClearOverride(ctx context.Context, date time.Time) error
}

type CalendarService interface {
	Add(ctx context.Context, e *domain.CalendarEvent) error
	ListByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error)
	Remove(ctx context.Context, id string) error
}

type PreferenceService interface {
	List(ctx context.Context) ([]domain.CategoryPreference, error)
	Set(ctx context.Context, p *domain.CategoryPreference) error
	Reset(ctx context.Context, category domain.TaskCategory) error
}

type OrderingService interface {
	Get(ctx context.Context, date time.Time) (map[string]int, error)
	Set(ctx context.Context, date time.Time, taskIDs []string) error
	Clear(ctx context.Context, date time.Time) error
}

// The use-case services are the app ports; contract aliases the same
// request and response types for the CLI boundary.

type PlanService interface {
	app.PlanDayUseCase
	app.PlanWeekUseCase
}

type RebalanceService interface {
	app.RebalanceUseCase
}

type FeasibilityService interface {
	app.FeasibilityUseCase
}
