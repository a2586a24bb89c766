package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
	"github.com/lenacroft/tempo/internal/testutil"
	"github.com/stretchr/testify/require"
)

// monday is a known Monday used as the planning anchor throughout.
var monday = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

var mondayNoon = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db       *sql.DB
	tasks    *repository.SQLiteTaskRepo
	schedule *repository.SQLiteScheduleRepo
	calendar *repository.SQLiteCalendarRepo
	prefs    *repository.SQLitePreferenceRepo
	orders   *repository.SQLiteOrderingRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &fixture{
		db:       database,
		tasks:    repository.NewSQLiteTaskRepo(database),
		schedule: repository.NewSQLiteScheduleRepo(database),
		calendar: repository.NewSQLiteCalendarRepo(database),
		prefs:    repository.NewSQLitePreferenceRepo(database),
		orders:   repository.NewSQLiteOrderingRepo(database),
	}
}

func (f *fixture) taskService() TaskService {
	return NewTaskService(f.tasks)
}

func (f *fixture) planService() PlanService {
	return NewPlanService(f.tasks, f.schedule, f.calendar, f.prefs, f.orders)
}

func (f *fixture) rebalanceService() RebalanceService {
	return NewRebalanceService(f.tasks, f.schedule, f.calendar, f.prefs, testutil.NewTestUoW(f.db))
}

func (f *fixture) feasibilityService() FeasibilityService {
	return NewFeasibilityService(f.tasks, f.schedule, f.prefs)
}

func (f *fixture) mustCreate(t *testing.T, task *domain.Task) *domain.Task {
	t.Helper()
	require.NoError(t, f.tasks.Create(context.Background(), task))
	return task
}

func timePtr(v time.Time) *time.Time { return &v }

func intPtr(v int) *int { return &v }

func kindPtr(v domain.ScheduleKind) *domain.ScheduleKind { return &v }
