package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/db"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
	"github.com/lenacroft/tempo/internal/scheduler"
)

type rebalanceService struct {
	tasks    repository.TaskRepo
	calendar repository.CalendarRepo
	loader   *ContextLoader
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRebalanceService(
	tasks repository.TaskRepo,
	schedule repository.ScheduleRepo,
	calendar repository.CalendarRepo,
	prefs repository.PreferenceRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) RebalanceService {
	return &rebalanceService{
		tasks:    tasks,
		calendar: calendar,
		loader:   &ContextLoader{schedule: schedule, prefs: prefs},
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *rebalanceService) Rebalance(ctx context.Context, req contract.RebalanceRequest) (resp *contract.RebalanceResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"apply": req.Apply}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "rebalance",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	nowMin := now.Hour()*60 + now.Minute()
	if req.NowMin != nil {
		nowMin = *req.NowMin
	}
	date := domain.DayOf(now)

	sctx, err := s.loader.Load(ctx, now)
	if err != nil {
		return nil, err
	}
	tomorrowDate := nextEnabledDay(sctx, date)

	tasks, err := s.tasks.ListSchedulable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	var today, tomorrow []domain.Task
	for _, t := range tasks {
		switch {
		case t.StartsBy(date):
			today = append(today, *t)
		case t.StartsBy(tomorrowDate):
			tomorrow = append(tomorrow, *t)
		}
	}

	events, err := s.calendar.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}
	var fixed []scheduler.OccupiedInterval
	for _, e := range events {
		fixed = append(fixed, scheduler.OccupiedInterval{
			StartMin: e.StartMin,
			EndMin:   e.EndMin,
			TaskID:   e.ID,
			Fixed:    true,
			External: true,
		})
	}
	for _, t := range today {
		if t.Pinned() {
			fixed = append(fixed, scheduler.OccupiedInterval{
				StartMin: *t.FixedStartMin,
				EndMin:   *t.FixedStartMin + t.RemainingMin(),
				TaskID:   t.ID,
				Fixed:    true,
			})
		}
	}

	plan := scheduler.Rebalance(sctx, scheduler.RebalanceInput{
		Date:         date,
		NowMin:       nowMin,
		Today:        today,
		Tomorrow:     tomorrow,
		TomorrowDate: tomorrowDate,
		TodayFixed:   fixed,
	})
	fields["moves"] = len(plan.MoveToTomorrow)
	fields["pulls"] = len(plan.PullToToday)

	titles := titleIndex(tasks, events)
	resp = &contract.RebalanceResponse{
		Date:                 plan.Date.Format(dateLayout),
		TomorrowDate:         plan.TomorrowDate.Format(dateLayout),
		RemainingCapacityMin: plan.RemainingCapacityMin,
		RequiredMin:          plan.RequiredMin,
		DeficitMin:           plan.DeficitMin,
		SurplusMin:           plan.SurplusMin,
		ResidualDeficitMin:   plan.ResidualDeficitMin,
	}
	for _, m := range plan.MoveToTomorrow {
		resp.MoveToTomorrow = append(resp.MoveToTomorrow, moveView(m))
	}
	for _, m := range plan.PullToToday {
		resp.PullToToday = append(resp.PullToToday, moveView(m))
	}
	for _, o := range plan.Overflows {
		resp.Overflows = append(resp.Overflows, contract.OverflowView{
			TaskID:      o.TaskID,
			Title:       titles[o.TaskID],
			OverflowMin: o.OverflowMin,
		})
	}

	if !req.Apply {
		return resp, nil
	}

	applied, err := s.applyMoves(ctx, plan, now)
	if err != nil {
		return nil, &contract.RebalanceError{
			Code:    contract.RebalanceErrApplyFailed,
			Message: err.Error(),
		}
	}
	resp.Applied = true
	resp.AppliedMoves = applied
	fields["applied_moves"] = len(applied)
	return resp, nil
}

// applyMoves persists the plan in one transaction. Moves set the task's
// not-before date and mark it rolled over; pulls clear the not-before
// date. Tasks already carrying the target state are skipped, so applying
// the same plan twice is a no-op.
func (s *rebalanceService) applyMoves(ctx context.Context, plan scheduler.RebalancePlan, now time.Time) ([]string, error) {
	var applied []string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		for _, m := range plan.MoveToTomorrow {
			t, err := txTasks.GetByID(ctx, m.TaskID)
			if err != nil {
				return fmt.Errorf("loading task %s: %w", m.TaskID, err)
			}
			if t.NotBefore != nil && domain.SameDay(*t.NotBefore, plan.TomorrowDate) {
				continue
			}
			target := plan.TomorrowDate
			t.NotBefore = &target
			t.RolledOver = true
			t.UpdatedAt = now
			if err := txTasks.Update(ctx, t); err != nil {
				return fmt.Errorf("moving task %s: %w", m.TaskID, err)
			}
			applied = append(applied, m.TaskID)
		}
		for _, m := range plan.PullToToday {
			t, err := txTasks.GetByID(ctx, m.TaskID)
			if err != nil {
				return fmt.Errorf("loading task %s: %w", m.TaskID, err)
			}
			if t.StartsBy(plan.Date) {
				continue
			}
			t.NotBefore = nil
			t.UpdatedAt = now
			if err := txTasks.Update(ctx, t); err != nil {
				return fmt.Errorf("pulling task %s: %w", m.TaskID, err)
			}
			applied = append(applied, m.TaskID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

// nextEnabledDay finds the first enabled working day after date, scanning
// at most a week ahead. A fully disabled week falls back to the next
// calendar day.
func nextEnabledDay(sctx scheduler.ScheduleContext, date time.Time) time.Time {
	for i := 1; i <= 7; i++ {
		next := date.AddDate(0, 0, i)
		if sctx.CapacityFor(next, scheduler.KindForDate(next)).Enabled {
			return next
		}
	}
	return date.AddDate(0, 0, 1)
}
