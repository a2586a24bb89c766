package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
	"github.com/lenacroft/tempo/internal/scheduler"
)

type planService struct {
	tasks    repository.TaskRepo
	calendar repository.CalendarRepo
	orders   repository.OrderingRepo
	loader   *ContextLoader
	observer UseCaseObserver
}

func NewPlanService(
	tasks repository.TaskRepo,
	schedule repository.ScheduleRepo,
	calendar repository.CalendarRepo,
	prefs repository.PreferenceRepo,
	orders repository.OrderingRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		tasks:    tasks,
		calendar: calendar,
		orders:   orders,
		loader:   &ContextLoader{schedule: schedule, prefs: prefs},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) PlanDay(ctx context.Context, req contract.PlanDayRequest) (resp *contract.PlanDayResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-day",
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
	date := domain.DayOf(now)
	if req.Date != nil {
		date = domain.DayOf(*req.Date)
	}
	kind := scheduler.KindForDate(date)
	if req.Kind != nil {
		if *req.Kind != domain.ScheduleWork && *req.Kind != domain.ScheduleHome {
			return nil, &contract.PlanError{
				Code:    contract.PlanErrInvalidKind,
				Message: fmt.Sprintf("unknown schedule kind %q", *req.Kind),
			}
		}
		kind = *req.Kind
	}
	fields["date"] = date.Format(dateLayout)
	fields["kind"] = string(kind)

	sctx, err := s.loader.Load(ctx, now)
	if err != nil {
		return nil, err
	}

	tasks, events, manual, err := s.loadDayInput(ctx, date)
	if err != nil {
		return nil, err
	}

	ds := scheduler.ScheduleDay(sctx, scheduler.DayInput{
		Date:        date,
		Kind:        kind,
		Tasks:       derefTasks(tasks),
		Calendar:    calendarBlocks(events),
		ManualOrder: manual,
	})
	fields["blocks"] = len(ds.Blocks)
	fields["status"] = string(ds.Status)

	return &contract.PlanDayResponse{
		Day:      dayPlanView(ds, sctx.WindowFor(date, kind), titleIndex(tasks, events)),
		Warnings: dayWarnings(ds),
	}, nil
}

func (s *planService) PlanWeek(ctx context.Context, req contract.PlanWeekRequest) (resp *contract.PlanWeekResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-week",
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
	start := domain.DayOf(now)
	if req.StartDate != nil {
		start = domain.DayOf(*req.StartDate)
	}
	fields["start"] = start.Format(dateLayout)

	sctx, err := s.loader.Load(ctx, now)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListSchedulable(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	events, err := s.calendar.ListRange(ctx, start, start.AddDate(0, 0, 6))
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}
	calendar := make(map[string][]scheduler.CalendarBlock)
	for _, e := range events {
		key := domain.OverrideKey(e.Date)
		calendar[key] = append(calendar[key], scheduler.CalendarBlock{
			ID:       e.ID,
			Title:    e.Title,
			StartMin: e.StartMin,
			EndMin:   e.EndMin,
		})
	}

	manualOrders := make(map[string]map[string]int)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		order, err := s.orders.Get(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("loading ordering for %s: %w", date.Format(dateLayout), err)
		}
		if len(order) > 0 {
			manualOrders[domain.OverrideKey(date)] = order
		}
	}

	wp := scheduler.ScheduleWeek(sctx, scheduler.WeekInput{
		StartDate:    start,
		Tasks:        derefTasks(tasks),
		Calendar:     calendar,
		ManualOrders: manualOrders,
	})
	fields["status"] = string(wp.Status)
	fields["tight_days"] = wp.TightDays

	titles := titleIndex(tasks, events)
	resp = &contract.PlanWeekResponse{
		StartDate:         wp.StartDate.Format(dateLayout),
		Status:            wp.Status,
		TotalScheduledMin: wp.TotalScheduledMin,
		TotalAvailableMin: wp.TotalAvailableMin,
		TightDays:         wp.TightDays,
		OverloadedDays:    wp.OverloadedDays,
		UtilizationPct:    wp.UtilizationPct,
	}
	for i, day := range wp.Days {
		resp.Days[i] = dayPlanView(day, sctx.WindowFor(day.Date, day.Kind), titles)
		resp.Warnings = append(resp.Warnings, dayWarnings(day)...)
	}
	for _, r := range wp.Recommendations {
		resp.Recommendations = append(resp.Recommendations, contract.RecommendationView{
			FromDate: r.FromDate.Format(dateLayout),
			ToDate:   r.ToDate.Format(dateLayout),
			Message:  r.Message,
		})
	}
	return resp, nil
}

func (s *planService) loadDayInput(ctx context.Context, date time.Time) ([]*domain.Task, []*domain.CalendarEvent, map[string]int, error) {
	tasks, err := s.tasks.ListSchedulable(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tasks: %w", err)
	}
	events, err := s.calendar.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading calendar: %w", err)
	}
	manual, err := s.orders.Get(ctx, date)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading ordering: %w", err)
	}
	return tasks, events, manual, nil
}

func derefTasks(tasks []*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *t)
	}
	return out
}

func calendarBlocks(events []*domain.CalendarEvent) []scheduler.CalendarBlock {
	out := make([]scheduler.CalendarBlock, 0, len(events))
	for _, e := range events {
		out = append(out, scheduler.CalendarBlock{
			ID:       e.ID,
			Title:    e.Title,
			StartMin: e.StartMin,
			EndMin:   e.EndMin,
		})
	}
	return out
}
