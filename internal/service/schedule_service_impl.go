package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
)

type scheduleService struct {
	schedule repository.ScheduleRepo
}

func NewScheduleService(schedule repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedule: schedule}
}

func (s *scheduleService) GetConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	return s.schedule.GetConfig(ctx)
}

func (s *scheduleService) SetWindow(ctx context.Context, weekday time.Weekday, kind domain.ScheduleKind, w domain.DayWindow) error {
	if kind != domain.ScheduleWork && kind != domain.ScheduleHome {
		return fmt.Errorf("unknown schedule kind %q", kind)
	}
	if w.Enabled {
		if err := validateWindowBounds(w.StartMin, w.EndMin); err != nil {
			return err
		}
	}
	return s.schedule.SetWindow(ctx, weekday, kind, w)
}

func (s *scheduleService) SetBufferPct(ctx context.Context, pct float64) error {
	if pct < 0 || pct >= 1 {
		return fmt.Errorf("buffer percentage must be in [0, 1), got %.2f", pct)
	}
	return s.schedule.SetBufferPct(ctx, pct)
}

func (s *scheduleService) ListOverrides(ctx context.Context) (map[string]domain.DayOverride, error) {
	return s.schedule.ListOverrides(ctx)
}

func (s *scheduleService) SetOverride(ctx context.Context, ov *domain.DayOverride) error {
	// An override with end <= start is legal: it disables the day.
	if ov.EndMin > ov.StartMin {
		if err := validateWindowBounds(ov.StartMin, ov.EndMin); err != nil {
			return err
		}
	}
	ov.Date = domain.DayOf(ov.Date)
	return s.schedule.UpsertOverride(ctx, ov)
}

func (s *scheduleService) ClearOverride(ctx context.Context, date time.Time) error {
	return s.schedule.DeleteOverride(ctx, date)
}

func validateWindowBounds(startMin, endMin int) error {
	if startMin < 0 || endMin > 24*60 || startMin >= endMin {
		return fmt.Errorf("invalid window %d-%d: need 0 <= start < end <= 1440", startMin, endMin)
	}
	return nil
}
