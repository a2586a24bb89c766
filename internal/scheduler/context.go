// Package scheduler is the planning engine: pure, synchronous, deterministic
// computation from a task snapshot plus schedule configuration to a
// conflict-checked day or week plan. It holds no state between invocations;
// every entry point receives an explicit ScheduleContext.
package scheduler

import (
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// ScheduleContext carries everything an engine entry point needs beyond the
// task list itself. It is assembled fresh per pass by the caller.
type ScheduleContext struct {
	Config    domain.ScheduleConfig
	Overrides map[string]domain.DayOverride
	Energy    *EnergyProfile
	Now       time.Time
}

// NewScheduleContext builds a context, substituting the default energy
// profile when none is supplied.
func NewScheduleContext(cfg domain.ScheduleConfig, overrides map[string]domain.DayOverride, energy *EnergyProfile, now time.Time) ScheduleContext {
	if energy == nil {
		energy = DefaultEnergyProfile()
	}
	if overrides == nil {
		overrides = map[string]domain.DayOverride{}
	}
	return ScheduleContext{Config: cfg, Overrides: overrides, Energy: energy, Now: now}
}

// WindowFor resolves the working window for a date: the date-keyed override
// when present, otherwise the weekly default. An override always wins, even
// over a disabled default; a malformed override (end before start) degrades
// to a disabled day.
func (c ScheduleContext) WindowFor(date time.Time, kind domain.ScheduleKind) domain.DayWindow {
	w := c.Config.Window(date.Weekday(), kind)
	if ov, ok := c.Overrides[domain.OverrideKey(date)]; ok {
		w.StartMin = ov.StartMin
		w.EndMin = ov.EndMin
		w.Enabled = ov.EndMin > ov.StartMin
	}
	return w
}

// CapacityFor resolves the window for a date and computes its capacity.
func (c ScheduleContext) CapacityFor(date time.Time, kind domain.ScheduleKind) Capacity {
	return ComputeCapacity(c.WindowFor(date, kind), c.Config.BufferPct)
}

// KindForDate selects the schedule kind a date is planned against:
// work hours on weekdays, home hours on weekends.
func KindForDate(date time.Time) domain.ScheduleKind {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.ScheduleHome
	default:
		return domain.ScheduleWork
	}
}
