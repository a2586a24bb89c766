package domain

import (
	"time"

	"github.com/lenacroft/tempo/internal/timeutil"
)

// DayWindow is one weekday's working window for a schedule kind, already
// normalized to integer minutes since midnight. The decimal-hour form used
// by configuration input is converted exactly once at load.
type DayWindow struct {
	StartMin int
	EndMin   int
	Enabled  bool
	// Flexible windows (e.g. weekend home time) are not capacity-capped,
	// but are never proactively over-filled either.
	Flexible bool
}

// Minutes returns the window length, or zero for disabled or malformed
// (end before start) windows. Bad input degrades to a disabled day rather
// than failing.
func (w DayWindow) Minutes() int {
	if !w.Enabled || w.EndMin <= w.StartMin {
		return 0
	}
	return w.EndMin - w.StartMin
}

// ScheduleConfig holds the weekly working-hours defaults for both schedule
// kinds plus the global interruption reserve.
type ScheduleConfig struct {
	// Indexed by time.Weekday (Sunday = 0).
	Work [7]DayWindow
	Home [7]DayWindow

	// BufferPct is the fraction of each day's capacity withheld from
	// planning to absorb interruptions (0.25 = 25%).
	BufferPct float64
}

// Window returns the default window for a weekday and kind.
func (c ScheduleConfig) Window(day time.Weekday, kind ScheduleKind) DayWindow {
	if kind == ScheduleHome {
		return c.Home[day]
	}
	return c.Work[day]
}

// SetWindow replaces the default window for a weekday and kind.
func (c *ScheduleConfig) SetWindow(day time.Weekday, kind ScheduleKind, w DayWindow) {
	if kind == ScheduleHome {
		c.Home[day] = w
		return
	}
	c.Work[day] = w
}

// DefaultScheduleConfig returns the out-of-the-box weekly schedule:
// work 08:30-16:15 on weekdays, home 18:00-21:00 on weekdays and flexible
// 09:00-20:00 on weekends, with a 25% interruption reserve.
func DefaultScheduleConfig() ScheduleConfig {
	c := ScheduleConfig{BufferPct: 0.25}
	workStart := timeutil.DecimalHoursToMinutes(8.5)
	workEnd := timeutil.DecimalHoursToMinutes(16.25)
	homeStart := timeutil.DecimalHoursToMinutes(18)
	homeEnd := timeutil.DecimalHoursToMinutes(21)
	weekendStart := timeutil.DecimalHoursToMinutes(9)
	weekendEnd := timeutil.DecimalHoursToMinutes(20)

	for d := time.Sunday; d <= time.Saturday; d++ {
		weekend := d == time.Saturday || d == time.Sunday
		if weekend {
			c.Work[d] = DayWindow{}
			c.Home[d] = DayWindow{StartMin: weekendStart, EndMin: weekendEnd, Enabled: true, Flexible: true}
			continue
		}
		c.Work[d] = DayWindow{StartMin: workStart, EndMin: workEnd, Enabled: true}
		c.Home[d] = DayWindow{StartMin: homeStart, EndMin: homeEnd, Enabled: true}
	}
	return c
}

// DayOverride is a transient, date-keyed replacement for a single day's
// start/end pair. When present it always wins over the weekly default.
type DayOverride struct {
	Date     time.Time
	StartMin int
	EndMin   int
	Reason   string
}

// OverrideKey is the canonical map key for a date-keyed override.
func OverrideKey(date time.Time) string {
	return DayOf(date).Format("2006-01-02")
}
