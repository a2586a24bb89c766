package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow_Minutes(t *testing.T) {
	w := DayWindow{StartMin: 510, EndMin: 975, Enabled: true}
	assert.Equal(t, 465, w.Minutes())

	assert.Equal(t, 0, DayWindow{StartMin: 510, EndMin: 975}.Minutes(), "disabled day has no minutes")
	assert.Equal(t, 0, DayWindow{StartMin: 975, EndMin: 510, Enabled: true}.Minutes(), "end before start degrades to disabled")
	assert.Equal(t, 0, DayWindow{StartMin: 510, EndMin: 510, Enabled: true}.Minutes())
}

func TestDefaultScheduleConfig(t *testing.T) {
	c := DefaultScheduleConfig()

	mon := c.Window(time.Monday, ScheduleWork)
	assert.True(t, mon.Enabled)
	assert.Equal(t, 510, mon.StartMin, "08:30")
	assert.Equal(t, 975, mon.EndMin, "16:15")
	assert.False(t, mon.Flexible)

	sat := c.Window(time.Saturday, ScheduleWork)
	assert.False(t, sat.Enabled, "no weekend work hours by default")

	satHome := c.Window(time.Saturday, ScheduleHome)
	assert.True(t, satHome.Enabled)
	assert.True(t, satHome.Flexible, "weekend home time is uncapped")

	assert.Equal(t, 0.25, c.BufferPct)
}

func TestSetWindow(t *testing.T) {
	c := DefaultScheduleConfig()
	c.SetWindow(time.Friday, ScheduleWork, DayWindow{StartMin: 540, EndMin: 780, Enabled: true})

	fri := c.Window(time.Friday, ScheduleWork)
	assert.Equal(t, 540, fri.StartMin)
	assert.Equal(t, 780, fri.EndMin)

	c.SetWindow(time.Friday, ScheduleHome, DayWindow{})
	assert.False(t, c.Window(time.Friday, ScheduleHome).Enabled)
}

func TestOverrideKey(t *testing.T) {
	ts := time.Date(2026, 3, 10, 22, 15, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10", OverrideKey(ts))
}
