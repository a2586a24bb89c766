package formatter

import (
	"testing"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatScheduleConfig_Defaults(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()

	out := stripANSI(FormatScheduleConfig(&cfg, nil))
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "08:30-16:15")
	assert.Contains(t, out, "18:00-21:00")
	assert.Contains(t, out, "09:00-20:00 (flexible)")
	assert.Contains(t, out, "Interruption buffer: 25%")
	assert.NotContains(t, out, "OVERRIDES")
}

func TestFormatScheduleConfig_Overrides(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	overrides := map[string]domain.DayOverride{
		domain.OverrideKey(date): {Date: date, StartMin: 540, EndMin: 720, Reason: "doctor in the afternoon"},
		domain.OverrideKey(date.AddDate(0, 0, 1)): {Date: date.AddDate(0, 0, 1)},
	}

	out := stripANSI(FormatScheduleConfig(&cfg, overrides))
	assert.Contains(t, out, "OVERRIDES")
	assert.Contains(t, out, "2026-03-11  09:00-12:00  doctor in the afternoon")
	assert.Contains(t, out, "2026-03-12  off")
}
