package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
	"github.com/lenacroft/tempo/internal/scheduler"
)

// ContextLoader assembles a ScheduleContext from persisted state: the
// weekly windows and buffer setting, day overrides, and the energy profile
// (stored category preferences overlaid on the built-in defaults).
type ContextLoader struct {
	schedule repository.ScheduleRepo
	prefs    repository.PreferenceRepo
}

func (l *ContextLoader) Load(ctx context.Context, now time.Time) (scheduler.ScheduleContext, error) {
	cfg, err := l.schedule.GetConfig(ctx)
	if err != nil {
		return scheduler.ScheduleContext{}, fmt.Errorf("loading schedule config: %w", err)
	}

	overrides, err := l.schedule.ListOverrides(ctx)
	if err != nil {
		return scheduler.ScheduleContext{}, fmt.Errorf("loading day overrides: %w", err)
	}

	stored, err := l.prefs.List(ctx)
	if err != nil {
		return scheduler.ScheduleContext{}, fmt.Errorf("loading category preferences: %w", err)
	}

	profile := scheduler.NewEnergyProfile(scheduler.DefaultEnergyWindows(), mergePreferences(stored))
	return scheduler.NewScheduleContext(*cfg, overrides, profile, now), nil
}

// mergePreferences overlays stored preference rows on the defaults, so a
// user who customized one category keeps the built-ins for the rest.
func mergePreferences(stored []domain.CategoryPreference) []domain.CategoryPreference {
	merged := scheduler.DefaultCategoryPreferences()
	byCat := make(map[domain.TaskCategory]int, len(merged))
	for i, p := range merged {
		byCat[p.Category] = i
	}
	for _, p := range stored {
		if i, ok := byCat[p.Category]; ok {
			merged[i] = p
		} else {
			merged = append(merged, p)
		}
	}
	return merged
}
