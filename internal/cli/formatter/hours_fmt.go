package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/timeutil"
)

// FormatScheduleConfig renders the weekly defaults plus any active
// date overrides.
func FormatScheduleConfig(cfg *domain.ScheduleConfig, overrides map[string]domain.DayOverride) string {
	headers := []string{"DAY", "WORK", "HOME"}
	rows := make([][]string, 0, 7)

	// Week starts Monday for display even though storage is Sunday-indexed.
	for i := 0; i < 7; i++ {
		d := time.Weekday((i + 1) % 7)
		rows = append(rows, []string{
			Bold(d.String()[:3]),
			windowLabel(cfg.Work[d]),
			windowLabel(cfg.Home[d]),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Interruption buffer: %s\n", StyleFg.Render(fmt.Sprintf("%.0f%%", cfg.BufferPct*100))))

	if len(overrides) > 0 {
		keys := make([]string, 0, len(overrides))
		for k := range overrides {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\n" + Header("Overrides") + "\n")
		for _, k := range keys {
			ov := overrides[k]
			label := StyleRed.Render("off")
			if ov.EndMin > ov.StartMin {
				label = StyleFg.Render(timeutil.MinutesToClock(ov.StartMin) + "-" + timeutil.MinutesToClock(ov.EndMin))
			}
			line := fmt.Sprintf("%s  %s", StyleYellow.Render(k), label)
			if ov.Reason != "" {
				line += "  " + Dim(ov.Reason)
			}
			b.WriteString(line + "\n")
		}
	}

	return RenderBox("Hours", strings.TrimRight(b.String(), "\n"))
}

func windowLabel(w domain.DayWindow) string {
	if !w.Enabled {
		return Dim("--")
	}
	label := timeutil.MinutesToClock(w.StartMin) + "-" + timeutil.MinutesToClock(w.EndMin)
	if w.Flexible {
		return StyleGreen.Render(label) + Dim(" (flexible)")
	}
	return StyleFg.Render(label)
}
