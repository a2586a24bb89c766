package formatter

import (
	"fmt"
	"strings"

	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/timeutil"
)

// FormatDayPlan renders one day's schedule as a timeline.
func FormatDayPlan(resp *contract.PlanDayResponse) string {
	day := resp.Day
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s %s\n", StatusIndicator(day.Status), Bold(day.Date), Dim("("+day.Weekday+", "+string(day.Kind)+")")))
	if day.Capacity.Enabled {
		b.WriteString(Dim(fmt.Sprintf("Window %s-%s, %s plannable after %s buffer",
			day.Capacity.WindowStart, day.Capacity.WindowEnd,
			timeutil.FormatDuration(day.Capacity.NetMin),
			timeutil.FormatDuration(day.Capacity.BufferMin))) + "\n")
	} else {
		b.WriteString(Dim("No working window on this day") + "\n")
	}
	b.WriteString("\n")

	if len(day.Blocks) == 0 {
		b.WriteString(Dim("Nothing scheduled.") + "\n")
	}
	for _, block := range day.Blocks {
		b.WriteString(fmt.Sprintf("%s  %s%s\n",
			StyleBlue.Render(block.Start+"-"+block.End),
			StyleFg.Render(block.Title),
			blockTag(block)))
	}

	if len(day.Unplaced) > 0 {
		b.WriteString("\n" + Header("Unplaced") + "\n")
		for _, u := range day.Unplaced {
			b.WriteString(fmt.Sprintf("  %s (%s, %s)\n",
				StyleFg.Render(u.Title), timeutil.FormatDuration(u.RemainingMin), PriorityLabel(u.Priority)))
		}
	}

	if len(day.Conflicts) > 0 {
		b.WriteString("\n" + Header("Conflicts") + "\n")
		for _, c := range day.Conflicts {
			b.WriteString("  " + formatConflict(c) + "\n")
		}
	}

	if len(day.Overflows) > 0 {
		b.WriteString("\n" + Header("Past end of day") + "\n")
		for _, o := range day.Overflows {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s runs %s over", o.Title, timeutil.FormatDuration(o.OverflowMin))) + "\n")
		}
	}

	for _, w := range resp.Warnings {
		b.WriteString("\n" + StyleYellow.Render("WARNING: "+w))
	}

	if day.PlacedMin > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%s placed, %.0f%% utilized",
			timeutil.FormatDuration(day.PlacedMin), day.UtilizationPct)) + "\n")
	}

	return RenderBox("Plan", b.String())
}

func blockTag(block contract.BlockView) string {
	switch {
	case block.External:
		return " " + StyleBlue.Render("[cal]")
	case block.Fixed:
		return " " + StylePurple.Render("[pinned]")
	case block.Source == domain.SourceRolledOver:
		return " " + Dim("(rolled over)")
	case !block.Optimal:
		return " " + Dim("(off-peak)")
	default:
		return ""
	}
}

func formatConflict(c contract.ConflictView) string {
	base := fmt.Sprintf("%s overlaps %s by %s", c.TaskID[:minLen(8, len(c.TaskID))], c.OtherTaskID[:minLen(8, len(c.OtherTaskID))], timeutil.FormatDuration(c.OverlapMin))
	if !c.Resolvable {
		return StyleRed.Render(base) + " " + Dim("(both external, resolve by hand)")
	}
	return StyleYellow.Render(base) + " " + Dim(fmt.Sprintf("(shift %s to %s?)", c.ShiftTaskID[:minLen(8, len(c.ShiftTaskID))], c.SuggestedStart))
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FormatWeekPlan renders the seven-day overview table.
func FormatWeekPlan(resp *contract.PlanWeekResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", StatusIndicator(resp.Status), Bold("Week of "+resp.StartDate)))

	headers := []string{"DAY", "DATE", "STATUS", "PLANNED", "UNPLACED", "UTIL"}
	rows := make([][]string, 0, 7)
	for _, day := range resp.Days {
		planned := "--"
		if len(day.Blocks) > 0 {
			var min int
			for _, block := range day.Blocks {
				min += block.EndMin - block.StartMin
			}
			planned = timeutil.FormatDuration(min)
		}
		unplaced := Dim("--")
		if n := len(day.Unplaced); n > 0 {
			unplaced = StyleYellow.Render(fmt.Sprintf("%d", n))
		}
		util := Dim("--")
		if day.Capacity.Enabled {
			util = StatusColor(day.Status).Render(fmt.Sprintf("%.0f%%", day.UtilizationPct))
		}
		rows = append(rows, []string{
			StyleFg.Render(day.Weekday[:3]),
			Dim(day.Date),
			StatusIndicator(day.Status),
			StyleFg.Render(planned),
			unplaced,
			util,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n" + Dim(fmt.Sprintf("%s scheduled of %s available (%.0f%%)",
		timeutil.FormatDuration(resp.TotalScheduledMin),
		timeutil.FormatDuration(resp.TotalAvailableMin),
		resp.UtilizationPct)) + "\n")

	if len(resp.Recommendations) > 0 {
		b.WriteString("\n" + Header("Suggestions") + "\n")
		for _, r := range resp.Recommendations {
			b.WriteString("  " + StyleYellow.Render(r.Message) + "\n")
		}
	}
	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("WARNING: "+w) + "\n")
		}
	}

	return RenderBox("Week", b.String())
}
