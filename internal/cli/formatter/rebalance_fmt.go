package formatter

import (
	"fmt"
	"strings"

	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/timeutil"
)

// FormatRebalance renders a rebalance proposal or application report.
func FormatRebalance(resp *contract.RebalanceResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s, %s of capacity left, %s still pending\n",
		Bold(resp.Date),
		timeutil.FormatDuration(resp.RemainingCapacityMin),
		timeutil.FormatDuration(resp.RequiredMin)))

	switch {
	case resp.DeficitMin > 0:
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Short by %s", timeutil.FormatDuration(resp.DeficitMin))) + "\n")
	case resp.SurplusMin > 0:
		b.WriteString(StyleGreen.Render(fmt.Sprintf("Ahead by %s", timeutil.FormatDuration(resp.SurplusMin))) + "\n")
	default:
		b.WriteString(StyleGreen.Render("Day is in balance") + "\n")
	}

	if len(resp.MoveToTomorrow) > 0 {
		b.WriteString("\n" + Header(fmt.Sprintf("Move to %s", resp.TomorrowDate)) + "\n")
		for _, m := range resp.MoveToTomorrow {
			b.WriteString(fmt.Sprintf("  %s (%s, %s)\n", StyleFg.Render(m.Title), timeutil.FormatDuration(m.RemainingMin), PriorityLabel(m.Priority)))
		}
	}
	if len(resp.PullToToday) > 0 {
		b.WriteString("\n" + Header("Pull into today") + "\n")
		for _, m := range resp.PullToToday {
			b.WriteString(fmt.Sprintf("  %s (%s)\n", StyleFg.Render(m.Title), timeutil.FormatDuration(m.RemainingMin)))
		}
	}

	if resp.ResidualDeficitMin > 0 {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf(
			"%s cannot be moved (urgent, pinned or running work); expect overtime",
			timeutil.FormatDuration(resp.ResidualDeficitMin))) + "\n")
	}

	if len(resp.Overflows) > 0 {
		b.WriteString("\n" + Header("Past end of day") + "\n")
		for _, o := range resp.Overflows {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s runs %s over", o.Title, timeutil.FormatDuration(o.OverflowMin))) + "\n")
		}
	}

	b.WriteString("\n")
	if resp.Applied {
		if len(resp.AppliedMoves) == 0 {
			b.WriteString(Dim("Nothing to apply.") + "\n")
		} else {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("Applied %d move(s).", len(resp.AppliedMoves))) + "\n")
		}
	} else if len(resp.MoveToTomorrow) > 0 || len(resp.PullToToday) > 0 {
		b.WriteString(Dim("Preview only. Re-run with --apply to persist.") + "\n")
	}

	return RenderBox("Rebalance", b.String())
}

// FormatFeasibility renders a deadline feasibility check.
func FormatFeasibility(resp *contract.FeasibilityResponse) string {
	var b strings.Builder

	b.WriteString(Bold(resp.Title) + "\n")
	if resp.Deadline == nil {
		b.WriteString(StyleGreen.Render("No deadline, always feasible") + "\n")
		return RenderBox("Feasibility", b.String())
	}

	b.WriteString(Dim(fmt.Sprintf("Due %s, %s remaining, %s plannable across %d day(s)",
		*resp.Deadline,
		timeutil.FormatDuration(resp.RequiredMin),
		timeutil.FormatDuration(resp.AvailableMin),
		resp.DaysChecked)) + "\n\n")

	if resp.Feasible {
		b.WriteString(StyleGreen.Render("● FITS before the deadline") + "\n")
	} else {
		short := resp.RequiredMin - resp.AvailableMin
		b.WriteString(StyleRed.Render(fmt.Sprintf("● DOES NOT FIT, short by %s", timeutil.FormatDuration(short))) + "\n")
	}

	return RenderBox("Feasibility", b.String())
}
