package service

import (
	"fmt"

	"github.com/lenacroft/tempo/internal/app"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/scheduler"
	"github.com/lenacroft/tempo/internal/timeutil"
)

const dateLayout = "2006-01-02"

func capacityView(win domain.DayWindow, cap scheduler.Capacity) app.CapacityView {
	return app.CapacityView{
		WindowStart: timeutil.MinutesToClock(win.StartMin),
		WindowEnd:   timeutil.MinutesToClock(win.EndMin),
		TotalMin:    cap.TotalMin,
		BufferMin:   cap.BufferMin,
		NetMin:      cap.NetMin,
		Enabled:     cap.Enabled,
		Flexible:    cap.Flexible,
	}
}

func blockView(b scheduler.ScheduledBlock) app.BlockView {
	return app.BlockView{
		TaskID:   b.TaskID,
		Title:    b.Title,
		Start:    timeutil.MinutesToClock(b.StartMin),
		End:      timeutil.MinutesToClock(b.EndMin),
		StartMin: b.StartMin,
		EndMin:   b.EndMin,
		Fixed:    b.Fixed,
		External: b.External,
		Source:   b.Source,
		Optimal:  b.InPreferredWindow,
	}
}

func conflictView(c scheduler.ConflictWarning) app.ConflictView {
	v := app.ConflictView{
		TaskID:      c.TaskID,
		OtherTaskID: c.OtherTaskID,
		OverlapMin:  c.OverlapMin,
		Resolvable:  c.Resolvable,
	}
	if c.Resolvable {
		v.ShiftTaskID = c.ShiftTaskID
		v.SuggestedStart = timeutil.MinutesToClock(c.SuggestedStartMin)
	}
	return v
}

func moveView(m scheduler.TaskMove) app.MoveView {
	return app.MoveView{
		TaskID:       m.TaskID,
		Title:        m.Title,
		Priority:     m.Priority,
		RemainingMin: m.RemainingMin,
		FromDate:     m.FromDate.Format(dateLayout),
		ToDate:       m.ToDate.Format(dateLayout),
	}
}

// dayPlanView flattens one day schedule for presentation. Overflow titles
// come from the supplied title index since the engine reports IDs only.
func dayPlanView(ds scheduler.DaySchedule, win domain.DayWindow, titles map[string]string) app.DayPlanView {
	v := app.DayPlanView{
		Date:           ds.Date.Format(dateLayout),
		Weekday:        ds.Date.Weekday().String(),
		Kind:           ds.Kind,
		Status:         ds.Status,
		Capacity:       capacityView(win, ds.Capacity),
		PlacedMin:      ds.PlacedMin,
		UtilizationPct: ds.UtilizationPct,
	}
	for _, b := range ds.Blocks {
		v.Blocks = append(v.Blocks, blockView(b))
	}
	for _, t := range ds.Unplaced {
		v.Unplaced = append(v.Unplaced, app.UnplacedView{
			TaskID:       t.ID,
			Title:        t.Title,
			Category:     t.Category,
			Priority:     t.Priority,
			RemainingMin: t.RemainingMin(),
		})
	}
	for _, c := range ds.Conflicts {
		v.Conflicts = append(v.Conflicts, conflictView(c))
	}
	for _, o := range ds.Overflows {
		v.Overflows = append(v.Overflows, app.OverflowView{
			TaskID:      o.TaskID,
			Title:       titles[o.TaskID],
			OverflowMin: o.OverflowMin,
		})
	}
	return v
}

func dayWarnings(ds scheduler.DaySchedule) []string {
	var warnings []string
	date := ds.Date.Format(dateLayout)
	if !ds.Capacity.Enabled && len(ds.Unplaced) > 0 {
		warnings = append(warnings, fmt.Sprintf("%s has no working window; %d task(s) left unplaced", date, len(ds.Unplaced)))
	}
	if n := len(ds.Conflicts); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%s has %d overlapping fixed block(s)", date, n))
	}
	if n := len(ds.Overflows); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%s has %d block(s) running past the day end", date, n))
	}
	return warnings
}

// titleIndex maps task and calendar block IDs to display titles.
func titleIndex(tasks []*domain.Task, events []*domain.CalendarEvent) map[string]string {
	titles := make(map[string]string, len(tasks)+len(events))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	for _, e := range events {
		titles[e.ID] = e.Title
	}
	return titles
}
