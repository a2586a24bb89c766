package formatter

import (
	"fmt"
	"strings"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/timeutil"
)

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "TITLE", "CATEGORY", "PRIORITY", "LEFT", "DUE", ""}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		id := t.ID
		if len(id) > 8 {
			id = id[:8]
		}

		title := Bold(t.Title)
		left := StyleFg.Render(timeutil.FormatDuration(t.RemainingMin()))
		if t.Kind == domain.KindContainer {
			title = StylePurple.Render(t.Title + "/")
			left = Dim("--")
		}
		if t.Completed {
			title = Dim(t.Title)
			left = Dim("done")
		}

		due := Dim("--")
		if t.DueDate != nil {
			due = StyleFg.Render(t.DueDate.Format("2006-01-02"))
		}

		rows = append(rows, []string{
			Dim(id),
			title,
			Dim(string(t.Category)),
			PriorityLabel(t.Priority),
			left,
			due,
			taskFlags(t),
		})
	}

	return RenderTable(headers, rows)
}

func taskFlags(t *domain.Task) string {
	var flags []string
	if t.TimerRunning {
		flags = append(flags, StyleGreen.Render("▶ timer"))
	}
	if t.FixedStartMin != nil {
		flags = append(flags, StylePurple.Render("@"+timeutil.MinutesToClock(*t.FixedStartMin)))
	}
	if t.RolledOver {
		flags = append(flags, StyleYellow.Render("rolled"))
	}
	if t.NotBefore != nil && !t.Completed {
		flags = append(flags, Dim("from "+t.NotBefore.Format("2006-01-02")))
	}
	return strings.Join(flags, " ")
}

// FormatCalendarList renders one day's appointments.
func FormatCalendarList(events []*domain.CalendarEvent) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			StyleBlue.Render(timeutil.MinutesToClock(e.StartMin)+"-"+timeutil.MinutesToClock(e.EndMin)),
			Bold(e.Title),
			Dim(e.ID[:minLen(8, len(e.ID))])))
	}
	return b.String()
}
