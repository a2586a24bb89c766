package domain

import "time"

// CalendarEvent is an external appointment occupying part of a day. Events
// are immovable: the planner schedules around them and only warns on
// overlap.
type CalendarEvent struct {
	ID        string
	Date      time.Time
	Title     string
	StartMin  int
	EndMin    int
	CreatedAt time.Time
}
