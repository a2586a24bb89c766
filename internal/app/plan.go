package app

import (
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// PlanDayRequest asks for a single day's schedule. Nil fields fall back to
// the current clock: Date defaults to today, Kind to the date's natural
// schedule (work on weekdays, home on weekends).
type PlanDayRequest struct {
	Now  *time.Time
	Date *time.Time
	Kind *domain.ScheduleKind
}

type DayPlanView struct {
	Date     string
	Weekday  string
	Kind     domain.ScheduleKind
	Status   domain.DayStatus
	Capacity CapacityView

	Blocks    []BlockView
	Unplaced  []UnplacedView
	Conflicts []ConflictView
	Overflows []OverflowView

	PlacedMin      int
	UtilizationPct float64
}

type PlanDayResponse struct {
	Day      DayPlanView
	Warnings []string
}

// PlanWeekRequest asks for a seven-day plan starting at StartDate (default:
// today).
type PlanWeekRequest struct {
	Now       *time.Time
	StartDate *time.Time
}

type RecommendationView struct {
	FromDate string
	ToDate   string
	Message  string
}

type PlanWeekResponse struct {
	StartDate string
	Status    domain.DayStatus
	Days      [7]DayPlanView

	TotalScheduledMin int
	TotalAvailableMin int
	TightDays         int
	OverloadedDays    int
	UtilizationPct    float64

	Recommendations []RecommendationView
	Warnings        []string
}

type PlanErrorCode string

const (
	PlanErrInvalidDate PlanErrorCode = "INVALID_DATE"
	PlanErrInvalidKind PlanErrorCode = "INVALID_KIND"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
