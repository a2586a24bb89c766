package scheduler

import (
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
)

// Recommendation is an advisory cross-day suggestion. It never mutates
// anything; applying it is the user's call.
type Recommendation struct {
	FromDate time.Time
	ToDate   time.Time
	Message  string
}

// WeekInput is seven days' worth of scheduling input, starting at
// StartDate. Calendar blocks and manual orderings are keyed by ISO date.
type WeekInput struct {
	StartDate    time.Time
	Tasks        []domain.Task
	Calendar     map[string][]CalendarBlock
	ManualOrders map[string]map[string]int
}

// WeekPlan aggregates seven day schedules with utilization statistics and
// cross-day recommendations.
type WeekPlan struct {
	StartDate time.Time
	Days      [7]DaySchedule

	TotalScheduledMin int
	TotalAvailableMin int
	TightDays         int
	OverloadedDays    int
	UtilizationPct    float64
	Status            domain.DayStatus

	Recommendations []Recommendation
}

// tightDaysForTightWeek is the number of tight days that makes the whole
// week tight.
const tightDaysForTightWeek = 3

// lightDayUtilizationPct marks a day light enough to absorb rebalanced work.
const lightDayUtilizationPct = 50.0

// ScheduleWeek runs the day scheduler for seven consecutive dates. Each
// task is offered to a single anchor day: the later of the week start and
// its start-not-before date. Tasks anchored past the horizon are left for
// a later week.
func ScheduleWeek(sctx ScheduleContext, in WeekInput) WeekPlan {
	start := domain.DayOf(in.StartDate)
	plan := WeekPlan{StartDate: start}

	buckets := bucketByAnchor(in.Tasks, start)

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		key := domain.OverrideKey(date)

		day := ScheduleDay(sctx, DayInput{
			Date:        date,
			Kind:        KindForDate(date),
			Tasks:       buckets[i],
			Calendar:    in.Calendar[key],
			ManualOrder: in.ManualOrders[key],
		})
		plan.Days[i] = day

		plan.TotalAvailableMin += day.Capacity.NetMin
		for _, b := range day.Blocks {
			plan.TotalScheduledMin += b.EndMin - b.StartMin
		}
		switch day.Status {
		case domain.DayTight:
			plan.TightDays++
		case domain.DayOverloaded:
			plan.OverloadedDays++
		}
	}

	if plan.TotalAvailableMin > 0 {
		plan.UtilizationPct = float64(plan.TotalScheduledMin) / float64(plan.TotalAvailableMin) * 100
	}
	plan.Status = weekStatus(plan)
	plan.Recommendations = rebalanceRecommendations(plan.Days)
	return plan
}

// AnchorDate picks the single day a task is offered to: the later of the
// given day and the task's start-not-before date.
func AnchorDate(t domain.Task, day time.Time) time.Time {
	anchor := domain.DayOf(day)
	if t.NotBefore != nil && domain.DayOf(*t.NotBefore).After(anchor) {
		anchor = domain.DayOf(*t.NotBefore)
	}
	return anchor
}

func bucketByAnchor(tasks []domain.Task, start time.Time) [7][]domain.Task {
	var buckets [7][]domain.Task
	for _, t := range tasks {
		if !t.Schedulable() {
			continue
		}
		offset := int(AnchorDate(t, start).Sub(start).Hours() / 24)
		if offset < 0 || offset > 6 {
			continue
		}
		buckets[offset] = append(buckets[offset], t)
	}
	return buckets
}

// weekStatus mirrors day thresholds: any overloaded day makes the week
// overloaded; three or more tight days make it tight.
func weekStatus(plan WeekPlan) domain.DayStatus {
	if plan.OverloadedDays > 0 {
		return domain.DayOverloaded
	}
	if plan.TightDays >= tightDaysForTightWeek {
		return domain.DayTight
	}
	if plan.TotalScheduledMin == 0 {
		return domain.DayEmpty
	}
	return domain.DayOK
}

// rebalanceRecommendations pairs each overloaded day with the first day
// light enough (under 50% utilization) to take work from it.
func rebalanceRecommendations(days [7]DaySchedule) []Recommendation {
	var recs []Recommendation
	for _, over := range days {
		if over.Status != domain.DayOverloaded {
			continue
		}
		for _, light := range days {
			if !light.Capacity.Enabled || light.Status == domain.DayOverloaded {
				continue
			}
			if domain.SameDay(light.Date, over.Date) || light.UtilizationPct >= lightDayUtilizationPct {
				continue
			}
			recs = append(recs, Recommendation{
				FromDate: over.Date,
				ToDate:   light.Date,
				Message: fmt.Sprintf("%s is overloaded; %s is under %d%% utilized, consider moving work there",
					over.Date.Format("Mon Jan 2"), light.Date.Format("Mon Jan 2"), int(lightDayUtilizationPct)),
			})
			break
		}
	}
	return recs
}
