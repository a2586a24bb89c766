package scheduler

import (
	"testing"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleWeek_SevenDays(t *testing.T) {
	plan := ScheduleWeek(testCtx(), WeekInput{
		StartDate: monday,
		Tasks:     []domain.Task{mkFlex("t1", 60, domain.PriorityNormal)},
	})

	assert.Equal(t, monday, plan.StartDate)
	for i := 0; i < 7; i++ {
		assert.Equal(t, monday.AddDate(0, 0, i), plan.Days[i].Date)
	}
	assert.Equal(t, domain.ScheduleWork, plan.Days[0].Kind)
	assert.Equal(t, domain.ScheduleHome, plan.Days[5].Kind, "Saturday plans against home hours")
	assert.Equal(t, domain.ScheduleHome, plan.Days[6].Kind)
}

func TestScheduleWeek_AnchorsByNotBefore(t *testing.T) {
	today := mkFlex("today", 60, domain.PriorityNormal)
	wednesday := mkFlex("wed", 60, domain.PriorityNormal)
	wednesday.NotBefore = datePtr(monday.AddDate(0, 0, 2))
	nextWeek := mkFlex("next", 60, domain.PriorityNormal)
	nextWeek.NotBefore = datePtr(monday.AddDate(0, 0, 9))

	plan := ScheduleWeek(testCtx(), WeekInput{
		StartDate: monday,
		Tasks:     []domain.Task{today, wednesday, nextWeek},
	})

	require.Len(t, plan.Days[0].Blocks, 1)
	assert.Equal(t, "today", plan.Days[0].Blocks[0].TaskID)
	require.Len(t, plan.Days[2].Blocks, 1)
	assert.Equal(t, "wed", plan.Days[2].Blocks[0].TaskID)

	for i := 0; i < 7; i++ {
		for _, b := range plan.Days[i].Blocks {
			assert.NotEqual(t, "next", b.TaskID, "tasks beyond the horizon wait for a later week")
		}
	}
}

func TestScheduleWeek_Aggregates(t *testing.T) {
	plan := ScheduleWeek(testCtx(), WeekInput{
		StartDate: monday,
		Tasks:     []domain.Task{mkFlex("t1", 120, domain.PriorityNormal)},
	})

	assert.Equal(t, 120, plan.TotalScheduledMin)
	assert.Greater(t, plan.TotalAvailableMin, 0)
	assert.Equal(t, domain.DayOK, plan.Status)
}

func TestScheduleWeek_OverloadedDayOverloadsWeek(t *testing.T) {
	plan := ScheduleWeek(testCtx(), WeekInput{
		StartDate: monday,
		Tasks: []domain.Task{
			mkFlex("a", 200, domain.PriorityNormal),
			mkFlex("b", 200, domain.PriorityNormal),
		},
	})

	assert.Equal(t, 1, plan.OverloadedDays)
	assert.Equal(t, domain.DayOverloaded, plan.Status)
}

func TestScheduleWeek_RebalanceRecommendation(t *testing.T) {
	plan := ScheduleWeek(testCtx(), WeekInput{
		StartDate: monday,
		Tasks: []domain.Task{
			mkFlex("a", 200, domain.PriorityNormal),
			mkFlex("b", 200, domain.PriorityNormal),
		},
	})

	require.NotEmpty(t, plan.Recommendations)
	rec := plan.Recommendations[0]
	assert.Equal(t, monday, rec.FromDate, "the overloaded day")
	assert.Equal(t, monday.AddDate(0, 0, 1), rec.ToDate, "the first light day")
	assert.Contains(t, rec.Message, "overloaded")
}

func TestScheduleWeek_EmptyWeek(t *testing.T) {
	plan := ScheduleWeek(testCtx(), WeekInput{StartDate: monday})
	assert.Equal(t, domain.DayEmpty, plan.Status)
	assert.Empty(t, plan.Recommendations)
}

func TestAnchorDate(t *testing.T) {
	task := mkFlex("t", 30, domain.PriorityNormal)
	assert.Equal(t, monday, AnchorDate(task, monday), "no constraint anchors to the given day")

	past := monday.AddDate(0, 0, -3)
	task.NotBefore = &past
	assert.Equal(t, monday, AnchorDate(task, monday), "past not-before does not pull backwards")

	future := monday.AddDate(0, 0, 3)
	task.NotBefore = &future
	assert.Equal(t, future, AnchorDate(task, monday))
}

func TestScheduleWeek_CalendarKeyedByDate(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	plan := ScheduleWeek(testCtx(), WeekInput{
		StartDate: monday,
		Calendar: map[string][]CalendarBlock{
			domain.OverrideKey(tuesday): {{ID: "cal", Title: "Review", StartMin: 540, EndMin: 600}},
		},
	})

	assert.Empty(t, plan.Days[0].Blocks)
	require.Len(t, plan.Days[1].Blocks, 1)
	assert.Equal(t, "cal", plan.Days[1].Blocks[0].TaskID)
}

func TestScheduleWeek_Deterministic(t *testing.T) {
	in := WeekInput{
		StartDate: monday,
		Tasks: []domain.Task{
			mkFlex("a", 90, domain.PriorityHigh),
			mkFlex("b", 45, domain.PriorityNormal),
			mkFixed("c", 600, 30),
		},
	}
	assert.Equal(t, ScheduleWeek(testCtx(), in), ScheduleWeek(testCtx(), in))
}
