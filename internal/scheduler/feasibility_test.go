package scheduler

import (
	"testing"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckDeadline_Feasible(t *testing.T) {
	task := mkFlex("t", 500, domain.PriorityNormal)
	task.WorkedMin = 100
	task.DueDate = datePtr(monday.AddDate(0, 0, 2))

	report := CheckDeadline(testCtx(), task)

	assert.True(t, report.Feasible)
	assert.Equal(t, 400, report.RequiredMin)
	assert.Equal(t, 3*348, report.AvailableMin, "Monday through Wednesday inclusive")
	assert.Equal(t, 3, report.DaysChecked)
}

func TestCheckDeadline_Infeasible(t *testing.T) {
	task := mkFlex("t", 1100, domain.PriorityNormal)
	task.DueDate = datePtr(monday.AddDate(0, 0, 1))

	report := CheckDeadline(testCtx(), task)

	assert.False(t, report.Feasible)
	assert.Equal(t, 1100, report.RequiredMin)
	assert.Equal(t, 2*348, report.AvailableMin)
}

func TestCheckDeadline_NoDeadline(t *testing.T) {
	task := mkFlex("t", 1000, domain.PriorityNormal)
	report := CheckDeadline(testCtx(), task)

	assert.True(t, report.Feasible)
	assert.Equal(t, 0, report.DaysChecked)
}

func TestCheckDeadline_WeekendCountsHomeHours(t *testing.T) {
	// Monday through Sunday: five work days plus two flexible home days.
	task := mkFlex("t", 100, domain.PriorityNormal)
	task.DueDate = datePtr(monday.AddDate(0, 0, 6))

	report := CheckDeadline(testCtx(), task)

	homeNet := ComputeCapacity(domain.DefaultScheduleConfig().Home[0], 0.25).NetMin
	assert.Equal(t, 5*348+2*homeNet, report.AvailableMin)
	assert.Equal(t, 7, report.DaysChecked)
}

func TestCheckDeadline_PastDeadline(t *testing.T) {
	task := mkFlex("t", 60, domain.PriorityNormal)
	task.DueDate = datePtr(monday.AddDate(0, 0, -1))

	report := CheckDeadline(testCtx(), task)

	assert.False(t, report.Feasible)
	assert.Equal(t, 0, report.AvailableMin, "no plannable days remain")
}

func TestCheckDeadline_OverrideChangesCapacity(t *testing.T) {
	sctx := testCtx()
	sctx.Overrides[domain.OverrideKey(monday)] = domain.DayOverride{Date: monday, StartMin: 600, EndMin: 720}

	task := mkFlex("t", 60, domain.PriorityNormal)
	task.DueDate = datePtr(monday)

	report := CheckDeadline(sctx, task)

	assert.Equal(t, 90, report.AvailableMin, "120-minute override day minus 25% reserve")
	assert.True(t, report.Feasible)
}
