package scheduler

import (
	"testing"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleDay_OverCapacityLeavesTaskUnplaced(t *testing.T) {
	// Work day 08:30-16:15, 25% buffer => net 348 minutes. Three flexible
	// tasks of 200, 100, 80: the first two fit (300 <= 348), the third
	// does not.
	ds := ScheduleDay(testCtx(), DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFlex("t1", 200, domain.PriorityNormal),
			mkFlex("t2", 100, domain.PriorityNormal),
			mkFlex("t3", 80, domain.PriorityNormal),
		},
	})

	assert.Equal(t, 348, ds.Capacity.NetMin)
	require.Len(t, ds.Blocks, 2)
	assert.Equal(t, 300, ds.PlacedMin)
	require.Len(t, ds.Unplaced, 1)
	assert.Equal(t, "t3", ds.Unplaced[0].ID)
	assert.Equal(t, domain.DayOverloaded, ds.Status)
}

func TestScheduleDay_PlacesEarliestFirst(t *testing.T) {
	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{mkFlex("t1", 60, domain.PriorityNormal)},
	})

	require.Len(t, ds.Blocks, 1)
	assert.Equal(t, 510, ds.Blocks[0].StartMin, "work starts at day start")
	assert.Equal(t, 570, ds.Blocks[0].EndMin)
	assert.Equal(t, domain.DayOK, ds.Status)
}

func TestScheduleDay_FixedTasksNeverRefused(t *testing.T) {
	// A fixed task past day end is placed anyway and flagged.
	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{mkFixed("pin", 950, 60)},
	})

	require.Len(t, ds.Blocks, 1)
	assert.True(t, ds.Blocks[0].Fixed)
	assert.Equal(t, domain.SourceFixed, ds.Blocks[0].Source)
	require.Len(t, ds.Overflows, 1)
	assert.Equal(t, "pin", ds.Overflows[0].TaskID)
	assert.Equal(t, 35, ds.Overflows[0].OverflowMin, "1010 vs day end 975")
}

func TestScheduleDay_DoubleBookedFixedTasks(t *testing.T) {
	ds := ScheduleDay(testCtx(), DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFixed("t1", 540, 30),
			mkFixed("t2", 540, 30),
		},
	})

	require.Len(t, ds.Conflicts, 1)
	assert.Equal(t, 30, ds.Conflicts[0].OverlapMin)
	assert.Equal(t, "t2", ds.Conflicts[0].ShiftTaskID)
	assert.Equal(t, 570, ds.Conflicts[0].SuggestedStartMin)
	require.Len(t, ds.Blocks, 2, "both stay on the plan; only flagged")
}

func TestScheduleDay_FlexibleAvoidsFixed(t *testing.T) {
	ds := ScheduleDay(testCtx(), DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFixed("pin", 510, 120),
			mkFlex("flex", 60, domain.PriorityNormal),
		},
	})

	require.Len(t, ds.Blocks, 2)
	var flex ScheduledBlock
	for _, b := range ds.Blocks {
		if b.TaskID == "flex" {
			flex = b
		}
	}
	assert.Equal(t, 635, flex.StartMin, "after the fixed block plus breathing")
}

func TestScheduleDay_CalendarBlocksOccupyTime(t *testing.T) {
	ds := ScheduleDay(testCtx(), DayInput{
		Date:     monday,
		Kind:     domain.ScheduleWork,
		Tasks:    []domain.Task{mkFlex("flex", 60, domain.PriorityNormal)},
		Calendar: []CalendarBlock{{ID: "cal-1", Title: "Client call", StartMin: 510, EndMin: 600}},
	})

	require.Len(t, ds.Blocks, 2)
	assert.True(t, ds.Blocks[0].External)
	assert.Equal(t, "cal-1", ds.Blocks[0].TaskID)
	assert.Equal(t, 605, ds.Blocks[1].StartMin, "flexible work slots after the event")
}

func TestScheduleDay_EnergyWindowPreference(t *testing.T) {
	admin := mkFlex("admin", 30, domain.PriorityNormal)
	admin.Category = domain.CategoryAdmin

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{admin},
	})

	require.Len(t, ds.Blocks, 1)
	assert.Equal(t, 930, ds.Blocks[0].StartMin, "admin prefers late afternoon, not day start")
	assert.True(t, ds.Blocks[0].InPreferredWindow)
}

func TestScheduleDay_EnergyWindowFallback(t *testing.T) {
	// 200 minutes fits no admin-preferred window inside the work day, so
	// placement falls back outside them. Admin avoids the early morning,
	// so the fallback starts after it rather than at the day start.
	admin := mkFlex("admin", 200, domain.PriorityNormal)
	admin.Category = domain.CategoryAdmin

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{admin},
	})

	require.Len(t, ds.Blocks, 1)
	assert.Equal(t, 600, ds.Blocks[0].StartMin, "fallback skips the avoided early morning")
	assert.False(t, ds.Blocks[0].InPreferredWindow)
}

func TestScheduleDay_AvoidedWindowIsLastResort(t *testing.T) {
	// A pinned block covers everything past the early morning, so the
	// only remaining space is admin's avoided window. The task still
	// lands there rather than going unplaced, marked not optimal.
	admin := mkFlex("admin", 60, domain.PriorityNormal)
	admin.Category = domain.CategoryAdmin

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{mkFixed("pin", 600, 375), admin},
	})

	starts := map[string]int{}
	for _, b := range ds.Blocks {
		starts[b.TaskID] = b.StartMin
	}
	require.Contains(t, starts, "admin")
	assert.Equal(t, 510, starts["admin"], "only the avoided early morning is free")
	for _, b := range ds.Blocks {
		if b.TaskID == "admin" {
			assert.False(t, b.InPreferredWindow)
		}
	}
}

func TestScheduleDay_PriorityMonotonicity(t *testing.T) {
	// When every task fits, the urgent one claims the earliest start.
	// When capacity forces a choice, the urgent task is placed and the
	// normal one goes unplaced, never the other way around.
	ds := ScheduleDay(testCtx(), DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFlex("norm", 100, domain.PriorityNormal),
			mkFlex("high", 100, domain.PriorityHigh),
			mkFlex("urg", 120, domain.PriorityUrgent),
		},
	})

	require.Empty(t, ds.Unplaced)
	require.Len(t, ds.Blocks, 3)
	for _, b := range ds.Blocks {
		if b.TaskID != "urg" {
			assert.Greater(t, b.StartMin, 510, "urgent work schedules first")
		}
	}
	assert.Equal(t, 510, ds.Blocks[0].StartMin)
	assert.Equal(t, "urg", ds.Blocks[0].TaskID)

	ds = ScheduleDay(testCtx(), DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFlex("norm", 200, domain.PriorityNormal),
			mkFlex("urg", 200, domain.PriorityUrgent),
		},
	})

	require.Len(t, ds.Blocks, 1)
	assert.Equal(t, "urg", ds.Blocks[0].TaskID)
	require.Len(t, ds.Unplaced, 1)
	assert.Equal(t, "norm", ds.Unplaced[0].ID)
}

func TestScheduleDay_FragmentationLeavesUnplaced(t *testing.T) {
	// Net capacity has headroom (348 - 150 fixed-in-window), but no single
	// gap fits 150 consecutive minutes.
	ds := ScheduleDay(testCtx(), DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFixed("pin", 600, 300),
			mkFlex("big", 150, domain.PriorityNormal),
		},
	})

	require.Len(t, ds.Unplaced, 1)
	assert.Equal(t, "big", ds.Unplaced[0].ID)
	assert.Equal(t, domain.DayOverloaded, ds.Status)
}

func TestScheduleDay_DisabledDay(t *testing.T) {
	// Sunday has no work window; even pinned tasks fall through.
	sunday := monday.AddDate(0, 0, -1)
	ds := ScheduleDay(testCtx(), DayInput{
		Date:  sunday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{mkFixed("pin", 540, 30), mkFlex("flex", 60, domain.PriorityNormal)},
	})

	assert.Equal(t, domain.DayEmpty, ds.Status)
	assert.Empty(t, ds.Blocks)
	assert.Len(t, ds.Unplaced, 2)
}

func TestScheduleDay_NoCandidates(t *testing.T) {
	ds := ScheduleDay(testCtx(), DayInput{Date: monday, Kind: domain.ScheduleWork})
	assert.Equal(t, domain.DayEmpty, ds.Status)
}

func TestScheduleDay_ContainersExcluded(t *testing.T) {
	parent := mkFlex("parent", 300, domain.PriorityNormal)
	parent.Kind = domain.KindContainer
	child := mkFlex("child", 60, domain.PriorityNormal)
	child.ParentID = "parent"

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{parent, child},
	})

	require.Len(t, ds.Blocks, 1)
	assert.Equal(t, "child", ds.Blocks[0].TaskID)
	assert.Empty(t, ds.Unplaced, "containers are not candidates at all")
}

func TestScheduleDay_NotBeforeExcludesTask(t *testing.T) {
	future := mkFlex("later", 60, domain.PriorityNormal)
	future.NotBefore = datePtr(monday.AddDate(0, 0, 2))

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{future},
	})

	assert.Empty(t, ds.Blocks)
	assert.Empty(t, ds.Unplaced)
	assert.Equal(t, domain.DayEmpty, ds.Status)
}

func TestScheduleDay_DayOverrideWins(t *testing.T) {
	sctx := testCtx()
	sctx.Overrides[domain.OverrideKey(monday)] = domain.DayOverride{
		Date:     monday,
		StartMin: 600,
		EndMin:   720,
	}

	ds := ScheduleDay(sctx, DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{mkFlex("t1", 30, domain.PriorityNormal)},
	})

	assert.Equal(t, 120, ds.Capacity.TotalMin)
	require.Len(t, ds.Blocks, 1)
	assert.Equal(t, 600, ds.Blocks[0].StartMin)
}

func TestScheduleDay_BlockSources(t *testing.T) {
	due := mkFlex("due", 30, domain.PriorityNormal)
	due.DueDate = datePtr(monday)
	rolled := mkFlex("rolled", 30, domain.PriorityNormal)
	rolled.RolledOver = true
	ahead := mkFlex("ahead", 30, domain.PriorityNormal)
	ahead.DueDate = datePtr(monday.AddDate(0, 0, 5))

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{due, rolled, ahead},
	})

	sources := map[string]domain.BlockSource{}
	for _, b := range ds.Blocks {
		sources[b.TaskID] = b.Source
	}
	assert.Equal(t, domain.SourceDeadlineDriven, sources["due"])
	assert.Equal(t, domain.SourceRolledOver, sources["rolled"])
	assert.Equal(t, domain.SourceProactiveFill, sources["ahead"])
}

func TestScheduleDay_Deterministic(t *testing.T) {
	input := DayInput{
		Date: monday,
		Kind: domain.ScheduleWork,
		Tasks: []domain.Task{
			mkFlex("a", 90, domain.PriorityHigh),
			mkFlex("b", 45, domain.PriorityNormal),
			mkFixed("c", 600, 30),
			mkFlex("d", 120, domain.PriorityUrgent),
		},
		Calendar: []CalendarBlock{{ID: "cal", Title: "Standup", StartMin: 540, EndMin: 555}},
	}

	first := ScheduleDay(testCtx(), input)
	second := ScheduleDay(testCtx(), input)
	assert.Equal(t, first, second, "identical input must yield identical output")
}

func TestScheduleDay_TightStatus(t *testing.T) {
	// 330 of 348 net minutes is ~95% utilization.
	ds := ScheduleDay(testCtx(), DayInput{
		Date:  monday,
		Kind:  domain.ScheduleWork,
		Tasks: []domain.Task{mkFlex("big", 330, domain.PriorityNormal)},
	})

	assert.Empty(t, ds.Unplaced)
	assert.Equal(t, domain.DayTight, ds.Status)
}

func TestScheduleDay_FlexibleDayNotCapped(t *testing.T) {
	// Saturday home time is flexible: 400 minutes exceeds net capacity
	// but is placed anyway.
	saturday := monday.AddDate(0, 0, 5)
	require.Equal(t, time.Saturday, saturday.Weekday())

	ds := ScheduleDay(testCtx(), DayInput{
		Date:  saturday,
		Kind:  domain.ScheduleHome,
		Tasks: []domain.Task{mkFlex("chores", 520, domain.PriorityNormal)},
	})

	assert.True(t, ds.Capacity.Flexible)
	require.Len(t, ds.Blocks, 1)
	assert.NotEqual(t, domain.DayTight, ds.Status, "flexible days are never tight")
}
