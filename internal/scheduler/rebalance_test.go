package scheduler

import (
	"testing"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tuesday is the next working day after monday.
var tuesday = monday.AddDate(0, 0, 1)

func moveIDs(moves []TaskMove) []string {
	ids := make([]string, len(moves))
	for i, m := range moves {
		ids[i] = m.TaskID
	}
	return ids
}

func TestRebalance_DeficitMovesLowestPriorityFirst(t *testing.T) {
	// 08:30 start, net 348; at minute 798 only 60 plannable minutes remain.
	urgent := mkFlex("u1", 40, domain.PriorityUrgent)
	high := mkFlex("h1", 30, domain.PriorityHigh)
	normal := mkFlex("n1", 50, domain.PriorityNormal)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       798,
		Today:        []domain.Task{urgent, high, normal},
		TomorrowDate: tuesday,
	})

	assert.Equal(t, 60, plan.RemainingCapacityMin)
	assert.Equal(t, 120, plan.RequiredMin)
	assert.Equal(t, 60, plan.DeficitMin)

	ids := moveIDs(plan.MoveToTomorrow)
	assert.NotContains(t, ids, "u1", "urgent tasks are exempt from being moved")
	assert.Equal(t, []string{"n1", "h1"}, ids, "normal moves before high")
	assert.Equal(t, 0, plan.ResidualDeficitMin)
	for _, m := range plan.MoveToTomorrow {
		assert.Equal(t, tuesday, m.ToDate)
	}
}

func TestRebalance_ResidualDeficitWhenPoolTooSmall(t *testing.T) {
	urgent := mkFlex("u1", 100, domain.PriorityUrgent)
	running := mkFlex("tr1", 60, domain.PriorityNormal)
	running.TimerRunning = true
	normal := mkFlex("n1", 30, domain.PriorityNormal)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       798, // 60 minutes of capacity left
		Today:        []domain.Task{urgent, running, normal},
		TomorrowDate: tuesday,
	})

	// Running timers do not count toward required work, but are also
	// never movable.
	assert.Equal(t, 130, plan.RequiredMin)
	assert.Equal(t, []string{"n1"}, moveIDs(plan.MoveToTomorrow))
	assert.Equal(t, 40, plan.ResidualDeficitMin, "protected tasks leave the deficit partly uncovered")
}

func TestRebalance_SurplusPullsFromTomorrow(t *testing.T) {
	today := mkFlex("n1", 60, domain.PriorityNormal)
	big := mkFlex("t2", 250, domain.PriorityNormal)
	urgent := mkFlex("t1", 100, domain.PriorityUrgent)
	small := mkFlex("t3", 50, domain.PriorityNormal)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       510, // day start: full 348 minutes remain
		Today:        []domain.Task{today},
		Tomorrow:     []domain.Task{big, urgent, small},
		TomorrowDate: tuesday,
	})

	assert.Empty(t, plan.MoveToTomorrow)
	assert.Equal(t, []string{"t1", "t3"}, moveIDs(plan.PullToToday),
		"highest priority first; tasks that do not fit are skipped, not truncated")
	assert.Equal(t, 348-60-100-50, plan.SurplusMin)
	for _, m := range plan.PullToToday {
		assert.Equal(t, monday, m.ToDate)
		assert.Equal(t, tuesday, m.FromDate)
	}
}

func TestRebalance_PullRechecksFixedConflicts(t *testing.T) {
	pinned := mkFixed("pin", 540, 30)
	free := mkFlex("free", 30, domain.PriorityNormal)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       510,
		Tomorrow:     []domain.Task{pinned, free},
		TomorrowDate: tuesday,
		TodayFixed: []OccupiedInterval{
			{StartMin: 540, EndMin: 600, TaskID: "existing", Fixed: true},
		},
	})

	ids := moveIDs(plan.PullToToday)
	assert.NotContains(t, ids, "pin", "a pull that collides with today's fixed set is skipped")
	assert.Contains(t, ids, "free")
}

func TestRebalance_ContainersNeverCounted(t *testing.T) {
	parent := mkFlex("parent", 500, domain.PriorityNormal)
	parent.Kind = domain.KindContainer
	child := mkFlex("child", 60, domain.PriorityNormal)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       510,
		Today:        []domain.Task{parent, child},
		TomorrowDate: tuesday,
	})

	assert.Equal(t, 60, plan.RequiredMin, "only the sub-unit counts")
}

func TestRebalance_EndOfDayOverflow(t *testing.T) {
	urgent := mkFlex("u1", 100, domain.PriorityUrgent)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       900, // 75 minutes before day end at 975
		Today:        []domain.Task{urgent},
		TomorrowDate: tuesday,
	})

	require.Len(t, plan.Overflows, 1)
	assert.Equal(t, "u1", plan.Overflows[0].TaskID)
	assert.Equal(t, 25, plan.Overflows[0].OverflowMin)
}

func TestRebalance_DisabledDay(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)
	sctx := testCtx()
	// Disable Sunday home hours so the whole day is off.
	sctx.Config.Home[0].Enabled = false

	plan := Rebalance(sctx, RebalanceInput{
		Date:         sunday,
		NowMin:       600,
		Today:        []domain.Task{mkFlex("n1", 60, domain.PriorityNormal)},
		TomorrowDate: monday,
	})

	assert.Equal(t, 0, plan.RequiredMin)
	assert.Empty(t, plan.MoveToTomorrow)
	assert.Empty(t, plan.PullToToday)
}

func TestRebalance_PinnedTodayTaskNotMovable(t *testing.T) {
	pinned := mkFixed("pin", 540, 200)
	normal := mkFlex("n1", 100, domain.PriorityNormal)

	plan := Rebalance(testCtx(), RebalanceInput{
		Date:         monday,
		NowMin:       798,
		Today:        []domain.Task{pinned, normal},
		TomorrowDate: tuesday,
	})

	ids := moveIDs(plan.MoveToTomorrow)
	assert.NotContains(t, ids, "pin")
	assert.Contains(t, ids, "n1")
}
