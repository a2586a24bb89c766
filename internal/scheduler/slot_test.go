package scheduler

import (
	"testing"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(start, end int) OccupiedInterval {
	return OccupiedInterval{StartMin: start, EndMin: end}
}

func TestFindSlot_EmptyDay(t *testing.T) {
	start, ok := FindSlot(nil, 60, 510, 975)
	require.True(t, ok)
	assert.Equal(t, 510, start, "earliest slot on an empty day is the lower bound")
}

func TestFindSlot_AfterOccupied(t *testing.T) {
	occupied := []OccupiedInterval{iv(510, 570)}

	start, ok := FindSlot(occupied, 60, 510, 975)
	require.True(t, ok)
	assert.Equal(t, 575, start, "cursor advances past occupied.end plus breathing")
}

func TestFindSlot_GapBetweenIntervals(t *testing.T) {
	occupied := []OccupiedInterval{iv(510, 540), iv(700, 760)}

	// 30-minute task fits in the gap after 540+5.
	start, ok := FindSlot(occupied, 30, 510, 975)
	require.True(t, ok)
	assert.Equal(t, 545, start)

	// 200-minute task does not fit the gap; it lands after the second interval.
	start, ok = FindSlot(occupied, 200, 510, 975)
	require.True(t, ok)
	assert.Equal(t, 765, start)
}

func TestFindSlot_TailGap(t *testing.T) {
	occupied := []OccupiedInterval{iv(510, 960)}

	start, ok := FindSlot(occupied, 10, 510, 975)
	require.True(t, ok)
	assert.Equal(t, 965, start)
}

func TestFindSlot_NoRoom(t *testing.T) {
	occupied := []OccupiedInterval{iv(510, 970)}

	_, ok := FindSlot(occupied, 30, 510, 975)
	assert.False(t, ok)
}

func TestFindSlot_DegenerateInputs(t *testing.T) {
	_, ok := FindSlot(nil, 0, 510, 975)
	assert.False(t, ok, "zero duration never places")

	_, ok = FindSlot(nil, 30, 975, 510)
	assert.False(t, ok, "inverted bound never places")
}

func TestFindSlot_IntervalBeforeLowerBound(t *testing.T) {
	occupied := []OccupiedInterval{iv(400, 480)}

	start, ok := FindSlot(occupied, 60, 510, 975)
	require.True(t, ok)
	assert.Equal(t, 510, start, "intervals fully behind the bound are skipped")
}

func TestFindSlotInWindow(t *testing.T) {
	win := domain.EnergyWindow{ID: "early_morning", StartMin: 510, EndMin: 600}

	start, ok := FindSlotInWindow(nil, 60, 510, 975, win)
	require.True(t, ok)
	assert.Equal(t, 510, start)

	// Window full: a 60-minute task no longer fits 08:30-10:00.
	occupied := []OccupiedInterval{iv(510, 560)}
	_, ok = FindSlotInWindow(occupied, 60, 510, 975, win)
	assert.False(t, ok, "caller is responsible for the unrestricted retry")
}

func TestFindSlotAvoiding(t *testing.T) {
	avoided := []domain.EnergyWindow{{ID: "early_morning", StartMin: 510, EndMin: 600}}

	// An empty day still skips the avoided window.
	start, ok := FindSlotAvoiding(nil, 60, 510, 975, avoided)
	require.True(t, ok)
	assert.Equal(t, 600, start)

	// Only the avoided window is free: no slot, the caller decides
	// whether to retry unrestricted.
	occupied := []OccupiedInterval{iv(600, 975)}
	_, ok = FindSlotAvoiding(occupied, 60, 510, 975, avoided)
	assert.False(t, ok)

	// Two avoided windows leave a usable gap between them.
	avoided = append(avoided, domain.EnergyWindow{ID: "evening", StartMin: 700, EndMin: 975})
	start, ok = FindSlotAvoiding(nil, 60, 510, 975, avoided)
	require.True(t, ok)
	assert.Equal(t, 600, start)

	_, ok = FindSlotAvoiding(nil, 120, 510, 975, avoided)
	assert.False(t, ok, "no 120-minute gap survives outside the avoided windows")
}

func TestSortIntervals(t *testing.T) {
	ivs := []OccupiedInterval{
		{StartMin: 700, EndMin: 760, TaskID: "c"},
		{StartMin: 510, EndMin: 600, TaskID: "b"},
		{StartMin: 510, EndMin: 540, TaskID: "a"},
	}
	SortIntervals(ivs)

	assert.Equal(t, "a", ivs[0].TaskID)
	assert.Equal(t, "b", ivs[1].TaskID)
	assert.Equal(t, "c", ivs[2].TaskID)
}
