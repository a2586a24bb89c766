package app

import "time"

// RebalanceRequest asks for a mid-day rebalance pass. NowMin overrides the
// clock's minute of day when set (for previewing "what if it were 15:00").
// Apply persists the proposed moves; a preview never mutates anything.
type RebalanceRequest struct {
	Now    *time.Time
	NowMin *int
	Apply  bool
}

type RebalanceResponse struct {
	Date         string
	TomorrowDate string

	RemainingCapacityMin int
	RequiredMin          int
	DeficitMin           int
	SurplusMin           int
	ResidualDeficitMin   int

	MoveToTomorrow []MoveView
	PullToToday    []MoveView
	Overflows      []OverflowView

	// Applied reports whether the moves were persisted. AppliedMoves lists
	// the task IDs actually touched; tasks already carrying the target
	// start date are skipped, which makes re-applying the same plan a
	// no-op.
	Applied      bool
	AppliedMoves []string
}

type RebalanceErrorCode string

const (
	RebalanceErrApplyFailed RebalanceErrorCode = "APPLY_FAILED"
)

type RebalanceError struct {
	Code    RebalanceErrorCode
	Message string
}

func (e *RebalanceError) Error() string {
	return string(e.Code) + ": " + e.Message
}
