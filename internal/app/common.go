package app

import "github.com/lenacroft/tempo/internal/domain"

// BlockView is one scheduled block rendered for presentation: minute
// offsets plus preformatted clock strings.
type BlockView struct {
	TaskID   string
	Title    string
	Start    string
	End      string
	StartMin int
	EndMin   int
	Fixed    bool
	External bool
	Source   domain.BlockSource
	Optimal  bool
}

type UnplacedView struct {
	TaskID       string
	Title        string
	Category     domain.TaskCategory
	Priority     domain.Priority
	RemainingMin int
}

type ConflictView struct {
	TaskID         string
	OtherTaskID    string
	OverlapMin     int
	ShiftTaskID    string
	SuggestedStart string
	Resolvable     bool
}

type OverflowView struct {
	TaskID      string
	Title       string
	OverflowMin int
}

type MoveView struct {
	TaskID       string
	Title        string
	Priority     domain.Priority
	RemainingMin int
	FromDate     string
	ToDate       string
}

type CapacityView struct {
	WindowStart string
	WindowEnd   string
	TotalMin    int
	BufferMin   int
	NetMin      int
	Enabled     bool
	Flexible    bool
}
