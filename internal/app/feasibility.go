package app

import "time"

// FeasibilityRequest asks whether one task's remaining work still fits
// before its deadline.
type FeasibilityRequest struct {
	Now    *time.Time
	TaskID string
}

type FeasibilityResponse struct {
	TaskID       string
	Title        string
	Deadline     *string
	Feasible     bool
	RequiredMin  int
	AvailableMin int
	DaysChecked  int
}

type FeasibilityErrorCode string

const (
	FeasibilityErrTaskNotFound FeasibilityErrorCode = "TASK_NOT_FOUND"
	FeasibilityErrNotLeaf      FeasibilityErrorCode = "NOT_A_WORK_UNIT"
)

type FeasibilityError struct {
	Code    FeasibilityErrorCode
	Message string
}

func (e *FeasibilityError) Error() string {
	return string(e.Code) + ": " + e.Message
}
