package contract

import "github.com/lenacroft/tempo/internal/app"

type FeasibilityRequest = app.FeasibilityRequest

type FeasibilityResponse = app.FeasibilityResponse

type FeasibilityErrorCode = app.FeasibilityErrorCode

const (
	FeasibilityErrTaskNotFound FeasibilityErrorCode = app.FeasibilityErrTaskNotFound
	FeasibilityErrNotLeaf      FeasibilityErrorCode = app.FeasibilityErrNotLeaf
)

type FeasibilityError = app.FeasibilityError
