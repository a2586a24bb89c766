package contract

import "github.com/lenacroft/tempo/internal/app"

type RebalanceRequest = app.RebalanceRequest

type RebalanceResponse = app.RebalanceResponse

type RebalanceErrorCode = app.RebalanceErrorCode

const (
	RebalanceErrApplyFailed RebalanceErrorCode = app.RebalanceErrApplyFailed
)

type RebalanceError = app.RebalanceError
