package contract

import "github.com/lenacroft/tempo/internal/app"

type PlanDayRequest = app.PlanDayRequest

type DayPlanView = app.DayPlanView

type PlanDayResponse = app.PlanDayResponse

type PlanWeekRequest = app.PlanWeekRequest

type RecommendationView = app.RecommendationView

type PlanWeekResponse = app.PlanWeekResponse

type PlanErrorCode = app.PlanErrorCode

const (
	PlanErrInvalidDate PlanErrorCode = app.PlanErrInvalidDate
	PlanErrInvalidKind PlanErrorCode = app.PlanErrInvalidKind
)

type PlanError = app.PlanError
