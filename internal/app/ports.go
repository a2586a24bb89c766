package app

import "context"

type PlanDayUseCase interface {
	PlanDay(ctx context.Context, req PlanDayRequest) (*PlanDayResponse, error)
}

type PlanWeekUseCase interface {
	PlanWeek(ctx context.Context, req PlanWeekRequest) (*PlanWeekResponse, error)
}

type RebalanceUseCase interface {
	Rebalance(ctx context.Context, req RebalanceRequest) (*RebalanceResponse, error)
}

type FeasibilityUseCase interface {
	CheckFeasibility(ctx context.Context, req FeasibilityRequest) (*FeasibilityResponse, error)
}
