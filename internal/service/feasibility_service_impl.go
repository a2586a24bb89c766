package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/contract"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
	"github.com/lenacroft/tempo/internal/scheduler"
)

type feasibilityService struct {
	tasks  repository.TaskRepo
	loader *ContextLoader
}

func NewFeasibilityService(
	tasks repository.TaskRepo,
	schedule repository.ScheduleRepo,
	prefs repository.PreferenceRepo,
) FeasibilityService {
	return &feasibilityService{
		tasks:  tasks,
		loader: &ContextLoader{schedule: schedule, prefs: prefs},
	}
}

func (s *feasibilityService) CheckFeasibility(ctx context.Context, req contract.FeasibilityRequest) (*contract.FeasibilityResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	t, err := s.tasks.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.FeasibilityError{
				Code:    contract.FeasibilityErrTaskNotFound,
				Message: fmt.Sprintf("no task with ID %s", req.TaskID),
			}
		}
		return nil, err
	}
	if t.Kind != domain.KindLeaf {
		return nil, &contract.FeasibilityError{
			Code:    contract.FeasibilityErrNotLeaf,
			Message: fmt.Sprintf("task %s is a container; deadlines are checked per unit of work", req.TaskID),
		}
	}

	sctx, err := s.loader.Load(ctx, now)
	if err != nil {
		return nil, err
	}

	report := scheduler.CheckDeadline(sctx, *t)
	resp := &contract.FeasibilityResponse{
		TaskID:       report.TaskID,
		Title:        t.Title,
		Feasible:     report.Feasible,
		RequiredMin:  report.RequiredMin,
		AvailableMin: report.AvailableMin,
		DaysChecked:  report.DaysChecked,
	}
	if report.Deadline != nil {
		d := report.Deadline.Format(dateLayout)
		resp.Deadline = &d
	}
	return resp, nil
}
