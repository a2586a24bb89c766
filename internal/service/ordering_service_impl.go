package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/repository"
)

type orderingService struct {
	orders repository.OrderingRepo
	tasks  repository.TaskRepo
}

func NewOrderingService(orders repository.OrderingRepo, tasks repository.TaskRepo) OrderingService {
	return &orderingService{orders: orders, tasks: tasks}
}

func (s *orderingService) Get(ctx context.Context, date time.Time) (map[string]int, error) {
	return s.orders.Get(ctx, date)
}

func (s *orderingService) Set(ctx context.Context, date time.Time, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return fmt.Errorf("ordering needs at least one task")
	}
	seen := make(map[string]bool, len(taskIDs))
	for _, id := range taskIDs {
		if seen[id] {
			return fmt.Errorf("task %s listed twice", id)
		}
		seen[id] = true
		if _, err := s.tasks.GetByID(ctx, id); err != nil {
			return fmt.Errorf("ordering task %s: %w", id, err)
		}
	}
	return s.orders.Set(ctx, date, taskIDs)
}

func (s *orderingService) Clear(ctx context.Context, date time.Time) error {
	return s.orders.Clear(ctx, date)
}
