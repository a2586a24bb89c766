package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Kind == "" {
		t.Kind = domain.KindLeaf
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityNormal
	}
	if t.Category == "" {
		t.Category = domain.CategoryAdmin
	}
	if t.ParentID != "" {
		parent, err := s.tasks.GetByID(ctx, t.ParentID)
		if err != nil {
			return fmt.Errorf("loading parent: %w", err)
		}
		if parent.Kind != domain.KindContainer {
			return fmt.Errorf("parent %s is not a container", t.ParentID)
		}
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeCompleted)
}

func (s *taskService) ListChildren(ctx context.Context, parentID string) ([]*domain.Task, error) {
	return s.tasks.ListChildren(ctx, parentID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Complete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if t.TimerRunning {
		foldTimer(t, now)
	}
	t.Completed = true
	t.RolledOver = false
	t.UpdatedAt = now
	return s.tasks.Update(ctx, t)
}

func (s *taskService) StartTimer(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.Kind != domain.KindLeaf {
		return fmt.Errorf("task %s is a container, not a unit of work", id)
	}
	if t.Completed {
		return fmt.Errorf("task %s is already completed", id)
	}
	if t.TimerRunning {
		return fmt.Errorf("timer already running on task %s", id)
	}
	now := time.Now().UTC()
	t.TimerRunning = true
	t.TimerStartedAt = &now
	t.UpdatedAt = now
	return s.tasks.Update(ctx, t)
}

func (s *taskService) StopTimer(ctx context.Context, id string) (int, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !t.TimerRunning {
		return 0, fmt.Errorf("no timer running on task %s", id)
	}
	now := time.Now().UTC()
	elapsed := foldTimer(t, now)
	t.UpdatedAt = now
	if err := s.tasks.Update(ctx, t); err != nil {
		return 0, err
	}
	return elapsed, nil
}

func (s *taskService) LogWork(ctx context.Context, id string, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("logged minutes must be positive, got %d", minutes)
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	t.WorkedMin += minutes
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) MoveToDate(ctx context.Context, id string, date time.Time) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	day := domain.DayOf(date)
	t.NotBefore = &day
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// foldTimer stops a running timer, adds the elapsed whole minutes to the
// worked total and returns them. Sub-minute spans round down to zero.
func foldTimer(t *domain.Task, now time.Time) int {
	elapsed := 0
	if t.TimerStartedAt != nil {
		elapsed = int(now.Sub(*t.TimerStartedAt).Minutes())
		if elapsed < 0 {
			elapsed = 0
		}
	}
	t.WorkedMin += elapsed
	t.TimerRunning = false
	t.TimerStartedAt = nil
	return elapsed
}
