package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
)

type calendarService struct {
	events repository.CalendarRepo
}

func NewCalendarService(events repository.CalendarRepo) CalendarService {
	return &calendarService{events: events}
}

func (s *calendarService) Add(ctx context.Context, e *domain.CalendarEvent) error {
	if err := validateWindowBounds(e.StartMin, e.EndMin); err != nil {
		return fmt.Errorf("calendar event: %w", err)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.Date = domain.DayOf(e.Date)
	e.CreatedAt = time.Now().UTC()
	return s.events.Create(ctx, e)
}

func (s *calendarService) ListByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	return s.events.ListByDate(ctx, date)
}

func (s *calendarService) Remove(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
