package service

import (
	"context"
	"fmt"

	"github.com/lenacroft/tempo/internal/domain"
	"github.com/lenacroft/tempo/internal/repository"
)

type preferenceService struct {
	prefs repository.PreferenceRepo
}

func NewPreferenceService(prefs repository.PreferenceRepo) PreferenceService {
	return &preferenceService{prefs: prefs}
}

func (s *preferenceService) List(ctx context.Context) ([]domain.CategoryPreference, error) {
	return s.prefs.List(ctx)
}

func (s *preferenceService) Set(ctx context.Context, p *domain.CategoryPreference) error {
	if !domain.ValidCategories[string(p.Category)] {
		return fmt.Errorf("unknown task category %q", p.Category)
	}
	return s.prefs.Upsert(ctx, p)
}

func (s *preferenceService) Reset(ctx context.Context, category domain.TaskCategory) error {
	return s.prefs.Delete(ctx, category)
}
