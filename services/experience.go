package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExperienceStore interface {
	ListExperience(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
	CreateExperience(ctx context.Context, exp *models.Experience) error
	UpdateExperience(ctx context.Context, id primitive.ObjectID, upd models.ExperienceUpdate) error
	DeleteExperience(ctx context.Context, id primitive.ObjectID) error
}

type ExperienceService struct {
	store   ExperienceStore
	files   FileRemover
	baseURL string
}

func NewExperienceService(store ExperienceStore, files FileRemover, baseURL string) *ExperienceService {
	return &ExperienceService{store: store, files: files, baseURL: baseURL}
}

// List returns entries ordered current-first, then by most recent activity.
func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	entries, err := s.store.ListExperience(ctx)
	if err != nil {
		return nil, err
	}
	models.SortByRecency(entries)
	for i := range entries {
		entries[i].LogoPath = utils.AbsoluteURL(s.baseURL, entries[i].LogoPath)
	}
	return entries, nil
}

func (s *ExperienceService) Create(ctx context.Context, exp *models.Experience) error {
	if exp.Company == "" {
		return models.Invalid("company", "is required")
	}
	if exp.Role == "" {
		return models.Invalid("role", "is required")
	}
	if exp.StartDate.IsZero() {
		return models.Invalid("start_date", "is required")
	}
	if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
		return models.Invalid("end_date", "must not precede start_date")
	}
	return s.store.CreateExperience(ctx, exp)
}

func (s *ExperienceService) Update(ctx context.Context, id primitive.ObjectID, upd models.ExperienceUpdate) error {
	old, err := s.store.GetExperience(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.UpdateExperience(ctx, id, upd); err != nil {
		return err
	}
	if upd.LogoPath != nil && old.LogoPath != "" && old.LogoPath != *upd.LogoPath {
		s.files.Remove(old.LogoPath)
	}
	return nil
}

func (s *ExperienceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	old, err := s.store.GetExperience(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteExperience(ctx, id); err != nil {
		return err
	}
	s.files.Remove(old.LogoPath)
	return nil
}
