package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EducationStore interface {
	ListEducation(ctx context.Context) ([]models.Education, error)
	GetEducation(ctx context.Context, id primitive.ObjectID) (*models.Education, error)
	CreateEducation(ctx context.Context, edu *models.Education) error
	UpdateEducation(ctx context.Context, id primitive.ObjectID, upd models.EducationUpdate) error
	DeleteEducation(ctx context.Context, id primitive.ObjectID) error
}

type EducationService struct {
	store EducationStore
}

func NewEducationService(store EducationStore) *EducationService {
	return &EducationService{store: store}
}

// List returns entries ordered ongoing-first, then by most recent activity.
func (s *EducationService) List(ctx context.Context) ([]models.Education, error) {
	entries, err := s.store.ListEducation(ctx)
	if err != nil {
		return nil, err
	}
	models.SortByRecency(entries)
	return entries, nil
}

func (s *EducationService) Create(ctx context.Context, edu *models.Education) error {
	if edu.School == "" {
		return models.Invalid("school", "is required")
	}
	if edu.Degree == "" {
		return models.Invalid("degree", "is required")
	}
	if edu.StartDate.IsZero() {
		return models.Invalid("start_date", "is required")
	}
	if edu.EndDate != nil && edu.EndDate.Before(edu.StartDate) {
		return models.Invalid("end_date", "must not precede start_date")
	}
	return s.store.CreateEducation(ctx, edu)
}

func (s *EducationService) Update(ctx context.Context, id primitive.ObjectID, upd models.EducationUpdate) error {
	return s.store.UpdateEducation(ctx, id, upd)
}

func (s *EducationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteEducation(ctx, id)
}
