package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TermsStore interface {
	ListTermSections(ctx context.Context) ([]models.TermSection, error)
	CreateTermSection(ctx context.Context, sec *models.TermSection) error
	UpdateTermSection(ctx context.Context, id primitive.ObjectID, upd models.TermSectionUpdate) error
	DeleteTermSection(ctx context.Context, id primitive.ObjectID) error
	ReorderTermSections(ctx context.Context, orders []models.TermOrder) error
}

type TermsService struct {
	store TermsStore
}

func NewTermsService(store TermsStore) *TermsService {
	return &TermsService{store: store}
}

func (s *TermsService) List(ctx context.Context) ([]models.TermSection, error) {
	return s.store.ListTermSections(ctx)
}

func (s *TermsService) Create(ctx context.Context, sec *models.TermSection) error {
	if sec.Title == "" {
		return models.Invalid("title", "is required")
	}
	if sec.Body == "" {
		return models.Invalid("body", "is required")
	}
	return s.store.CreateTermSection(ctx, sec)
}

func (s *TermsService) Update(ctx context.Context, id primitive.ObjectID, upd models.TermSectionUpdate) error {
	return s.store.UpdateTermSection(ctx, id, upd)
}

func (s *TermsService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteTermSection(ctx, id)
}

// Reorder applies the batch atomically: the store runs all updates in one
// transaction, so a failure on any section leaves none applied.
func (s *TermsService) Reorder(ctx context.Context, orders []models.TermOrder) error {
	if len(orders) == 0 {
		return models.Invalid("orders", "must not be empty")
	}
	seen := make(map[primitive.ObjectID]bool, len(orders))
	for _, o := range orders {
		if o.ID.IsZero() {
			return models.Invalid("orders", "contains an empty id")
		}
		if seen[o.ID] {
			return models.Invalid("orders", "contains a duplicate id")
		}
		seen[o.ID] = true
	}
	return s.store.ReorderTermSections(ctx, orders)
}
