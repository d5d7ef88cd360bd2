package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) ListExperience(ctx context.Context) ([]models.Experience, error) {
	return findAll[models.Experience](ctx, s.db.Collection(colExperience), bson.M{}, nil)
}

func (s *Store) GetExperience(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	return findByID[models.Experience](ctx, s.db.Collection(colExperience), id)
}

func (s *Store) CreateExperience(ctx context.Context, exp *models.Experience) error {
	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now
	res, err := s.db.Collection(colExperience).InsertOne(ctx, exp)
	if err != nil {
		return err
	}
	exp.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateExperience(ctx context.Context, id primitive.ObjectID, upd models.ExperienceUpdate) error {
	var unset bson.M
	if upd.ClearEndDate {
		upd.EndDate = nil
		unset = bson.M{"end_date": ""}
	}
	return updateByID(ctx, s.db.Collection(colExperience), id, upd, unset)
}

func (s *Store) DeleteExperience(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colExperience), id)
}
