package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) ListEducation(ctx context.Context) ([]models.Education, error) {
	return findAll[models.Education](ctx, s.db.Collection(colEducation), bson.M{}, nil)
}

func (s *Store) GetEducation(ctx context.Context, id primitive.ObjectID) (*models.Education, error) {
	return findByID[models.Education](ctx, s.db.Collection(colEducation), id)
}

func (s *Store) CreateEducation(ctx context.Context, edu *models.Education) error {
	now := time.Now()
	edu.CreatedAt = now
	edu.UpdatedAt = now
	res, err := s.db.Collection(colEducation).InsertOne(ctx, edu)
	if err != nil {
		return err
	}
	edu.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateEducation(ctx context.Context, id primitive.ObjectID, upd models.EducationUpdate) error {
	var unset bson.M
	if upd.ClearEndDate {
		upd.EndDate = nil
		unset = bson.M{"end_date": ""}
	}
	return updateByID(ctx, s.db.Collection(colEducation), id, upd, unset)
}

func (s *Store) DeleteEducation(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colEducation), id)
}
