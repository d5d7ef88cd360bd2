package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *Store) ListTermSections(ctx context.Context) ([]models.TermSection, error) {
	return findAll[models.TermSection](ctx, s.db.Collection(colTerms),
		bson.M{}, bson.D{{Key: "order", Value: 1}})
}

func (s *Store) CreateTermSection(ctx context.Context, sec *models.TermSection) error {
	now := time.Now()
	sec.CreatedAt = now
	sec.UpdatedAt = now
	res, err := s.db.Collection(colTerms).InsertOne(ctx, sec)
	if err != nil {
		return err
	}
	sec.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateTermSection(ctx context.Context, id primitive.ObjectID, upd models.TermSectionUpdate) error {
	return updateByID(ctx, s.db.Collection(colTerms), id, upd, nil)
}

func (s *Store) DeleteTermSection(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colTerms), id)
}

// ReorderTermSections applies the whole batch inside one transaction; a
// failure on any section leaves none of the new orders applied.
func (s *Store) ReorderTermSections(ctx context.Context, orders []models.TermOrder) error {
	return s.withTransaction(ctx, func(sc mongo.SessionContext) error {
		col := s.db.Collection(colTerms)
		for _, o := range orders {
			res, err := col.UpdateOne(sc, bson.M{"_id": o.ID}, bson.M{
				"$set": bson.M{"order": o.Order, "updated_at": time.Now()},
			})
			if err != nil {
				return err
			}
			if res.MatchedCount == 0 {
				return models.ErrNotFound
			}
		}
		return nil
	})
}
