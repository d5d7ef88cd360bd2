package storage

import (
	"context"
	"errors"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAbout returns the singleton profile document.
func (s *Store) GetAbout(ctx context.Context) (*models.About, error) {
	var about models.About
	err := s.db.Collection(colAbout).FindOne(ctx, bson.M{}).Decode(&about)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// UpsertAbout applies the non-nil fields, creating the document the first
// time, and returns the stored result.
func (s *Store) UpsertAbout(ctx context.Context, upd models.AboutUpdate) (*models.About, error) {
	set, err := setDoc(upd)
	if err != nil {
		return nil, err
	}
	_, err = s.db.Collection(colAbout).UpdateOne(ctx, bson.M{},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return s.GetAbout(ctx)
}
