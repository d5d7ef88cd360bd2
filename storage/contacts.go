package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.CreatedAt = time.Now()
	res, err := s.db.Collection(colContactMessages).InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	msg.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListContactMessages returns one page of the inbox, newest first, plus the
// total count for pagination.
func (s *Store) ListContactMessages(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	col := s.db.Collection(colContactMessages)

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var msgs []models.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (s *Store) MarkContactMessageRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.Collection(colContactMessages).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteContactMessage(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colContactMessages), id)
}
