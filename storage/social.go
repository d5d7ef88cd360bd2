package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) ListSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	return findAll[models.SocialLink](ctx, s.db.Collection(colSocialLinks),
		bson.M{}, bson.D{{Key: "order", Value: 1}})
}

func (s *Store) GetSocialLink(ctx context.Context, id primitive.ObjectID) (*models.SocialLink, error) {
	return findByID[models.SocialLink](ctx, s.db.Collection(colSocialLinks), id)
}

func (s *Store) CreateSocialLink(ctx context.Context, link *models.SocialLink) error {
	now := time.Now()
	link.CreatedAt = now
	link.UpdatedAt = now
	res, err := s.db.Collection(colSocialLinks).InsertOne(ctx, link)
	if err != nil {
		return err
	}
	link.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateSocialLink(ctx context.Context, id primitive.ObjectID, upd models.SocialLinkUpdate) error {
	return updateByID(ctx, s.db.Collection(colSocialLinks), id, upd, nil)
}

func (s *Store) DeleteSocialLink(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colSocialLinks), id)
}
