package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) ListSkillCategories(ctx context.Context) ([]models.SkillCategory, error) {
	return findAll[models.SkillCategory](ctx, s.db.Collection(colSkillCategories),
		bson.M{}, bson.D{{Key: "order", Value: 1}})
}

func (s *Store) GetSkillCategory(ctx context.Context, id primitive.ObjectID) (*models.SkillCategory, error) {
	return findByID[models.SkillCategory](ctx, s.db.Collection(colSkillCategories), id)
}

func (s *Store) CreateSkillCategory(ctx context.Context, cat *models.SkillCategory) error {
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	res, err := s.db.Collection(colSkillCategories).InsertOne(ctx, cat)
	if err != nil {
		return err
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateSkillCategory(ctx context.Context, id primitive.ObjectID, upd models.SkillCategoryUpdate) error {
	return updateByID(ctx, s.db.Collection(colSkillCategories), id, upd, nil)
}

// DeleteSkillCategory refuses to remove a category that still has skills.
func (s *Store) DeleteSkillCategory(ctx context.Context, id primitive.ObjectID) error {
	n, err := s.db.Collection(colSkills).CountDocuments(ctx, bson.M{"category_id": id})
	if err != nil {
		return err
	}
	if n > 0 {
		return models.ErrConflict
	}
	return deleteByID(ctx, s.db.Collection(colSkillCategories), id)
}

func (s *Store) ListSkills(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Skill, error) {
	filter := bson.M{}
	if categoryID != nil {
		filter["category_id"] = *categoryID
	}
	return findAll[models.Skill](ctx, s.db.Collection(colSkills),
		filter, bson.D{{Key: "name", Value: 1}})
}

func (s *Store) GetSkill(ctx context.Context, id primitive.ObjectID) (*models.Skill, error) {
	return findByID[models.Skill](ctx, s.db.Collection(colSkills), id)
}

func (s *Store) CreateSkill(ctx context.Context, skill *models.Skill) error {
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now
	res, err := s.db.Collection(colSkills).InsertOne(ctx, skill)
	if err != nil {
		return err
	}
	skill.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateSkill(ctx context.Context, id primitive.ObjectID, upd models.SkillUpdate) error {
	return updateByID(ctx, s.db.Collection(colSkills), id, upd, nil)
}

func (s *Store) DeleteSkill(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colSkills), id)
}
