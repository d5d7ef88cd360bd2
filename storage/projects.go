package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) ListProjectCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	return findAll[models.ProjectCategory](ctx, s.db.Collection(colProjectCategories),
		bson.M{}, bson.D{{Key: "name", Value: 1}})
}

func (s *Store) CreateProjectCategory(ctx context.Context, cat *models.ProjectCategory) error {
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	res, err := s.db.Collection(colProjectCategories).InsertOne(ctx, cat)
	if err != nil {
		return err
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateProjectCategory(ctx context.Context, id primitive.ObjectID, upd models.ProjectCategoryUpdate) error {
	return updateByID(ctx, s.db.Collection(colProjectCategories), id, upd, nil)
}

// DeleteProjectCategory refuses to remove a category still referenced by a
// project.
func (s *Store) DeleteProjectCategory(ctx context.Context, id primitive.ObjectID) error {
	n, err := s.db.Collection(colProjects).CountDocuments(ctx, bson.M{"category_id": id})
	if err != nil {
		return err
	}
	if n > 0 {
		return models.ErrConflict
	}
	return deleteByID(ctx, s.db.Collection(colProjectCategories), id)
}

func (s *Store) ListProjects(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Project, error) {
	filter := bson.M{}
	if categoryID != nil {
		filter["category_id"] = *categoryID
	}
	return findAll[models.Project](ctx, s.db.Collection(colProjects), filter, nil)
}

func (s *Store) GetProject(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return findByID[models.Project](ctx, s.db.Collection(colProjects), id)
}

func (s *Store) CreateProject(ctx context.Context, p *models.Project) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := s.db.Collection(colProjects).InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateProject applies the patch in one document update, so a member-list
// replacement is atomic.
func (s *Store) UpdateProject(ctx context.Context, id primitive.ObjectID, upd models.ProjectUpdate) error {
	var unset bson.M
	if upd.ClearEndDate {
		upd.EndDate = nil
		unset = bson.M{"end_date": ""}
	}
	return updateByID(ctx, s.db.Collection(colProjects), id, upd, unset)
}

func (s *Store) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, s.db.Collection(colProjects), id)
}
