package storage

import (
	"context"
	"time"

	"github.com/raushankrgupta/portfolio-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Store) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	return findAll[models.TeamMember](ctx, s.db.Collection(colTeamMembers),
		bson.M{}, bson.D{{Key: "name", Value: 1}})
}

// GetTeamMembersByIDs fetches the members referenced by a project, in no
// particular order.
func (s *Store) GetTeamMembersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TeamMember, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return findAll[models.TeamMember](ctx, s.db.Collection(colTeamMembers),
		bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (s *Store) GetTeamMember(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error) {
	return findByID[models.TeamMember](ctx, s.db.Collection(colTeamMembers), id)
}

func (s *Store) CreateTeamMember(ctx context.Context, member *models.TeamMember) error {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now
	res, err := s.db.Collection(colTeamMembers).InsertOne(ctx, member)
	if err != nil {
		return err
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) UpdateTeamMember(ctx context.Context, id primitive.ObjectID, upd models.TeamMemberUpdate) error {
	return updateByID(ctx, s.db.Collection(colTeamMembers), id, upd, nil)
}

// DeleteTeamMember refuses to remove a member still referenced by a project.
func (s *Store) DeleteTeamMember(ctx context.Context, id primitive.ObjectID) error {
	n, err := s.db.Collection(colProjects).CountDocuments(ctx, bson.M{"member_ids": id})
	if err != nil {
		return err
	}
	if n > 0 {
		return models.ErrConflict
	}
	return deleteByID(ctx, s.db.Collection(colTeamMembers), id)
}
