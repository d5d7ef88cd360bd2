package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamStore interface {
	ListTeamMembers(ctx context.Context) ([]models.TeamMember, error)
	GetTeamMember(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error)
	CreateTeamMember(ctx context.Context, member *models.TeamMember) error
	UpdateTeamMember(ctx context.Context, id primitive.ObjectID, upd models.TeamMemberUpdate) error
	DeleteTeamMember(ctx context.Context, id primitive.ObjectID) error
}

type TeamService struct {
	store   TeamStore
	files   FileRemover
	baseURL string
}

func NewTeamService(store TeamStore, files FileRemover, baseURL string) *TeamService {
	return &TeamService{store: store, files: files, baseURL: baseURL}
}

func (s *TeamService) List(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.store.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].PhotoPath = utils.AbsoluteURL(s.baseURL, members[i].PhotoPath)
	}
	return members, nil
}

func (s *TeamService) Get(ctx context.Context, id primitive.ObjectID) (*models.TeamMember, error) {
	member, err := s.store.GetTeamMember(ctx, id)
	if err != nil {
		return nil, err
	}
	member.PhotoPath = utils.AbsoluteURL(s.baseURL, member.PhotoPath)
	return member, nil
}

func (s *TeamService) Create(ctx context.Context, member *models.TeamMember) error {
	if member.Name == "" {
		return models.Invalid("name", "is required")
	}
	if member.Role == "" {
		return models.Invalid("role", "is required")
	}
	if err := s.store.CreateTeamMember(ctx, member); err != nil {
		return err
	}
	member.PhotoPath = utils.AbsoluteURL(s.baseURL, member.PhotoPath)
	return nil
}

func (s *TeamService) Update(ctx context.Context, id primitive.ObjectID, upd models.TeamMemberUpdate) error {
	old, err := s.store.GetTeamMember(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.UpdateTeamMember(ctx, id, upd); err != nil {
		return err
	}
	if upd.PhotoPath != nil && old.PhotoPath != "" && old.PhotoPath != *upd.PhotoPath {
		s.files.Remove(old.PhotoPath)
	}
	return nil
}

// Delete fails with ErrConflict while the member is still attached to a
// project.
func (s *TeamService) Delete(ctx context.Context, id primitive.ObjectID) error {
	old, err := s.store.GetTeamMember(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTeamMember(ctx, id); err != nil {
		return err
	}
	s.files.Remove(old.PhotoPath)
	return nil
}
