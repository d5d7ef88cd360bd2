package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialStore interface {
	ListSocialLinks(ctx context.Context) ([]models.SocialLink, error)
	GetSocialLink(ctx context.Context, id primitive.ObjectID) (*models.SocialLink, error)
	CreateSocialLink(ctx context.Context, link *models.SocialLink) error
	UpdateSocialLink(ctx context.Context, id primitive.ObjectID, upd models.SocialLinkUpdate) error
	DeleteSocialLink(ctx context.Context, id primitive.ObjectID) error
}

type SocialService struct {
	store   SocialStore
	files   FileRemover
	baseURL string
}

func NewSocialService(store SocialStore, files FileRemover, baseURL string) *SocialService {
	return &SocialService{store: store, files: files, baseURL: baseURL}
}

func (s *SocialService) List(ctx context.Context) ([]models.SocialLink, error) {
	links, err := s.store.ListSocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range links {
		links[i].IconPath = utils.AbsoluteURL(s.baseURL, links[i].IconPath)
	}
	return links, nil
}

func (s *SocialService) Create(ctx context.Context, link *models.SocialLink) error {
	if link.Platform == "" {
		return models.Invalid("platform", "is required")
	}
	if link.URL == "" {
		return models.Invalid("url", "is required")
	}
	if err := s.store.CreateSocialLink(ctx, link); err != nil {
		return err
	}
	link.IconPath = utils.AbsoluteURL(s.baseURL, link.IconPath)
	return nil
}

func (s *SocialService) Update(ctx context.Context, id primitive.ObjectID, upd models.SocialLinkUpdate) error {
	old, err := s.store.GetSocialLink(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.UpdateSocialLink(ctx, id, upd); err != nil {
		return err
	}
	if upd.IconPath != nil && old.IconPath != "" && old.IconPath != *upd.IconPath {
		s.files.Remove(old.IconPath)
	}
	return nil
}

func (s *SocialService) Delete(ctx context.Context, id primitive.ObjectID) error {
	old, err := s.store.GetSocialLink(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteSocialLink(ctx, id); err != nil {
		return err
	}
	s.files.Remove(old.IconPath)
	return nil
}
