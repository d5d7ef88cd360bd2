package services

import (
	"context"
	"errors"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
)

type AboutStore interface {
	GetAbout(ctx context.Context) (*models.About, error)
	UpsertAbout(ctx context.Context, upd models.AboutUpdate) (*models.About, error)
}

// AboutService manages the singleton profile section.
type AboutService struct {
	store   AboutStore
	files   FileRemover
	baseURL string
}

func NewAboutService(store AboutStore, files FileRemover, baseURL string) *AboutService {
	return &AboutService{store: store, files: files, baseURL: baseURL}
}

func (s *AboutService) Get(ctx context.Context) (*models.About, error) {
	about, err := s.store.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	s.normalize(about)
	return about, nil
}

// Update applies the patch and removes any replaced photo/CV file after the
// write has landed.
func (s *AboutService) Update(ctx context.Context, upd models.AboutUpdate) (*models.About, error) {
	old, err := s.store.GetAbout(ctx)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	about, err := s.store.UpsertAbout(ctx, upd)
	if err != nil {
		return nil, err
	}

	if old != nil {
		if upd.PhotoPath != nil && old.PhotoPath != "" && old.PhotoPath != *upd.PhotoPath {
			s.files.Remove(old.PhotoPath)
		}
		if upd.CVPath != nil && old.CVPath != "" && old.CVPath != *upd.CVPath {
			s.files.Remove(old.CVPath)
		}
	}

	s.normalize(about)
	return about, nil
}

func (s *AboutService) normalize(about *models.About) {
	about.PhotoPath = utils.AbsoluteURL(s.baseURL, about.PhotoPath)
	about.CVPath = utils.AbsoluteURL(s.baseURL, about.CVPath)
}
