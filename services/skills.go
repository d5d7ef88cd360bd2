package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SkillStore interface {
	ListSkillCategories(ctx context.Context) ([]models.SkillCategory, error)
	GetSkillCategory(ctx context.Context, id primitive.ObjectID) (*models.SkillCategory, error)
	CreateSkillCategory(ctx context.Context, cat *models.SkillCategory) error
	UpdateSkillCategory(ctx context.Context, id primitive.ObjectID, upd models.SkillCategoryUpdate) error
	DeleteSkillCategory(ctx context.Context, id primitive.ObjectID) error

	ListSkills(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Skill, error)
	GetSkill(ctx context.Context, id primitive.ObjectID) (*models.Skill, error)
	CreateSkill(ctx context.Context, skill *models.Skill) error
	UpdateSkill(ctx context.Context, id primitive.ObjectID, upd models.SkillUpdate) error
	DeleteSkill(ctx context.Context, id primitive.ObjectID) error
}

type SkillService struct {
	store   SkillStore
	files   FileRemover
	baseURL string
}

func NewSkillService(store SkillStore, files FileRemover, baseURL string) *SkillService {
	return &SkillService{store: store, files: files, baseURL: baseURL}
}

// ListGrouped returns categories in display order, each carrying its skills.
func (s *SkillService) ListGrouped(ctx context.Context) ([]models.SkillCategory, error) {
	cats, err := s.store.ListSkillCategories(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := s.store.ListSkills(ctx, nil)
	if err != nil {
		return nil, err
	}

	byCat := make(map[primitive.ObjectID][]models.Skill, len(cats))
	for _, sk := range skills {
		sk.IconPath = utils.AbsoluteURL(s.baseURL, sk.IconPath)
		byCat[sk.CategoryID] = append(byCat[sk.CategoryID], sk)
	}
	for i := range cats {
		cats[i].Skills = byCat[cats[i].ID]
	}
	return cats, nil
}

func (s *SkillService) CreateCategory(ctx context.Context, cat *models.SkillCategory) error {
	if cat.Name == "" {
		return models.Invalid("name", "is required")
	}
	return s.store.CreateSkillCategory(ctx, cat)
}

func (s *SkillService) UpdateCategory(ctx context.Context, id primitive.ObjectID, upd models.SkillCategoryUpdate) error {
	return s.store.UpdateSkillCategory(ctx, id, upd)
}

// DeleteCategory fails with ErrConflict while the category still has skills.
func (s *SkillService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteSkillCategory(ctx, id)
}

func (s *SkillService) CreateSkill(ctx context.Context, skill *models.Skill) error {
	if skill.Name == "" {
		return models.Invalid("name", "is required")
	}
	if skill.Level < 0 || skill.Level > 100 {
		return models.Invalid("level", "must be between 0 and 100")
	}
	if _, err := s.store.GetSkillCategory(ctx, skill.CategoryID); err != nil {
		return err
	}
	if err := s.store.CreateSkill(ctx, skill); err != nil {
		return err
	}
	skill.IconPath = utils.AbsoluteURL(s.baseURL, skill.IconPath)
	return nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, id primitive.ObjectID, upd models.SkillUpdate) error {
	if upd.Level != nil && (*upd.Level < 0 || *upd.Level > 100) {
		return models.Invalid("level", "must be between 0 and 100")
	}
	if upd.CategoryID != nil {
		if _, err := s.store.GetSkillCategory(ctx, *upd.CategoryID); err != nil {
			return err
		}
	}
	old, err := s.store.GetSkill(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.UpdateSkill(ctx, id, upd); err != nil {
		return err
	}
	if upd.IconPath != nil && old.IconPath != "" && old.IconPath != *upd.IconPath {
		s.files.Remove(old.IconPath)
	}
	return nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, id primitive.ObjectID) error {
	old, err := s.store.GetSkill(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteSkill(ctx, id); err != nil {
		return err
	}
	s.files.Remove(old.IconPath)
	return nil
}
