package services

import (
	"context"

	"github.com/raushankrgupta/portfolio-backend/models"
	"github.com/raushankrgupta/portfolio-backend/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectStore interface {
	ListProjectCategories(ctx context.Context) ([]models.ProjectCategory, error)
	CreateProjectCategory(ctx context.Context, cat *models.ProjectCategory) error
	UpdateProjectCategory(ctx context.Context, id primitive.ObjectID, upd models.ProjectCategoryUpdate) error
	DeleteProjectCategory(ctx context.Context, id primitive.ObjectID) error

	ListProjects(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Project, error)
	GetProject(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, id primitive.ObjectID, upd models.ProjectUpdate) error
	DeleteProject(ctx context.Context, id primitive.ObjectID) error

	GetTeamMembersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TeamMember, error)
}

type ProjectService struct {
	store   ProjectStore
	files   FileRemover
	baseURL string
}

func NewProjectService(store ProjectStore, files FileRemover, baseURL string) *ProjectService {
	return &ProjectService{store: store, files: files, baseURL: baseURL}
}

func (s *ProjectService) ListCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	return s.store.ListProjectCategories(ctx)
}

func (s *ProjectService) CreateCategory(ctx context.Context, cat *models.ProjectCategory) error {
	if cat.Name == "" {
		return models.Invalid("name", "is required")
	}
	return s.store.CreateProjectCategory(ctx, cat)
}

func (s *ProjectService) UpdateCategory(ctx context.Context, id primitive.ObjectID, upd models.ProjectCategoryUpdate) error {
	return s.store.UpdateProjectCategory(ctx, id, upd)
}

// DeleteCategory fails with ErrConflict while a project still references it.
func (s *ProjectService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.store.DeleteProjectCategory(ctx, id)
}

// List returns projects ordered ongoing-first, then by most recent activity,
// with image paths normalized and member records expanded.
func (s *ProjectService) List(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Project, error) {
	projects, err := s.store.ListProjects(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	models.SortByRecency(projects)
	for i := range projects {
		if err := s.normalize(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.normalize(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, p *models.Project) error {
	if p.Title == "" {
		return models.Invalid("title", "is required")
	}
	if p.StartDate.IsZero() {
		return models.Invalid("start_date", "is required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return models.Invalid("end_date", "must not precede start_date")
	}
	if err := s.validateMembers(ctx, p.MemberIDs); err != nil {
		return err
	}
	if err := s.store.CreateProject(ctx, p); err != nil {
		return err
	}
	return s.normalize(ctx, p)
}

// Update applies the patch; a member-list replacement rides in the same
// single document update, so it is all-or-nothing. Dropped images are
// removed from disk after the write.
func (s *ProjectService) Update(ctx context.Context, id primitive.ObjectID, upd models.ProjectUpdate) error {
	if upd.MemberIDs != nil {
		if err := s.validateMembers(ctx, *upd.MemberIDs); err != nil {
			return err
		}
	}
	old, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.UpdateProject(ctx, id, upd); err != nil {
		return err
	}
	if upd.ImagePaths != nil {
		kept := make(map[string]bool, len(*upd.ImagePaths))
		for _, p := range *upd.ImagePaths {
			kept[p] = true
		}
		for _, p := range old.ImagePaths {
			if !kept[p] {
				s.files.Remove(p)
			}
		}
	}
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	old, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	for _, p := range old.ImagePaths {
		s.files.Remove(p)
	}
	return nil
}

func (s *ProjectService) validateMembers(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	members, err := s.store.GetTeamMembersByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(members) != len(ids) {
		return models.Invalid("member_ids", "contains an unknown team member")
	}
	return nil
}

// normalize rewrites the project's own image paths and, recursively, the
// photos of its expanded members.
func (s *ProjectService) normalize(ctx context.Context, p *models.Project) error {
	p.ImagePaths = utils.AbsoluteURLs(s.baseURL, p.ImagePaths)

	members, err := s.store.GetTeamMembersByIDs(ctx, p.MemberIDs)
	if err != nil {
		return err
	}
	for i := range members {
		members[i].PhotoPath = utils.AbsoluteURL(s.baseURL, members[i].PhotoPath)
	}
	p.Members = members
	return nil
}
