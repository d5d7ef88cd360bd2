package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/raushankrgupta/portfolio-backend/models"
)

type mockProjectStore struct {
	mock.Mock
}

func (m *mockProjectStore) ListProjectCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	args := m.Called(ctx)
	if cats := args.Get(0); cats != nil {
		return cats.([]models.ProjectCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectStore) CreateProjectCategory(ctx context.Context, cat *models.ProjectCategory) error {
	return m.Called(ctx, cat).Error(0)
}

func (m *mockProjectStore) UpdateProjectCategory(ctx context.Context, id primitive.ObjectID, upd models.ProjectCategoryUpdate) error {
	return m.Called(ctx, id, upd).Error(0)
}

func (m *mockProjectStore) DeleteProjectCategory(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProjectStore) ListProjects(ctx context.Context, categoryID *primitive.ObjectID) ([]models.Project, error) {
	args := m.Called(ctx, categoryID)
	if ps := args.Get(0); ps != nil {
		return ps.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectStore) GetProject(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectStore) CreateProject(ctx context.Context, p *models.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProjectStore) UpdateProject(ctx context.Context, id primitive.ObjectID, upd models.ProjectUpdate) error {
	return m.Called(ctx, id, upd).Error(0)
}

func (m *mockProjectStore) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProjectStore) GetTeamMembersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TeamMember, error) {
	args := m.Called(ctx, ids)
	if ms := args.Get(0); ms != nil {
		return ms.([]models.TeamMember), args.Error(1)
	}
	return nil, args.Error(1)
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(relPath string) { r.removed = append(r.removed, relPath) }

func TestProjectList_SortsAndNormalizes(t *testing.T) {
	memberID := primitive.NewObjectID()
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	store := new(mockProjectStore)
	svc := NewProjectService(store, &recordingRemover{}, "http://localhost:8080/uploads")

	store.On("ListProjects", mock.Anything, (*primitive.ObjectID)(nil)).Return([]models.Project{
		{Title: "ended", StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end,
			ImagePaths: []string{"projects/a.png"}},
		{Title: "ongoing", StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			MemberIDs: []primitive.ObjectID{memberID}},
	}, nil)
	store.On("GetTeamMembersByIDs", mock.Anything, []primitive.ObjectID(nil)).Return([]models.TeamMember{}, nil)
	store.On("GetTeamMembersByIDs", mock.Anything, []primitive.ObjectID{memberID}).Return([]models.TeamMember{
		{ID: memberID, Name: "M", PhotoPath: "team/m.jpg"},
	}, nil)

	projects, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "ongoing", projects[0].Title)
	assert.Equal(t, "http://localhost:8080/uploads/projects/a.png", projects[1].ImagePaths[0])

	require.Len(t, projects[0].Members, 1)
	assert.Equal(t, "http://localhost:8080/uploads/team/m.jpg", projects[0].Members[0].PhotoPath)
}

func TestProjectCreate_Validation(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store, &recordingRemover{}, "http://x.test")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := start.Add(-24 * time.Hour)

	var verr *models.ValidationError

	err := svc.Create(context.Background(), &models.Project{StartDate: start})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	err = svc.Create(context.Background(), &models.Project{Title: "p"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start_date", verr.Field)

	err = svc.Create(context.Background(), &models.Project{Title: "p", StartDate: start, EndDate: &before})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_date", verr.Field)

	store.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestProjectCreate_UnknownMember(t *testing.T) {
	store := new(mockProjectStore)
	svc := NewProjectService(store, &recordingRemover{}, "http://x.test")

	ghost := primitive.NewObjectID()
	store.On("GetTeamMembersByIDs", mock.Anything, []primitive.ObjectID{ghost}).
		Return([]models.TeamMember{}, nil)

	err := svc.Create(context.Background(), &models.Project{
		Title:     "p",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MemberIDs: []primitive.ObjectID{ghost},
	})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "member_ids", verr.Field)
	store.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
}

func TestProjectUpdate_RemovesDroppedImages(t *testing.T) {
	id := primitive.NewObjectID()
	store := new(mockProjectStore)
	remover := &recordingRemover{}
	svc := NewProjectService(store, remover, "http://x.test")

	store.On("GetProject", mock.Anything, id).Return(&models.Project{
		ID:         id,
		ImagePaths: []string{"projects/keep.png", "projects/drop.png"},
	}, nil)
	store.On("UpdateProject", mock.Anything, id, mock.Anything).Return(nil)

	kept := []string{"projects/keep.png"}
	require.NoError(t, svc.Update(context.Background(), id, models.ProjectUpdate{ImagePaths: &kept}))

	assert.Equal(t, []string{"projects/drop.png"}, remover.removed)
}

func TestProjectDelete_RemovesAllImages(t *testing.T) {
	id := primitive.NewObjectID()
	store := new(mockProjectStore)
	remover := &recordingRemover{}
	svc := NewProjectService(store, remover, "http://x.test")

	store.On("GetProject", mock.Anything, id).Return(&models.Project{
		ID:         id,
		ImagePaths: []string{"projects/a.png", "projects/b.png"},
	}, nil)
	store.On("DeleteProject", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.ElementsMatch(t, []string{"projects/a.png", "projects/b.png"}, remover.removed)
}
