package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myazici/portfolio-site-backend/models"
)

func strPtr(s string) *string { return &s }

func seedProject(t *testing.T, repo *ProjectRepo, title string, imageRepo *ProjectImageRepo, imageURLs ...string) *models.Project {
	t.Helper()

	project := &models.Project{Title: title}
	require.NoError(t, repo.Add(project))
	for _, url := range imageURLs {
		require.NoError(t, imageRepo.Add(&models.ProjectImage{ImageURL: url, ProjectID: project.ID}))
	}
	return project
}

func TestFindAllWithImagesGroupsAndOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)
	imageRepo := NewProjectImageRepo(db)

	first := seedProject(t, repo, "First", imageRepo, "https://cdn/img-a.png", "https://cdn/img-b.png")
	second := seedProject(t, repo, "Second", imageRepo)
	third := seedProject(t, repo, "Third", imageRepo, "https://cdn/img-c.png")

	projects, err := repo.FindAllWithImages()
	require.NoError(t, err)
	require.Len(t, projects, 3)

	// Newest project first
	assert.Equal(t, third.ID, projects[0].ID)
	assert.Equal(t, second.ID, projects[1].ID)
	assert.Equal(t, first.ID, projects[2].ID)

	// Images grouped under their owner, in attachment order
	require.Len(t, projects[0].Images, 1)
	assert.Equal(t, "https://cdn/img-c.png", projects[0].Images[0].ImageURL)
	assert.Equal(t, third.ID, projects[0].Images[0].ProjectID)

	// A project with no images still appears, with an empty (not nil) list
	require.NotNil(t, projects[1].Images)
	assert.Empty(t, projects[1].Images)

	require.Len(t, projects[2].Images, 2)
	assert.Equal(t, "https://cdn/img-a.png", projects[2].Images[0].ImageURL)
	assert.Equal(t, "https://cdn/img-b.png", projects[2].Images[1].ImageURL)
}

func TestFindWithImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)
	imageRepo := NewProjectImageRepo(db)

	project := seedProject(t, repo, "Site Redesign", imageRepo, "https://cdn/one.png")

	found, err := repo.FindWithImages(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Site Redesign", found.Title)
	require.Len(t, found.Images, 1)

	missing, err := repo.FindWithImages(project.ID + 100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateFieldsIsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := &models.Project{Title: "Before", Description: strPtr("keep me")}
	require.NoError(t, repo.Add(project))

	require.NoError(t, repo.UpdateFields(project.ID, map[string]any{"title": "After"}))

	updated, err := repo.FindWithImages(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "keep me", *updated.Description)

	// A present null clears the column
	require.NoError(t, repo.UpdateFields(project.ID, map[string]any{"description": (*string)(nil)}))
	updated, err = repo.FindWithImages(project.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestDeleteCascadesImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)
	imageRepo := NewProjectImageRepo(db)

	project := seedProject(t, repo, "Doomed", imageRepo, "https://cdn/a.png", "https://cdn/b.png", "https://cdn/c.png")

	deleted, err := repo.Delete(project.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var imageCount int64
	require.NoError(t, db.Model(&models.ProjectImage{}).Where("project_id = ?", project.ID).Count(&imageCount).Error)
	assert.Zero(t, imageCount)

	projects, err := repo.FindAllWithImages()
	require.NoError(t, err)
	assert.Empty(t, projects)

	// Deleting again reports not found
	deleted, err = repo.Delete(project.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := &models.Project{Title: "Here"}
	require.NoError(t, repo.Add(project))

	exists, err := repo.Exists(project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(project.ID + 1)
	require.NoError(t, err)
	assert.False(t, exists)
}
