package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories/mock"
)

func validProjectInput() ProjectInput {
	return ProjectInput{
		Title:        ptr("Portfolio Backend"),
		Description:  ptr("REST API for the portfolio site"),
		Image:        ptr("/assets/portfolio.png"),
		Technologies: ptr([]string{"Go", "PostgreSQL"}),
	}
}

func TestProjectCreateAppliesDefaults(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	project, err := service.Create(context.Background(), validProjectInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, "Portfolio Backend", project.Title)
	assert.Equal(t, models.CategoryFullstack, project.Category)
	assert.Equal(t, models.StatusCompleted, project.Status)
	assert.False(t, project.Featured)
	assert.Equal(t, 0, project.Order)
	assert.NotNil(t, project.Images)
	assert.NotNil(t, project.Highlights)
	assert.False(t, project.CreatedAt.IsZero())

	stored, err := service.Get(context.Background(), project.ID.String())
	require.NoError(t, err)
	assert.Equal(t, project.Title, stored.Title)
}

func TestProjectCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProjectInput)
		field  string
	}{
		{"missing title", func(in *ProjectInput) { in.Title = nil }, "title"},
		{"blank title", func(in *ProjectInput) { in.Title = ptr("   ") }, "title"},
		{"missing description", func(in *ProjectInput) { in.Description = nil }, "description"},
		{"missing image", func(in *ProjectInput) { in.Image = nil }, "image"},
		{"empty technologies", func(in *ProjectInput) { in.Technologies = ptr([]string{}) }, "technologies"},
		{"invalid category", func(in *ProjectInput) { in.Category = ptr("blockchain") }, "category"},
		{"invalid status", func(in *ProjectInput) { in.Status = ptr("abandoned") }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewProjectRepository()
			service := NewProjectService(repo)

			in := validProjectInput()
			tt.mutate(&in)

			_, err := service.Create(context.Background(), in)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)
			assert.Equal(t, 0, repo.Calls["Insert"], "nothing may be written on validation failure")
		})
	}
}

func TestProjectUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	created, err := service.Create(context.Background(), validProjectInput())
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID.String(), ProjectInput{
		Featured: ptr(true),
		Order:    ptr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, updated.Featured)
	assert.Equal(t, 3, updated.Order)
}

func TestProjectUpdateRevalidates(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	created, err := service.Create(context.Background(), validProjectInput())
	require.NoError(t, err)

	_, err = service.Update(context.Background(), created.ID.String(), ProjectInput{
		Title: ptr(""),
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// The stored record keeps its old title
	stored, err := service.Get(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Backend", stored.Title)
}

func TestProjectNotFound(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	missing := uuid.New().String()

	_, err := service.Get(context.Background(), missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = service.Update(context.Background(), missing, validProjectInput())
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = service.Delete(context.Background(), missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProjectMalformedIDBehavesAsNotFound(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	_, err := service.Get(context.Background(), "12345")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = service.Delete(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Equal(t, 0, repo.Calls["Delete"])
}

func TestProjectDelete(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	created, err := service.Create(context.Background(), validProjectInput())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID.String()))

	_, err = service.Get(context.Background(), created.ID.String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestProjectListFilterAndOrder(t *testing.T) {
	repo := mock.NewProjectRepository()
	service := NewProjectService(repo)

	seed := func(title, category string, featured bool, order int) {
		in := validProjectInput()
		in.Title = ptr(title)
		in.Category = ptr(category)
		in.Featured = ptr(featured)
		in.Order = ptr(order)
		_, err := service.Create(context.Background(), in)
		require.NoError(t, err)
	}

	seed("plain-late", models.CategoryBackend, false, 2)
	seed("featured-second", models.CategoryFullstack, true, 5)
	seed("featured-first", models.CategorySecurity, true, 1)
	seed("plain-early", models.CategoryBackend, false, 1)

	t.Run("featured first then display order", func(t *testing.T) {
		projects, err := service.List(context.Background(), models.ProjectFilter{})
		require.NoError(t, err)
		require.Len(t, projects, 4)

		titles := []string{projects[0].Title, projects[1].Title, projects[2].Title, projects[3].Title}
		assert.Equal(t, []string{"featured-first", "featured-second", "plain-early", "plain-late"}, titles)
	})

	t.Run("category filter", func(t *testing.T) {
		projects, err := service.List(context.Background(), models.ProjectFilter{Category: models.CategoryBackend})
		require.NoError(t, err)
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.Equal(t, models.CategoryBackend, p.Category)
		}
	})

	t.Run("featured filter", func(t *testing.T) {
		featured := true
		projects, err := service.List(context.Background(), models.ProjectFilter{Featured: &featured})
		require.NoError(t, err)
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.True(t, p.Featured)
		}
	})
}
