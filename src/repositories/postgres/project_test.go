package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vwoinilowicz/portfolio-backend/src/database"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

func testProject(title string, featured bool, order int) *models.Project {
	now := time.Now().Truncate(time.Microsecond)
	return &models.Project{
		ID:           uuid.New(),
		Title:        title,
		Description:  "desc",
		Image:        "/img.png",
		Images:       []string{},
		Technologies: []string{"Go"},
		Category:     models.CategoryBackend,
		Status:       models.StatusCompleted,
		Featured:     featured,
		Order:        order,
		Highlights:   []string{},
		Challenges:   []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestProjectRepositoryCRUD(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		repo := NewProjectRepository(tdb.Pool)

		project := testProject("Portfolio Backend", false, 0)
		require.NoError(t, repo.Insert(ctx, project))

		stored, err := repo.GetByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, project.Title, stored.Title)
		assert.Equal(t, project.Technologies, stored.Technologies)

		stored.Title = "Renamed"
		stored.Featured = true
		require.NoError(t, repo.Update(ctx, stored))

		updated, err := repo.GetByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.True(t, updated.Featured)

		require.NoError(t, repo.Delete(ctx, project.ID))
		_, err = repo.GetByID(ctx, project.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestProjectRepositoryNotFound(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		repo := NewProjectRepository(tdb.Pool)

		missing := uuid.New()

		_, err := repo.GetByID(ctx, missing)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		err = repo.Update(ctx, testProject("ghost", false, 0))
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		err = repo.Delete(ctx, missing)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestProjectRepositoryListOrdering(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		repo := NewProjectRepository(tdb.Pool)

		seed := []*models.Project{
			testProject("plain-late", false, 2),
			testProject("featured-second", true, 5),
			testProject("featured-first", true, 1),
			testProject("plain-early", false, 1),
		}
		for _, p := range seed {
			require.NoError(t, repo.Insert(ctx, p))
		}

		projects, err := repo.List(ctx, models.ProjectFilter{})
		require.NoError(t, err)
		require.Len(t, projects, 4)

		titles := make([]string, len(projects))
		for i, p := range projects {
			titles[i] = p.Title
		}
		assert.Equal(t, []string{"featured-first", "featured-second", "plain-early", "plain-late"}, titles)

		featured := true
		onlyFeatured, err := repo.List(ctx, models.ProjectFilter{Featured: &featured})
		require.NoError(t, err)
		assert.Len(t, onlyFeatured, 2)

		backend, err := repo.List(ctx, models.ProjectFilter{Category: models.CategoryBackend})
		require.NoError(t, err)
		assert.Len(t, backend, 4)
	})
}
