package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vwoinilowicz/portfolio-backend/src/database"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

func TestProfileRepositoryRoundTrip(t *testing.T) {
	database.WithTestDB(t, func(tdb *database.TestDB) {
		ctx := context.Background()
		repo := NewProfileRepository(tdb.Pool)

		_, err := repo.GetFirst(ctx)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		profile := models.DefaultProfile()
		now := time.Now().Truncate(time.Microsecond)
		profile.CreatedAt = now
		profile.UpdatedAt = now
		profile.SocialLinks = models.SocialLinks{
			GitHub:   "https://github.com/vwoinilowicz",
			LinkedIn: "https://linkedin.com/in/vwoinilowicz",
		}
		profile.Skills = models.SkillGroups{
			Languages: []string{"Go", "TypeScript"},
			Backend:   []string{"Gin", "PostgreSQL"},
		}
		require.NoError(t, repo.Insert(ctx, profile))

		stored, err := repo.GetFirst(ctx)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, stored.ID)
		assert.Equal(t, profile.Name, stored.Name)
		assert.Equal(t, "https://github.com/vwoinilowicz", stored.SocialLinks.GitHub)
		assert.Equal(t, []string{"Go", "TypeScript"}, stored.Skills.Languages)
		assert.Equal(t, profile.Stats.YearsExperience, stored.Stats.YearsExperience)

		stored.Bio = "Backend engineer"
		stored.UpdatedAt = time.Now().Truncate(time.Microsecond)
		require.NoError(t, repo.Update(ctx, stored))

		again, err := repo.GetFirst(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Backend engineer", again.Bio)
	})
}
