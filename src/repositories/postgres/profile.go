package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ProfileRepository is the pgx implementation of repositories.ProfileRepository
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetFirst returns the oldest profile row, or ErrNotFound on an empty store.
func (r *ProfileRepository) GetFirst(ctx context.Context) (*models.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, title, subtitle, bio, description, profile_image,
		       cv_url, location, social_links, skills, stats, created_at, updated_at
		FROM profiles ORDER BY created_at ASC LIMIT 1`)

	p := &models.Profile{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Subtitle, &p.Bio, &p.Description,
		&p.ProfileImage, &p.CVUrl, &p.Location, &p.SocialLinks, &p.Skills,
		&p.Stats, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Insert(ctx context.Context, p *models.Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, name, title, subtitle, bio, description,
			profile_image, cv_url, location, social_links, skills, stats,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Name, p.Title, p.Subtitle, p.Bio, p.Description,
		p.ProfileImage, p.CVUrl, p.Location, p.SocialLinks, p.Skills, p.Stats,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET name = $2, title = $3, subtitle = $4, bio = $5,
			description = $6, profile_image = $7, cv_url = $8, location = $9,
			social_links = $10, skills = $11, stats = $12, updated_at = $13
		WHERE id = $1`,
		p.ID, p.Name, p.Title, p.Subtitle, p.Bio, p.Description,
		p.ProfileImage, p.CVUrl, p.Location, p.SocialLinks, p.Skills, p.Stats,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.ProfileRepository = (*ProfileRepository)(nil)
