package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ExperienceRepository is the pgx implementation of repositories.ExperienceRepository
type ExperienceRepository struct {
	pool *pgxpool.Pool
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(pool *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{pool: pool}
}

const experienceColumns = `id, company, position, start_date, end_date, description,
	responsibilities, achievements, technologies, type, location, current,
	display_order, created_at, updated_at`

func scanExperience(row pgx.Row) (*models.Experience, error) {
	e := &models.Experience{}
	err := row.Scan(
		&e.ID, &e.Company, &e.Position, &e.StartDate, &e.EndDate,
		&e.Description, &e.Responsibilities, &e.Achievements, &e.Technologies,
		&e.Type, &e.Location, &e.Current, &e.Order, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan experience: %w", err)
	}
	return e, nil
}

// List returns all experiences, most recent start date first.
func (r *ExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+experienceColumns+" FROM experiences ORDER BY start_date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	experiences := []models.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+experienceColumns+" FROM experiences WHERE id = $1", id)
	return scanExperience(row)
}

func (r *ExperienceRepository) Insert(ctx context.Context, e *models.Experience) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO experiences (id, company, position, start_date, end_date,
			description, responsibilities, achievements, technologies, type,
			location, current, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		e.ID, e.Company, e.Position, e.StartDate, e.EndDate, e.Description,
		e.Responsibilities, e.Achievements, e.Technologies, e.Type, e.Location,
		e.Current, e.Order, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}
	return nil
}

func (r *ExperienceRepository) Update(ctx context.Context, e *models.Experience) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE experiences SET company = $2, position = $3, start_date = $4,
			end_date = $5, description = $6, responsibilities = $7,
			achievements = $8, technologies = $9, type = $10, location = $11,
			current = $12, display_order = $13, updated_at = $14
		WHERE id = $1`,
		e.ID, e.Company, e.Position, e.StartDate, e.EndDate, e.Description,
		e.Responsibilities, e.Achievements, e.Technologies, e.Type, e.Location,
		e.Current, e.Order, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM experiences WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.ExperienceRepository = (*ExperienceRepository)(nil)
