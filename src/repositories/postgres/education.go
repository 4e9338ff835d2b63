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

// EducationRepository is the pgx implementation of repositories.EducationRepository
type EducationRepository struct {
	pool *pgxpool.Pool
}

// NewEducationRepository creates a new education repository
func NewEducationRepository(pool *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{pool: pool}
}

const educationColumns = `id, institution, degree, field, start_date, end_date,
	description, achievements, status, current, gpa, display_order,
	created_at, updated_at`

func scanEducation(row pgx.Row) (*models.Education, error) {
	e := &models.Education{}
	err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartDate, &e.EndDate,
		&e.Description, &e.Achievements, &e.Status, &e.Current, &e.GPA,
		&e.Order, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan education: %w", err)
	}
	return e, nil
}

// List returns all education entries, most recent start date first.
func (r *EducationRepository) List(ctx context.Context) ([]models.Education, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+educationColumns+" FROM education ORDER BY start_date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	entries := []models.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (r *EducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+educationColumns+" FROM education WHERE id = $1", id)
	return scanEducation(row)
}

func (r *EducationRepository) Insert(ctx context.Context, e *models.Education) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO education (id, institution, degree, field, start_date,
			end_date, description, achievements, status, current, gpa,
			display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate,
		e.Description, e.Achievements, e.Status, e.Current, e.GPA, e.Order,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert education: %w", err)
	}
	return nil
}

func (r *EducationRepository) Update(ctx context.Context, e *models.Education) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE education SET institution = $2, degree = $3, field = $4,
			start_date = $5, end_date = $6, description = $7, achievements = $8,
			status = $9, current = $10, gpa = $11, display_order = $12,
			updated_at = $13
		WHERE id = $1`,
		e.ID, e.Institution, e.Degree, e.Field, e.StartDate, e.EndDate,
		e.Description, e.Achievements, e.Status, e.Current, e.GPA, e.Order,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM education WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.EducationRepository = (*EducationRepository)(nil)
