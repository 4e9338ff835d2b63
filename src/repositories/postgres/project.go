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

// ProjectRepository is the pgx implementation of repositories.ProjectRepository
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

const projectColumns = `id, title, description, long_description, image, images,
	technologies, category, github_url, live_url, featured, status,
	display_order, highlights, challenges, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Image,
		&p.Images, &p.Technologies, &p.Category, &p.GithubURL, &p.LiveURL,
		&p.Featured, &p.Status, &p.Order, &p.Highlights, &p.Challenges,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return p, nil
}

// List returns projects matching the filter, featured first, then by display
// order, then newest.
func (r *ProjectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects"
	args := []interface{}{}
	where := ""

	if filter.Category != "" {
		args = append(args, filter.Category)
		where = fmt.Sprintf(" WHERE category = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		if where == "" {
			where = fmt.Sprintf(" WHERE featured = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND featured = $%d", len(args))
		}
	}

	query += where + " ORDER BY featured DESC, display_order ASC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	return scanProject(row)
}

func (r *ProjectRepository) Insert(ctx context.Context, p *models.Project) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO projects (id, title, description, long_description, image,
			images, technologies, category, github_url, live_url, featured,
			status, display_order, highlights, challenges, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		p.ID, p.Title, p.Description, p.LongDescription, p.Image, p.Images,
		p.Technologies, p.Category, p.GithubURL, p.LiveURL, p.Featured,
		p.Status, p.Order, p.Highlights, p.Challenges, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE projects SET title = $2, description = $3, long_description = $4,
			image = $5, images = $6, technologies = $7, category = $8,
			github_url = $9, live_url = $10, featured = $11, status = $12,
			display_order = $13, highlights = $14, challenges = $15,
			updated_at = $16
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.LongDescription, p.Image, p.Images,
		p.Technologies, p.Category, p.GithubURL, p.LiveURL, p.Featured,
		p.Status, p.Order, p.Highlights, p.Challenges, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
