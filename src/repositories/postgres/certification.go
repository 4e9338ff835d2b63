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

// CertificationRepository is the pgx implementation of repositories.CertificationRepository
type CertificationRepository struct {
	pool *pgxpool.Pool
}

// NewCertificationRepository creates a new certification repository
func NewCertificationRepository(pool *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{pool: pool}
}

const certificationColumns = `id, name, issuer, issue_date, expiry_date,
	credential_id, credential_url, description, skills, display_order,
	created_at, updated_at`

func scanCertification(row pgx.Row) (*models.Certification, error) {
	c := &models.Certification{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
		&c.CredentialID, &c.CredentialURL, &c.Description, &c.Skills,
		&c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan certification: %w", err)
	}
	return c, nil
}

// List returns all certifications, most recent issue date first.
func (r *CertificationRepository) List(ctx context.Context) ([]models.Certification, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+certificationColumns+" FROM certifications ORDER BY issue_date DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	certs := []models.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, *c)
	}
	return certs, rows.Err()
}

func (r *CertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+certificationColumns+" FROM certifications WHERE id = $1", id)
	return scanCertification(row)
}

func (r *CertificationRepository) Insert(ctx context.Context, c *models.Certification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO certifications (id, name, issuer, issue_date, expiry_date,
			credential_id, credential_url, description, skills, display_order,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
		c.CredentialURL, c.Description, c.Skills, c.Order, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert certification: %w", err)
	}
	return nil
}

func (r *CertificationRepository) Update(ctx context.Context, c *models.Certification) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE certifications SET name = $2, issuer = $3, issue_date = $4,
			expiry_date = $5, credential_id = $6, credential_url = $7,
			description = $8, skills = $9, display_order = $10, updated_at = $11
		WHERE id = $1`,
		c.ID, c.Name, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
		c.CredentialURL, c.Description, c.Skills, c.Order, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update certification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM certifications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.CertificationRepository = (*CertificationRepository)(nil)
