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

// AdminRepository is the pgx implementation of repositories.AdminRepository
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const adminColumns = "id, username, email, password_hash, role, created_at, last_login"

func scanAdmin(row pgx.Row) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	err := row.Scan(
		&admin.ID, &admin.Username, &admin.Email, &admin.PasswordHash,
		&admin.Role, &admin.CreatedAt, &admin.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan admin user: %w", err)
	}
	return admin, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO admin_users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash, admin.Role, admin.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+adminColumns+" FROM admin_users WHERE username = $1", username)
	return scanAdmin(row)
}

func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+adminColumns+" FROM admin_users WHERE id = $1", id)
	return scanAdmin(row)
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin_users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admin users: %w", err)
	}
	return count, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE admin_users SET last_login = now() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to update last_login: %w", err)
	}
	return nil
}

var _ repositories.AdminRepository = (*AdminRepository)(nil)
