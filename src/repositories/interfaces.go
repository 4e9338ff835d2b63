package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
)

// ErrNotFound indicates the requested record does not exist. Implementations
// return it for missing rows so services can map it with errors.Is.
var ErrNotFound = errors.New("record not found")

// AdminRepository defines data access for administrator accounts
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	Count(ctx context.Context) (int, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// ProfileRepository defines data access for the singleton profile document.
// GetFirst returns the oldest row so concurrent lazy creation converges on
// one visible instance.
type ProfileRepository interface {
	GetFirst(ctx context.Context) (*models.Profile, error)
	Insert(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}

// ProjectRepository defines data access for portfolio projects
type ProjectRepository interface {
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Insert(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExperienceRepository defines data access for work experience entries
type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error)
	Insert(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EducationRepository defines data access for education entries
type EducationRepository interface {
	List(ctx context.Context) ([]models.Education, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error)
	Insert(ctx context.Context, education *models.Education) error
	Update(ctx context.Context, education *models.Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CertificationRepository defines data access for certification entries
type CertificationRepository interface {
	List(ctx context.Context) ([]models.Certification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Certification, error)
	Insert(ctx context.Context, certification *models.Certification) error
	Update(ctx context.Context, certification *models.Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
}
