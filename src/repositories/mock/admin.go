package mock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// AdminRepository is an in-memory implementation of repositories.AdminRepository
// for tests. Function stubs, when set, override the in-memory behavior.
type AdminRepository struct {
	CreateFunc          func(ctx context.Context, admin *models.AdminUser) error
	GetByUsernameFunc   func(ctx context.Context, username string) (*models.AdminUser, error)
	CountFunc           func(ctx context.Context) (int, error)
	UpdateLastLoginFunc func(ctx context.Context, id uuid.UUID) error

	mu     sync.Mutex
	admins []models.AdminUser

	// Call tracking
	Calls map[string]int
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{Calls: make(map[string]int)}
}

func (m *AdminRepository) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	m.track("Create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	m.track("GetByUsername")
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.admins {
		if m.admins[i].Username == username {
			admin := m.admins[i]
			return &admin, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	m.track("GetByID")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.admins {
		if m.admins[i].ID == id {
			admin := m.admins[i]
			return &admin, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *AdminRepository) Count(ctx context.Context) (int, error) {
	m.track("Count")
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.admins), nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	m.track("UpdateLastLogin")
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for i := range m.admins {
		if m.admins[i].ID == id {
			m.admins[i].LastLogin = &now
		}
	}
	return nil
}

var _ repositories.AdminRepository = (*AdminRepository)(nil)
