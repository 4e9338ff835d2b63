package mock

import (
	"context"
	"sync"

	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ProfileRepository is an in-memory implementation of repositories.ProfileRepository
// for tests.
type ProfileRepository struct {
	GetFirstFunc func(ctx context.Context) (*models.Profile, error)
	InsertFunc   func(ctx context.Context, profile *models.Profile) error

	mu       sync.Mutex
	profiles []models.Profile

	Calls map[string]int
}

// NewProfileRepository creates a new mock profile repository
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{Calls: make(map[string]int)}
}

func (m *ProfileRepository) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

func (m *ProfileRepository) GetFirst(ctx context.Context) (*models.Profile, error) {
	m.track("GetFirst")
	if m.GetFirstFunc != nil {
		return m.GetFirstFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.profiles) == 0 {
		return nil, repositories.ErrNotFound
	}
	profile := m.profiles[0]
	return &profile, nil
}

func (m *ProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	m.track("Insert")
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = append(m.profiles, *profile)
	return nil
}

func (m *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	m.track("Update")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.profiles {
		if m.profiles[i].ID == profile.ID {
			m.profiles[i] = *profile
			return nil
		}
	}
	return repositories.ErrNotFound
}

var _ repositories.ProfileRepository = (*ProfileRepository)(nil)
