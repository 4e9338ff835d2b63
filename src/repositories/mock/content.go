package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ExperienceRepository is an in-memory implementation of
// repositories.ExperienceRepository for tests.
type ExperienceRepository struct {
	InsertFunc func(ctx context.Context, experience *models.Experience) error

	mu      sync.Mutex
	entries []models.Experience

	Calls map[string]int
}

// NewExperienceRepository creates a new mock experience repository
func NewExperienceRepository() *ExperienceRepository {
	return &ExperienceRepository{Calls: make(map[string]int)}
}

func (m *ExperienceRepository) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

func (m *ExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	m.track("List")
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Experience{}, m.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate > out[j].StartDate
	})
	return out, nil
}

func (m *ExperienceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	m.track("GetByID")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *ExperienceRepository) Insert(ctx context.Context, experience *models.Experience) error {
	m.track("Insert")
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, experience)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *experience)
	return nil
}

func (m *ExperienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	m.track("Update")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == experience.ID {
			m.entries[i] = *experience
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.track("Delete")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

var _ repositories.ExperienceRepository = (*ExperienceRepository)(nil)

// EducationRepository is an in-memory implementation of
// repositories.EducationRepository for tests.
type EducationRepository struct {
	InsertFunc func(ctx context.Context, education *models.Education) error

	mu      sync.Mutex
	entries []models.Education

	Calls map[string]int
}

// NewEducationRepository creates a new mock education repository
func NewEducationRepository() *EducationRepository {
	return &EducationRepository{Calls: make(map[string]int)}
}

func (m *EducationRepository) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

func (m *EducationRepository) List(ctx context.Context) ([]models.Education, error) {
	m.track("List")
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Education{}, m.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate > out[j].StartDate
	})
	return out, nil
}

func (m *EducationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Education, error) {
	m.track("GetByID")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *EducationRepository) Insert(ctx context.Context, education *models.Education) error {
	m.track("Insert")
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, education)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *education)
	return nil
}

func (m *EducationRepository) Update(ctx context.Context, education *models.Education) error {
	m.track("Update")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == education.ID {
			m.entries[i] = *education
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.track("Delete")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

var _ repositories.EducationRepository = (*EducationRepository)(nil)

// CertificationRepository is an in-memory implementation of
// repositories.CertificationRepository for tests.
type CertificationRepository struct {
	InsertFunc func(ctx context.Context, certification *models.Certification) error

	mu      sync.Mutex
	entries []models.Certification

	Calls map[string]int
}

// NewCertificationRepository creates a new mock certification repository
func NewCertificationRepository() *CertificationRepository {
	return &CertificationRepository{Calls: make(map[string]int)}
}

func (m *CertificationRepository) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

func (m *CertificationRepository) List(ctx context.Context) ([]models.Certification, error) {
	m.track("List")
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Certification{}, m.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IssueDate > out[j].IssueDate
	})
	return out, nil
}

func (m *CertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Certification, error) {
	m.track("GetByID")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			c := m.entries[i]
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *CertificationRepository) Insert(ctx context.Context, certification *models.Certification) error {
	m.track("Insert")
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, certification)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *certification)
	return nil
}

func (m *CertificationRepository) Update(ctx context.Context, certification *models.Certification) error {
	m.track("Update")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == certification.ID {
			m.entries[i] = *certification
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.track("Delete")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

var _ repositories.CertificationRepository = (*CertificationRepository)(nil)
