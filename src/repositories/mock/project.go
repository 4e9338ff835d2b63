package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ProjectRepository is an in-memory implementation of repositories.ProjectRepository
// for tests. Listing applies the same filter and sort as the SQL implementation.
type ProjectRepository struct {
	InsertFunc func(ctx context.Context, project *models.Project) error
	ListFunc   func(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)

	mu       sync.Mutex
	projects []models.Project

	Calls map[string]int
}

// NewProjectRepository creates a new mock project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{Calls: make(map[string]int)}
}

func (m *ProjectRepository) track(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
}

func (m *ProjectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	m.track("List")
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Project{}
	for _, p := range m.projects {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	m.track("GetByID")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			p := m.projects[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *ProjectRepository) Insert(ctx context.Context, project *models.Project) error {
	m.track("Insert")
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, project)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects = append(m.projects, *project)
	return nil
}

func (m *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	m.track("Update")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == project.ID {
			m.projects[i] = *project
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.track("Delete")
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
