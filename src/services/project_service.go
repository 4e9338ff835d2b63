package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ProjectService owns validation and persistence orchestration for projects.
type ProjectService struct {
	repo repositories.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ProjectInput is the request body for creating or patching a project. Nil
// fields keep their current (or default) value.
type ProjectInput struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	Image           *string   `json:"image"`
	Images          *[]string `json:"images"`
	Technologies    *[]string `json:"technologies"`
	Category        *string   `json:"category"`
	GithubURL       *string   `json:"githubUrl"`
	LiveURL         *string   `json:"liveUrl"`
	Featured        *bool     `json:"featured"`
	Status          *string   `json:"status"`
	Order           *int      `json:"order"`
	Highlights      *[]string `json:"highlights"`
	Challenges      *[]string `json:"challenges"`
}

func (in *ProjectInput) apply(p *models.Project) {
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.LongDescription != nil {
		p.LongDescription = *in.LongDescription
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Technologies != nil {
		p.Technologies = *in.Technologies
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}
	if in.LiveURL != nil {
		p.LiveURL = *in.LiveURL
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Order != nil {
		p.Order = *in.Order
	}
	if in.Highlights != nil {
		p.Highlights = *in.Highlights
	}
	if in.Challenges != nil {
		p.Challenges = *in.Challenges
	}
}

func validateProject(p *models.Project) error {
	v := &ValidationError{}
	if p.Title == "" {
		v.Add("title", "El título es requerido")
	}
	if p.Description == "" {
		v.Add("description", "La descripción es requerida")
	}
	if p.Image == "" {
		v.Add("image", "La imagen es requerida")
	}
	if len(p.Technologies) == 0 {
		v.Add("technologies", "Las tecnologías son requeridas")
	}
	if !models.OneOf(p.Category, models.ProjectCategories) {
		v.Add("category", "Categoría inválida")
	}
	if !models.OneOf(p.Status, models.ProjectStatuses) {
		v.Add("status", "Estado inválido")
	}
	return v.Err()
}

// List returns projects matching the filter in display order.
func (s *ProjectService) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return s.repo.List(ctx, filter)
}

// Get returns one project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, parsed)
}

// Create validates and persists a new project.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	now := time.Now()
	p := &models.Project{
		ID:           uuid.New(),
		Images:       []string{},
		Technologies: []string{},
		Category:     models.CategoryFullstack,
		Status:       models.StatusCompleted,
		Highlights:   []string{},
		Challenges:   []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	in.apply(p)

	if err := validateProject(p); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update patches an existing project and re-validates the result.
func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput) (*models.Project, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, err
	}

	in.apply(p)
	if err := validateProject(p); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project by id.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, parsed)
}
