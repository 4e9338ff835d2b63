package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ExperienceService owns validation and persistence orchestration for work
// experience entries.
type ExperienceService struct {
	repo repositories.ExperienceRepository
}

// NewExperienceService creates a new experience service
func NewExperienceService(repo repositories.ExperienceRepository) *ExperienceService {
	return &ExperienceService{repo: repo}
}

// ExperienceInput is the request body for creating or patching an experience.
// The admin panel historically sends the position under "title"; both are
// accepted and "position" wins when present.
type ExperienceInput struct {
	Title            *string   `json:"title"`
	Position         *string   `json:"position"`
	Company          *string   `json:"company"`
	StartDate        *string   `json:"startDate"`
	EndDate          *string   `json:"endDate"`
	Description      *string   `json:"description"`
	Responsibilities *[]string `json:"responsibilities"`
	Achievements     *[]string `json:"achievements"`
	Technologies     *[]string `json:"technologies"`
	Type             *string   `json:"type"`
	Location         *string   `json:"location"`
	Current          *bool     `json:"current"`
	Order            *int      `json:"order"`
}

func (in *ExperienceInput) apply(e *models.Experience) {
	if in.Position != nil {
		e.Position = *in.Position
	} else if in.Title != nil {
		e.Position = *in.Title
	}
	if in.Company != nil {
		e.Company = *in.Company
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = *in.EndDate
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Responsibilities != nil {
		e.Responsibilities = *in.Responsibilities
	}
	if in.Achievements != nil {
		e.Achievements = *in.Achievements
	}
	if in.Technologies != nil {
		e.Technologies = *in.Technologies
	}
	if in.Type != nil {
		e.Type = *in.Type
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Current != nil {
		e.Current = *in.Current
	}
	if in.Order != nil {
		e.Order = *in.Order
	}
}

func validateExperience(e *models.Experience) error {
	v := &ValidationError{}
	if strings.TrimSpace(e.Position) == "" {
		v.Add("title", "El título es requerido")
	}
	if strings.TrimSpace(e.Company) == "" {
		v.Add("company", "La empresa es requerida")
	}
	if strings.TrimSpace(e.Description) == "" {
		v.Add("description", "La descripción es requerida")
	}
	if strings.TrimSpace(e.StartDate) == "" {
		v.Add("startDate", "La fecha de inicio es requerida")
	}
	if !models.OneOf(e.Type, models.ExperienceTypes) {
		v.Add("type", "Tipo inválido")
	}
	return v.Err()
}

// List returns all experiences, most recent first.
func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return s.repo.List(ctx)
}

// Get returns one experience by id.
func (s *ExperienceService) Get(ctx context.Context, id string) (*models.Experience, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, parsed)
}

// Create validates and persists a new experience.
func (s *ExperienceService) Create(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	now := time.Now()
	e := &models.Experience{
		ID:               uuid.New(),
		EndDate:          models.EndDatePresent,
		Responsibilities: []string{},
		Achievements:     []string{},
		Technologies:     []string{},
		Type:             models.TypeFullTime,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	in.apply(e)

	if err := validateExperience(e); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update patches an existing experience and re-validates the result.
func (s *ExperienceService) Update(ctx context.Context, id string, in ExperienceInput) (*models.Experience, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, err
	}

	in.apply(e)
	if err := validateExperience(e); err != nil {
		return nil, err
	}

	e.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an experience by id.
func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, parsed)
}
