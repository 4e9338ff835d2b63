package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// EducationService owns validation and persistence orchestration for
// education entries.
type EducationService struct {
	repo repositories.EducationRepository
}

// NewEducationService creates a new education service
func NewEducationService(repo repositories.EducationRepository) *EducationService {
	return &EducationService{repo: repo}
}

// EducationInput is the request body for creating or patching an education
// entry.
type EducationInput struct {
	Institution  *string   `json:"institution"`
	Degree       *string   `json:"degree"`
	Field        *string   `json:"field"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Status       *string   `json:"status"`
	Current      *bool     `json:"current"`
	GPA          *string   `json:"gpa"`
	Order        *int      `json:"order"`
}

func (in *EducationInput) apply(e *models.Education) {
	if in.Institution != nil {
		e.Institution = *in.Institution
	}
	if in.Degree != nil {
		e.Degree = *in.Degree
	}
	if in.Field != nil {
		e.Field = *in.Field
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
	if in.Achievements != nil {
		e.Achievements = *in.Achievements
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	if in.Current != nil {
		e.Current = *in.Current
	}
	if in.GPA != nil {
		e.GPA = *in.GPA
	}
	if in.Order != nil {
		e.Order = *in.Order
	}
}

func validateEducation(e *models.Education) error {
	v := &ValidationError{}
	if strings.TrimSpace(e.Degree) == "" {
		v.Add("degree", "El título es requerido")
	}
	if strings.TrimSpace(e.Institution) == "" {
		v.Add("institution", "La institución es requerida")
	}
	if strings.TrimSpace(e.StartDate) == "" {
		v.Add("startDate", "La fecha de inicio es requerida")
	}
	if !models.OneOf(e.Status, models.EducationStatuses) {
		v.Add("status", "Estado inválido")
	}
	return v.Err()
}

// List returns all education entries, most recent first.
func (s *EducationService) List(ctx context.Context) ([]models.Education, error) {
	return s.repo.List(ctx)
}

// Get returns one education entry by id.
func (s *EducationService) Get(ctx context.Context, id string) (*models.Education, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, parsed)
}

// Create validates and persists a new education entry.
func (s *EducationService) Create(ctx context.Context, in EducationInput) (*models.Education, error) {
	now := time.Now()
	e := &models.Education{
		ID:           uuid.New(),
		Achievements: []string{},
		Status:       models.StatusCompleted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	in.apply(e)

	if err := validateEducation(e); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update patches an existing education entry and re-validates the result.
func (s *EducationService) Update(ctx context.Context, id string, in EducationInput) (*models.Education, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, err
	}

	in.apply(e)
	if err := validateEducation(e); err != nil {
		return nil, err
	}

	e.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an education entry by id.
func (s *EducationService) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, parsed)
}
