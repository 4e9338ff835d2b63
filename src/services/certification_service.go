package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// CertificationService owns validation and persistence orchestration for
// certification entries.
type CertificationService struct {
	repo repositories.CertificationRepository
}

// NewCertificationService creates a new certification service
func NewCertificationService(repo repositories.CertificationRepository) *CertificationService {
	return &CertificationService{repo: repo}
}

// CertificationInput is the request body for creating or patching a
// certification.
type CertificationInput struct {
	Name          *string   `json:"name"`
	Issuer        *string   `json:"issuer"`
	IssueDate     *string   `json:"issueDate"`
	ExpiryDate    *string   `json:"expiryDate"`
	CredentialID  *string   `json:"credentialId"`
	CredentialURL *string   `json:"credentialUrl"`
	Description   *string   `json:"description"`
	Skills        *[]string `json:"skills"`
	Order         *int      `json:"order"`
}

func (in *CertificationInput) apply(c *models.Certification) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Issuer != nil {
		c.Issuer = *in.Issuer
	}
	if in.IssueDate != nil {
		c.IssueDate = *in.IssueDate
	}
	if in.ExpiryDate != nil {
		c.ExpiryDate = *in.ExpiryDate
	}
	if in.CredentialID != nil {
		c.CredentialID = *in.CredentialID
	}
	if in.CredentialURL != nil {
		c.CredentialURL = *in.CredentialURL
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Skills != nil {
		c.Skills = *in.Skills
	}
	if in.Order != nil {
		c.Order = *in.Order
	}
}

func validateCertification(c *models.Certification) error {
	v := &ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		v.Add("name", "El nombre es requerido")
	}
	if strings.TrimSpace(c.Issuer) == "" {
		v.Add("issuer", "El emisor es requerido")
	}
	if strings.TrimSpace(c.IssueDate) == "" {
		v.Add("issueDate", "La fecha de emisión es requerida")
	}
	return v.Err()
}

// List returns all certifications, most recent first.
func (s *CertificationService) List(ctx context.Context) ([]models.Certification, error) {
	return s.repo.List(ctx)
}

// Get returns one certification by id.
func (s *CertificationService) Get(ctx context.Context, id string) (*models.Certification, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, parsed)
}

// Create validates and persists a new certification.
func (s *CertificationService) Create(ctx context.Context, in CertificationInput) (*models.Certification, error) {
	now := time.Now()
	c := &models.Certification{
		ID:         uuid.New(),
		ExpiryDate: models.ExpiryNoExpiration,
		Skills:     []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	in.apply(c)

	if err := validateCertification(c); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update patches an existing certification and re-validates the result.
func (s *CertificationService) Update(ctx context.Context, id string, in CertificationInput) (*models.Certification, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, parsed)
	if err != nil {
		return nil, err
	}

	in.apply(c)
	if err := validateCertification(c); err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a certification by id.
func (s *CertificationService) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, parsed)
}
