package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vwoinilowicz/portfolio-backend/src/logging"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// AdminService handles administrator credentials: the one-time setup and the
// login flow. Passwords only ever exist as bcrypt hashes at rest.
type AdminService struct {
	repo   repositories.AdminRepository
	logger zerolog.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository) *AdminService {
	return &AdminService{
		repo:   repo,
		logger: logging.NewLogger("admin_service"),
	}
}

// SetupInput is the body of the one-time bootstrap operation.
type SetupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Setup creates the first administrator. It fails with ErrAlreadyExists when
// any admin account is already present, regardless of input.
func (s *AdminService) Setup(ctx context.Context, in SetupInput) (*models.AdminUser, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing admins: %w", err)
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	v := &ValidationError{}
	if len(strings.TrimSpace(in.Username)) < 3 {
		v.Add("username", "Usuario debe tener al menos 3 caracteres")
	}
	if !validEmail(in.Email) {
		v.Add("email", "Email inválido")
	}
	if len(in.Password) < 6 {
		v.Add("password", "Contraseña debe tener al menos 6 caracteres")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminUser{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return admin, nil
}

// Login verifies a username/password pair and returns the account. Empty
// fields fail validation before any lookup; a bad username and a bad password
// both return ErrInvalidCredentials.
func (s *AdminService) Login(ctx context.Context, username, password string) (*models.AdminUser, error) {
	v := &ValidationError{}
	if strings.TrimSpace(username) == "" {
		v.Add("username", "El usuario es requerido")
	}
	if password == "" {
		v.Add("password", "La contraseña es requerida")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best effort; a failed timestamp update must not block the login.
	if err := s.repo.UpdateLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn().Err(err).
			Str("username", admin.Username).Msg("failed to update last_login")
	}

	return admin, nil
}

// GetByID returns the account behind a verified token, for /auth/me.
func (s *AdminService) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, parsed)
}

// HasAdmins reports whether any administrator account exists.
func (s *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// validEmail is a minimal shape check: one "@" with a dotted domain behind it.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t")
}
