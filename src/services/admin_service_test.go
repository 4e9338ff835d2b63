package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories/mock"
	"golang.org/x/crypto/bcrypt"
)

func validSetup() SetupInput {
	return SetupInput{
		Username: "vicente",
		Email:    "vicente@example.com",
		Password: "secret123",
	}
}

func TestSetupCreatesFirstAdmin(t *testing.T) {
	repo := mock.NewAdminRepository()
	service := NewAdminService(repo)

	admin, err := service.Setup(context.Background(), validSetup())
	require.NoError(t, err)

	assert.Equal(t, "vicente", admin.Username)
	assert.Equal(t, "vicente@example.com", admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEqual(t, "secret123", admin.PasswordHash, "password must not be stored in clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret123")))
}

func TestSetupFailsWhenAdminExists(t *testing.T) {
	repo := mock.NewAdminRepository()
	service := NewAdminService(repo)

	first, err := service.Setup(context.Background(), validSetup())
	require.NoError(t, err)

	_, err = service.Setup(context.Background(), SetupInput{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// The existing account is untouched
	stored, err := repo.GetByUsername(context.Background(), "vicente")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 1, repo.Calls["Create"])
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    SetupInput
		field string
	}{
		{"short username", SetupInput{Username: "vi", Email: "a@b.com", Password: "secret123"}, "username"},
		{"bad email", SetupInput{Username: "vicente", Email: "not-an-email", Password: "secret123"}, "email"},
		{"short password", SetupInput{Username: "vicente", Email: "a@b.com", Password: "12345"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewAdminRepository()
			service := NewAdminService(repo)

			_, err := service.Setup(context.Background(), tt.in)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)
			assert.Equal(t, 0, repo.Calls["Create"], "nothing may be written on validation failure")
		})
	}
}

func TestLogin(t *testing.T) {
	repo := mock.NewAdminRepository()
	service := NewAdminService(repo)

	created, err := service.Setup(context.Background(), validSetup())
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		admin, err := service.Login(context.Background(), "vicente", "secret123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, admin.ID)
	})

	t.Run("login stamps last_login", func(t *testing.T) {
		_, err := service.Login(context.Background(), "vicente", "secret123")
		require.NoError(t, err)

		stored, err := repo.GetByUsername(context.Background(), "vicente")
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), "vicente", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := service.Login(context.Background(), "nobody", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty fields fail validation before lookup", func(t *testing.T) {
		lookups := repo.Calls["GetByUsername"]

		_, err := service.Login(context.Background(), "", "")

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Fields, 2)
		assert.Equal(t, lookups, repo.Calls["GetByUsername"])
	})
}

func TestLoginSurvivesLastLoginUpdateFailure(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.UpdateLastLoginFunc = func(ctx context.Context, id uuid.UUID) error {
		return errors.New("connection reset")
	}
	service := NewAdminService(repo)

	created, err := service.Setup(context.Background(), validSetup())
	require.NoError(t, err)

	// The timestamp update is best effort; its failure only gets logged
	admin, err := service.Login(context.Background(), "vicente", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)
	assert.Equal(t, 1, repo.Calls["UpdateLastLogin"])
}

func TestLoginRepositoryFailureIsNotCredentialError(t *testing.T) {
	repo := mock.NewAdminRepository()
	repo.GetByUsernameFunc = func(ctx context.Context, username string) (*models.AdminUser, error) {
		return nil, errors.New("connection reset")
	}
	service := NewAdminService(repo)

	_, err := service.Login(context.Background(), "vicente", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByID(t *testing.T) {
	repo := mock.NewAdminRepository()
	service := NewAdminService(repo)

	created, err := service.Setup(context.Background(), validSetup())
	require.NoError(t, err)

	admin, err := service.GetByID(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Username, admin.Username)

	_, err = service.GetByID(context.Background(), "not-a-uuid")
	assert.Error(t, err)
}

func TestHasAdmins(t *testing.T) {
	repo := mock.NewAdminRepository()
	service := NewAdminService(repo)

	has, err := service.HasAdmins(context.Background())
	require.NoError(t, err)
	assert.False(t, has)

	_, err = service.Setup(context.Background(), validSetup())
	require.NoError(t, err)

	has, err = service.HasAdmins(context.Background())
	require.NoError(t, err)
	assert.True(t, has)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("user@example.com"))
	assert.True(t, validEmail("a@b.co"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("no-at-sign"))
	assert.False(t, validEmail("@example.com"))
	assert.False(t, validEmail("user@"))
	assert.False(t, validEmail("user@nodot"))
	assert.False(t, validEmail("user name@example.com"))
}
