package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories/mock"
)

func validCertificationInput() CertificationInput {
	return CertificationInput{
		Name:      ptr("eJPT"),
		Issuer:    ptr("INE Security"),
		IssueDate: ptr("2024-05"),
	}
}

func TestCertificationCreateAppliesDefaults(t *testing.T) {
	repo := mock.NewCertificationRepository()
	service := NewCertificationService(repo)

	certification, err := service.Create(context.Background(), validCertificationInput())
	require.NoError(t, err)

	assert.Equal(t, "eJPT", certification.Name)
	assert.Equal(t, models.ExpiryNoExpiration, certification.ExpiryDate)
	assert.NotNil(t, certification.Skills)
}

func TestCertificationCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CertificationInput)
		field  string
	}{
		{"missing name", func(in *CertificationInput) { in.Name = nil }, "name"},
		{"missing issuer", func(in *CertificationInput) { in.Issuer = nil }, "issuer"},
		{"missing issue date", func(in *CertificationInput) { in.IssueDate = nil }, "issueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewCertificationRepository()
			service := NewCertificationService(repo)

			in := validCertificationInput()
			tt.mutate(&in)

			_, err := service.Create(context.Background(), in)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)
			assert.Equal(t, 0, repo.Calls["Insert"])
		})
	}
}

func TestCertificationListMostRecentFirst(t *testing.T) {
	repo := mock.NewCertificationRepository()
	service := NewCertificationService(repo)

	for _, issued := range []string{"2022-01", "2024-05", "2023-09"} {
		in := validCertificationInput()
		in.IssueDate = ptr(issued)
		_, err := service.Create(context.Background(), in)
		require.NoError(t, err)
	}

	certifications, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, certifications, 3)
	assert.Equal(t, "2024-05", certifications[0].IssueDate)
	assert.Equal(t, "2023-09", certifications[1].IssueDate)
	assert.Equal(t, "2022-01", certifications[2].IssueDate)
}

func TestCertificationUpdateAndDelete(t *testing.T) {
	repo := mock.NewCertificationRepository()
	service := NewCertificationService(repo)

	created, err := service.Create(context.Background(), validCertificationInput())
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID.String(), CertificationInput{
		CredentialID:  ptr("ABC-123"),
		CredentialURL: ptr("https://verify.example.com/ABC-123"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", updated.CredentialID)
	assert.Equal(t, created.Name, updated.Name)

	require.NoError(t, service.Delete(context.Background(), created.ID.String()))
	_, err = service.Get(context.Background(), created.ID.String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
