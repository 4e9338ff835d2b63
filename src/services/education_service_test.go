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

func validEducationInput() EducationInput {
	return EducationInput{
		Institution: ptr("Universidad de Buenos Aires"),
		Degree:      ptr("Licenciatura en Sistemas"),
		StartDate:   ptr("2020-03"),
	}
}

func TestEducationCreateAppliesDefaults(t *testing.T) {
	repo := mock.NewEducationRepository()
	service := NewEducationService(repo)

	education, err := service.Create(context.Background(), validEducationInput())
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, education.Status)
	assert.False(t, education.Current)
	assert.Empty(t, education.GPA)
	assert.NotNil(t, education.Achievements)
}

func TestEducationCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EducationInput)
		field  string
	}{
		{"missing degree", func(in *EducationInput) { in.Degree = nil }, "degree"},
		{"missing institution", func(in *EducationInput) { in.Institution = nil }, "institution"},
		{"missing start date", func(in *EducationInput) { in.StartDate = nil }, "startDate"},
		{"invalid status", func(in *EducationInput) { in.Status = ptr("archived") }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewEducationRepository()
			service := NewEducationService(repo)

			in := validEducationInput()
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

func TestEducationInProgressEntry(t *testing.T) {
	repo := mock.NewEducationRepository()
	service := NewEducationService(repo)

	in := validEducationInput()
	in.Status = ptr(models.StatusInProgress)
	in.Current = ptr(true)
	in.GPA = ptr("8.7")

	education, err := service.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, education.Status)
	assert.True(t, education.Current)
	assert.Equal(t, "8.7", education.GPA)
}

func TestEducationUpdateAndDelete(t *testing.T) {
	repo := mock.NewEducationRepository()
	service := NewEducationService(repo)

	created, err := service.Create(context.Background(), validEducationInput())
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID.String(), EducationInput{
		EndDate: ptr("2024-12"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-12", updated.EndDate)
	assert.Equal(t, created.Degree, updated.Degree)

	require.NoError(t, service.Delete(context.Background(), created.ID.String()))
	_, err = service.Get(context.Background(), created.ID.String())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
