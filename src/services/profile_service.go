package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vwoinilowicz/portfolio-backend/src/models"
	"github.com/vwoinilowicz/portfolio-backend/src/repositories"
)

// ProfileService manages the singleton profile document.
type ProfileService struct {
	repo repositories.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(repo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// ProfileInput is a partial patch of the profile. Nil fields are left
// untouched; nested objects replace as a whole.
type ProfileInput struct {
	Name         *string              `json:"name"`
	Title        *string              `json:"title"`
	Subtitle     *string              `json:"subtitle"`
	Bio          *string              `json:"bio"`
	Description  *string              `json:"description"`
	ProfileImage *string              `json:"profileImage"`
	CVUrl        *string              `json:"cvUrl"`
	Location     *string              `json:"location"`
	SocialLinks  *models.SocialLinks  `json:"socialLinks"`
	Skills       *models.SkillGroups  `json:"skills"`
	Stats        *models.ProfileStats `json:"stats"`
}

func (in *ProfileInput) apply(p *models.Profile) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Subtitle != nil {
		p.Subtitle = *in.Subtitle
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ProfileImage != nil {
		p.ProfileImage = *in.ProfileImage
	}
	if in.CVUrl != nil {
		p.CVUrl = *in.CVUrl
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.SocialLinks != nil {
		p.SocialLinks = *in.SocialLinks
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.Stats != nil {
		p.Stats = *in.Stats
	}
}

// GetOrCreate returns the profile, lazily creating the default one on first
// read of an empty store. Concurrent first reads may race the insert; reads
// always resolve to the oldest row, so at most one transient duplicate is
// ever observed.
func (s *ProfileService) GetOrCreate(ctx context.Context) (*models.Profile, error) {
	profile, err := s.repo.GetFirst(ctx)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	profile = models.DefaultProfile()
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if err := s.repo.Insert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create default profile: %w", err)
	}
	return profile, nil
}

// Upsert patches the singleton profile, creating it first if absent.
func (s *ProfileService) Upsert(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	profile, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	in.apply(profile)
	profile.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}
