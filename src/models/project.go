package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry. Listed publicly sorted by featured first,
// then display order, then newest.
type Project struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Image           string    `json:"image"`
	Images          []string  `json:"images"`
	Technologies    []string  `json:"technologies"`
	Category        string    `json:"category"`
	GithubURL       string    `json:"githubUrl"`
	LiveURL         string    `json:"liveUrl"`
	Featured        bool      `json:"featured"`
	Status          string    `json:"status"`
	Order           int       `json:"order"`
	Highlights      []string  `json:"highlights"`
	Challenges      []string  `json:"challenges"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProjectFilter narrows public project listings.
type ProjectFilter struct {
	Category string
	Featured *bool
}
