package models

import (
	"time"

	"github.com/google/uuid"
)

// Experience is a work history entry, listed by start date descending.
// Dates are free-form strings ("2022-03", "Mar 2022"); the display layer
// owns their formatting.
type Experience struct {
	ID               uuid.UUID `json:"id"`
	Company          string    `json:"company"`
	Position         string    `json:"position"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	Achievements     []string  `json:"achievements"`
	Technologies     []string  `json:"technologies"`
	Type             string    `json:"type"`
	Location         string    `json:"location"`
	Current          bool      `json:"current"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
