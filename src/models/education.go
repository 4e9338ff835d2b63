package models

import (
	"time"

	"github.com/google/uuid"
)

// Education is a studies entry, listed by start date descending.
type Education struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	Field        string    `json:"field"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Status       string    `json:"status"`
	Current      bool      `json:"current"`
	GPA          string    `json:"gpa"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
