package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification is a credential entry, listed by issue date descending.
// Whether a certification is "active" (no expiry or expiry in the future)
// is a presentation concern and not enforced here.
type Certification struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	IssueDate     string    `json:"issueDate"`
	ExpiryDate    string    `json:"expiryDate"`
	CredentialID  string    `json:"credentialId"`
	CredentialURL string    `json:"credentialUrl"`
	Description   string    `json:"description"`
	Skills        []string  `json:"skills"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
