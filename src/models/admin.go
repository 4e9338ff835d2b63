package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role issued today. The column exists so a future
// non-admin editor role does not require a migration.
const RoleAdmin = "admin"

// AdminUser represents the administrator account that owns all content.
type AdminUser struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never expose
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

// PublicUser is the user shape returned by login and /auth/me.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// Public strips credential material from an AdminUser.
func (u *AdminUser) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
