// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents an admin account's permission level.
type Role string

const (
	RoleAdmin Role = "admin"
)

// Admin represents a backend administrator account. Admins are created
// only by the seed path, never through an API endpoint.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin returns true if the account has the admin role. The system is
// single-role today; the explicit check keeps room for future roles.
func (a *Admin) IsAdmin() bool {
	return a.Role == RoleAdmin
}
