// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"iamfeeling/internal/models"
)

// AdminStore handles all admin-account database operations. Accounts
// are created by the seed path only; this store reads and verifies.
type AdminStore struct {
	db *sql.DB
}

// NewAdminStore creates a new AdminStore with the given database connection.
func NewAdminStore(db *sql.DB) *AdminStore {
	return &AdminStore{db: db}
}

// FindByEmail retrieves an admin by exact email match. Returns nil if
// not found. Emails are stored lowercase; callers normalize input.
func (s *AdminStore) FindByEmail(email string) (*models.Admin, error) {
	a := &models.Admin{}
	err := s.db.QueryRow(`
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM admins WHERE email = $1
	`, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return a, nil
}

// FindByID retrieves an admin by UUID. Returns nil if not found.
// Called on every authenticated request so a deleted admin cannot use
// a still-valid token.
func (s *AdminStore) FindByID(id uuid.UUID) (*models.Admin, error) {
	a := &models.Admin{}
	err := s.db.QueryRow(`
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM admins WHERE id = $1
	`, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return a, nil
}

// CheckPassword verifies a plaintext password against the admin's
// stored bcrypt hash. bcrypt's comparison is constant-time.
func (s *AdminStore) CheckPassword(admin *models.Admin, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil
}
