// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"iamfeeling/internal/models"
)

const duaColumns = `id, title, slug, arabic, transliteration, meaning, reference, category, benefits, feeling_id, created_at, updated_at`

// DuaStore handles all dua database operations. Slugs are unique and
// stored lowercase.
type DuaStore struct {
	db *sql.DB
}

// NewDuaStore creates a new DuaStore with the given database connection.
func NewDuaStore(db *sql.DB) *DuaStore {
	return &DuaStore{db: db}
}

func scanDua(row interface{ Scan(...any) error }, d *models.Dua) error {
	return row.Scan(
		&d.ID, &d.Title, &d.Slug, &d.Arabic, &d.Transliteration, &d.Meaning,
		&d.Reference, &d.Category, &d.Benefits, &d.FeelingID, &d.CreatedAt, &d.UpdatedAt,
	)
}

// Create inserts a new dua and returns it with the generated ID.
// Returns ErrDuplicate if the slug is already taken.
func (s *DuaStore) Create(in *models.Dua) (*models.Dua, error) {
	result := &models.Dua{}
	err := scanDua(s.db.QueryRow(`
		INSERT INTO duas (title, slug, arabic, transliteration, meaning, reference, category, benefits, feeling_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+duaColumns,
		in.Title, in.Slug, in.Arabic, in.Transliteration, in.Meaning,
		in.Reference, in.Category, in.Benefits, in.FeelingID,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create dua: %w", err)
	}
	return result, nil
}

// Update writes the full row for an existing dua. Returns nil if the
// id does not resolve and ErrDuplicate on a slug collision.
func (s *DuaStore) Update(in *models.Dua) (*models.Dua, error) {
	result := &models.Dua{}
	err := scanDua(s.db.QueryRow(`
		UPDATE duas SET
			title = $1, slug = $2, arabic = $3, transliteration = $4,
			meaning = $5, reference = $6, category = $7, benefits = $8,
			feeling_id = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING `+duaColumns,
		in.Title, in.Slug, in.Arabic, in.Transliteration, in.Meaning,
		in.Reference, in.Category, in.Benefits, in.FeelingID, in.ID,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update dua: %w", err)
	}
	return result, nil
}

// Delete removes a dua by ID. Returns ErrReferenced if a feeling still
// links to it. The reference guard lives inside the DELETE itself so a
// concurrent feeling create cannot slip between a check and the delete.
func (s *DuaStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM duas
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM feelings WHERE dua_id = $1)
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete dua: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		return true, nil
	}

	// Nothing deleted: either the dua is referenced or it is gone.
	var refs int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM feelings WHERE dua_id = $1`, id).Scan(&refs); err != nil {
		return false, fmt.Errorf("count dua references: %w", err)
	}
	if refs > 0 {
		return false, ErrReferenced
	}
	return false, nil
}

// FindByID retrieves a dua by UUID. Returns nil if not found.
func (s *DuaStore) FindByID(id uuid.UUID) (*models.Dua, error) {
	result := &models.Dua{}
	err := scanDua(s.db.QueryRow(`SELECT `+duaColumns+` FROM duas WHERE id = $1`, id), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dua by id: %w", err)
	}
	return result, nil
}

// FindBySlug retrieves a dua by its slug (already normalized by the
// caller). Returns nil if not found.
func (s *DuaStore) FindBySlug(slug string) (*models.Dua, error) {
	result := &models.Dua{}
	err := scanDua(s.db.QueryRow(`SELECT `+duaColumns+` FROM duas WHERE slug = $1`, slug), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find dua by slug: %w", err)
	}
	return result, nil
}

// List returns all duas ordered by title.
func (s *DuaStore) List() ([]models.Dua, error) {
	rows, err := s.db.Query(`SELECT ` + duaColumns + ` FROM duas ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list duas: %w", err)
	}
	defer rows.Close()

	var items []models.Dua
	for rows.Next() {
		var item models.Dua
		if err := scanDua(rows, &item); err != nil {
			return nil, fmt.Errorf("scan dua: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListPaged returns one page of duas ordered by title plus the total
// row count.
func (s *DuaStore) ListPaged(page, limit int) ([]models.Dua, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM duas`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count duas: %w", err)
	}

	lim, off := pageWindow(page, limit)
	rows, err := s.db.Query(`
		SELECT `+duaColumns+` FROM duas
		ORDER BY title ASC
		LIMIT $1 OFFSET $2
	`, lim, off)
	if err != nil {
		return nil, 0, fmt.Errorf("list duas paged: %w", err)
	}
	defer rows.Close()

	var items []models.Dua
	for rows.Next() {
		var item models.Dua
		if err := scanDua(rows, &item); err != nil {
			return nil, 0, fmt.Errorf("scan dua: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
