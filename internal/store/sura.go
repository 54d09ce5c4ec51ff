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

const suraColumns = `id, sura_number, name_arabic, name_english, transliteration, total_verses, created_at, updated_at`

// SuraStore handles all sura database operations. Suras are a
// reference table keyed by the unique sura number (1..114).
type SuraStore struct {
	db *sql.DB
}

// NewSuraStore creates a new SuraStore with the given database connection.
func NewSuraStore(db *sql.DB) *SuraStore {
	return &SuraStore{db: db}
}

func scanSura(row interface{ Scan(...any) error }, s *models.Sura) error {
	return row.Scan(
		&s.ID, &s.SuraNumber, &s.NameArabic, &s.NameEnglish,
		&s.Transliteration, &s.TotalVerses, &s.CreatedAt, &s.UpdatedAt,
	)
}

// Create inserts a new sura and returns it with the generated ID.
// Returns ErrDuplicate if the sura number is already taken.
func (s *SuraStore) Create(in *models.Sura) (*models.Sura, error) {
	result := &models.Sura{}
	err := scanSura(s.db.QueryRow(`
		INSERT INTO suras (sura_number, name_arabic, name_english, transliteration, total_verses)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+suraColumns,
		in.SuraNumber, in.NameArabic, in.NameEnglish, in.Transliteration, in.TotalVerses,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create sura: %w", err)
	}
	return result, nil
}

// Update writes the full row for an existing sura.
func (s *SuraStore) Update(in *models.Sura) (*models.Sura, error) {
	result := &models.Sura{}
	err := scanSura(s.db.QueryRow(`
		UPDATE suras SET
			sura_number = $1, name_arabic = $2, name_english = $3,
			transliteration = $4, total_verses = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING `+suraColumns,
		in.SuraNumber, in.NameArabic, in.NameEnglish, in.Transliteration, in.TotalVerses, in.ID,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update sura: %w", err)
	}
	return result, nil
}

// Delete removes a sura by ID. The bool result reports whether a row
// was deleted.
func (s *SuraStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM suras WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sura: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// FindByID retrieves a sura by UUID. Returns nil if not found.
func (s *SuraStore) FindByID(id uuid.UUID) (*models.Sura, error) {
	result := &models.Sura{}
	err := scanSura(s.db.QueryRow(`SELECT `+suraColumns+` FROM suras WHERE id = $1`, id), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sura by id: %w", err)
	}
	return result, nil
}

// FindByNumber retrieves a sura by its 1..114 number. Returns nil if
// not found.
func (s *SuraStore) FindByNumber(number int) (*models.Sura, error) {
	result := &models.Sura{}
	err := scanSura(s.db.QueryRow(`SELECT `+suraColumns+` FROM suras WHERE sura_number = $1`, number), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find sura by number: %w", err)
	}
	return result, nil
}

// List returns all suras in canonical order.
func (s *SuraStore) List() ([]models.Sura, error) {
	rows, err := s.db.Query(`SELECT ` + suraColumns + ` FROM suras ORDER BY sura_number ASC`)
	if err != nil {
		return nil, fmt.Errorf("list suras: %w", err)
	}
	defer rows.Close()

	var items []models.Sura
	for rows.Next() {
		var item models.Sura
		if err := scanSura(rows, &item); err != nil {
			return nil, fmt.Errorf("scan sura: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListPaged returns one page of suras in canonical order plus the
// total row count.
func (s *SuraStore) ListPaged(page, limit int) ([]models.Sura, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM suras`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count suras: %w", err)
	}

	lim, off := pageWindow(page, limit)
	rows, err := s.db.Query(`
		SELECT `+suraColumns+` FROM suras
		ORDER BY sura_number ASC
		LIMIT $1 OFFSET $2
	`, lim, off)
	if err != nil {
		return nil, 0, fmt.Errorf("list suras paged: %w", err)
	}
	defer rows.Close()

	var items []models.Sura
	for rows.Next() {
		var item models.Sura
		if err := scanSura(rows, &item); err != nil {
			return nil, 0, fmt.Errorf("scan sura: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
