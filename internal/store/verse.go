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

const verseColumns = `id, sura_number, verse_number, arabic_text, translation_text, transliteration, reference, created_at, updated_at`

// VerseStore handles all verse database operations. The
// (sura_number, verse_number) pair is unique across the table.
type VerseStore struct {
	db *sql.DB
}

// NewVerseStore creates a new VerseStore with the given database connection.
func NewVerseStore(db *sql.DB) *VerseStore {
	return &VerseStore{db: db}
}

func scanVerse(row interface{ Scan(...any) error }, v *models.Verse) error {
	return row.Scan(
		&v.ID, &v.SuraNumber, &v.VerseNumber, &v.ArabicText, &v.TranslationText,
		&v.Transliteration, &v.Reference, &v.CreatedAt, &v.UpdatedAt,
	)
}

// Create inserts a new verse and returns it with the generated ID.
// Returns ErrDuplicate if the (sura, verse) pair already exists.
func (s *VerseStore) Create(in *models.Verse) (*models.Verse, error) {
	result := &models.Verse{}
	err := scanVerse(s.db.QueryRow(`
		INSERT INTO verses (sura_number, verse_number, arabic_text, translation_text, transliteration, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+verseColumns,
		in.SuraNumber, in.VerseNumber, in.ArabicText, in.TranslationText, in.Transliteration, in.Reference,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create verse: %w", err)
	}
	return result, nil
}

// Update writes the full row for an existing verse. Returns nil if the
// id does not resolve and ErrDuplicate on a (sura, verse) collision.
func (s *VerseStore) Update(in *models.Verse) (*models.Verse, error) {
	result := &models.Verse{}
	err := scanVerse(s.db.QueryRow(`
		UPDATE verses SET
			sura_number = $1, verse_number = $2, arabic_text = $3,
			translation_text = $4, transliteration = $5, reference = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING `+verseColumns,
		in.SuraNumber, in.VerseNumber, in.ArabicText, in.TranslationText,
		in.Transliteration, in.Reference, in.ID,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update verse: %w", err)
	}
	return result, nil
}

// Delete removes a verse by ID. Returns ErrReferenced if a feeling
// still links to it; the dangling-reference question is resolved by
// refusing the delete rather than degrading the public projection.
// The reference guard lives inside the DELETE itself so a concurrent
// feeling create cannot slip between a check and the delete.
func (s *VerseStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM verses
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM feelings WHERE verse_id = $1)
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete verse: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		return true, nil
	}

	// Nothing deleted: either the verse is referenced or it is gone.
	var refs int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM feelings WHERE verse_id = $1`, id).Scan(&refs); err != nil {
		return false, fmt.Errorf("count verse references: %w", err)
	}
	if refs > 0 {
		return false, ErrReferenced
	}
	return false, nil
}

// FindByID retrieves a verse by UUID. Returns nil if not found.
func (s *VerseStore) FindByID(id uuid.UUID) (*models.Verse, error) {
	result := &models.Verse{}
	err := scanVerse(s.db.QueryRow(`SELECT `+verseColumns+` FROM verses WHERE id = $1`, id), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find verse by id: %w", err)
	}
	return result, nil
}

// FindByPair retrieves a verse by its compound (sura, verse) key.
// Returns nil if not found.
func (s *VerseStore) FindByPair(suraNumber, verseNumber int) (*models.Verse, error) {
	result := &models.Verse{}
	err := scanVerse(s.db.QueryRow(`
		SELECT `+verseColumns+` FROM verses
		WHERE sura_number = $1 AND verse_number = $2
	`, suraNumber, verseNumber), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find verse by pair: %w", err)
	}
	return result, nil
}

// ListBySura returns all verses of one sura in verse order.
func (s *VerseStore) ListBySura(suraNumber int) ([]models.Verse, error) {
	rows, err := s.db.Query(`
		SELECT `+verseColumns+` FROM verses
		WHERE sura_number = $1
		ORDER BY verse_number ASC
	`, suraNumber)
	if err != nil {
		return nil, fmt.Errorf("list verses by sura: %w", err)
	}
	defer rows.Close()

	var items []models.Verse
	for rows.Next() {
		var item models.Verse
		if err := scanVerse(rows, &item); err != nil {
			return nil, fmt.Errorf("scan verse: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListPaged returns one page of verses in (sura, verse) order plus the
// total row count.
func (s *VerseStore) ListPaged(page, limit int) ([]models.Verse, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count verses: %w", err)
	}

	lim, off := pageWindow(page, limit)
	rows, err := s.db.Query(`
		SELECT `+verseColumns+` FROM verses
		ORDER BY sura_number ASC, verse_number ASC
		LIMIT $1 OFFSET $2
	`, lim, off)
	if err != nil {
		return nil, 0, fmt.Errorf("list verses paged: %w", err)
	}
	defer rows.Close()

	var items []models.Verse
	for rows.Next() {
		var item models.Verse
		if err := scanVerse(rows, &item); err != nil {
			return nil, 0, fmt.Errorf("scan verse: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
