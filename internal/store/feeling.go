// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"iamfeeling/internal/models"
)

const feelingColumns = `id, slug, title, emoji, preview, reminder, verse_id, dua_id, actions, created_at, updated_at`

// FeelingStore handles all feeling database operations. A feeling is
// the aggregate root for public display; its verse_id and dua_id are
// validated against existing rows by the handler before any write, not
// by a foreign key, so reads must tolerate a missing link.
type FeelingStore struct {
	db *sql.DB
}

// NewFeelingStore creates a new FeelingStore with the given database connection.
func NewFeelingStore(db *sql.DB) *FeelingStore {
	return &FeelingStore{db: db}
}

func scanFeeling(row interface{ Scan(...any) error }, f *models.Feeling) error {
	var actions []byte
	err := row.Scan(
		&f.ID, &f.Slug, &f.Title, &f.Emoji, &f.Preview, &f.Reminder,
		&f.VerseID, &f.DuaID, &actions, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(actions, &f.Actions); err != nil {
		return fmt.Errorf("decode actions: %w", err)
	}
	return nil
}

// Create inserts a new feeling and returns it with the generated ID.
// Returns ErrDuplicate if the slug is already taken.
func (s *FeelingStore) Create(in *models.Feeling) (*models.Feeling, error) {
	actions, err := json.Marshal(in.Actions)
	if err != nil {
		return nil, fmt.Errorf("encode actions: %w", err)
	}

	result := &models.Feeling{}
	err = scanFeeling(s.db.QueryRow(`
		INSERT INTO feelings (slug, title, emoji, preview, reminder, verse_id, dua_id, actions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+feelingColumns,
		in.Slug, in.Title, in.Emoji, in.Preview, in.Reminder, in.VerseID, in.DuaID, actions,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create feeling: %w", err)
	}
	return result, nil
}

// Update writes the full row for an existing feeling. Returns nil if
// the id does not resolve and ErrDuplicate on a slug collision.
func (s *FeelingStore) Update(in *models.Feeling) (*models.Feeling, error) {
	actions, err := json.Marshal(in.Actions)
	if err != nil {
		return nil, fmt.Errorf("encode actions: %w", err)
	}

	result := &models.Feeling{}
	err = scanFeeling(s.db.QueryRow(`
		UPDATE feelings SET
			slug = $1, title = $2, emoji = $3, preview = $4, reminder = $5,
			verse_id = $6, dua_id = $7, actions = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING `+feelingColumns,
		in.Slug, in.Title, in.Emoji, in.Preview, in.Reminder,
		in.VerseID, in.DuaID, actions, in.ID,
	), result)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update feeling: %w", err)
	}
	return result, nil
}

// Delete removes a feeling by ID. The bool result reports whether a
// row was deleted.
func (s *FeelingStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM feelings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete feeling: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// FindByID retrieves a feeling by UUID. Returns nil if not found.
func (s *FeelingStore) FindByID(id uuid.UUID) (*models.Feeling, error) {
	result := &models.Feeling{}
	err := scanFeeling(s.db.QueryRow(`SELECT `+feelingColumns+` FROM feelings WHERE id = $1`, id), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find feeling by id: %w", err)
	}
	return result, nil
}

// FindBySlug retrieves a feeling by slug (already normalized by the
// caller). Returns nil if not found.
func (s *FeelingStore) FindBySlug(slug string) (*models.Feeling, error) {
	result := &models.Feeling{}
	err := scanFeeling(s.db.QueryRow(`SELECT `+feelingColumns+` FROM feelings WHERE slug = $1`, slug), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find feeling by slug: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of feelings, newest first, plus the total
// row count. Used by the admin listing.
func (s *FeelingStore) ListPaged(page, limit int) ([]models.Feeling, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM feelings`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count feelings: %w", err)
	}

	lim, off := pageWindow(page, limit)
	rows, err := s.db.Query(`
		SELECT `+feelingColumns+` FROM feelings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, lim, off)
	if err != nil {
		return nil, 0, fmt.Errorf("list feelings paged: %w", err)
	}
	defer rows.Close()

	var items []models.Feeling
	for rows.Next() {
		var item models.Feeling
		if err := scanFeeling(rows, &item); err != nil {
			return nil, 0, fmt.Errorf("scan feeling: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

// ListWithLinks returns every feeling ordered by title with its verse
// and dua resolved via LEFT JOIN. A link that no longer resolves comes
// back nil rather than failing the read. The public corpus is small
// and fixed, so no pagination.
func (s *FeelingStore) ListWithLinks() ([]models.FeelingWithLinks, error) {
	rows, err := s.db.Query(linkedFeelingQuery + ` ORDER BY f.title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list feelings with links: %w", err)
	}
	defer rows.Close()

	var items []models.FeelingWithLinks
	for rows.Next() {
		item, err := scanLinkedFeeling(rows)
		if err != nil {
			return nil, fmt.Errorf("scan linked feeling: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// FindWithLinksBySlug retrieves one feeling with its verse and dua
// resolved. Returns nil if the slug does not resolve.
func (s *FeelingStore) FindWithLinksBySlug(slug string) (*models.FeelingWithLinks, error) {
	row := s.db.QueryRow(linkedFeelingQuery+` WHERE f.slug = $1`, slug)
	item, err := scanLinkedFeeling(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find feeling with links: %w", err)
	}
	return item, nil
}

const linkedFeelingQuery = `
	SELECT f.id, f.slug, f.title, f.emoji, f.preview, f.reminder,
	       f.verse_id, f.dua_id, f.actions, f.created_at, f.updated_at,
	       v.id, v.sura_number, v.verse_number, v.arabic_text, v.translation_text,
	       v.transliteration, v.reference, v.created_at, v.updated_at,
	       d.id, d.title, d.slug, d.arabic, d.transliteration, d.meaning,
	       d.reference, d.category, d.benefits, d.feeling_id, d.created_at, d.updated_at
	FROM feelings f
	LEFT JOIN verses v ON v.id = f.verse_id
	LEFT JOIN duas d ON d.id = f.dua_id`

// scanLinkedFeeling decodes one row of linkedFeelingQuery. The verse
// and dua columns are nullable because of the LEFT JOINs.
func scanLinkedFeeling(row interface{ Scan(...any) error }) (*models.FeelingWithLinks, error) {
	var (
		item    models.FeelingWithLinks
		actions []byte

		vID              uuid.NullUUID
		vSura, vVerse    sql.NullInt64
		vArabic, vTrans  sql.NullString
		vTranslit, vRef  sql.NullString
		vCreated, vUpd   sql.NullTime

		dID              uuid.NullUUID
		dTitle, dSlug    sql.NullString
		dArabic, dMean   sql.NullString
		dTranslit, dRef  sql.NullString
		dCat, dBenefits  sql.NullString
		dFeelingID       uuid.NullUUID
		dCreated, dUpd   sql.NullTime
	)

	err := row.Scan(
		&item.ID, &item.Slug, &item.Title, &item.Emoji, &item.Preview, &item.Reminder,
		&item.VerseID, &item.DuaID, &actions, &item.CreatedAt, &item.UpdatedAt,
		&vID, &vSura, &vVerse, &vArabic, &vTrans, &vTranslit, &vRef, &vCreated, &vUpd,
		&dID, &dTitle, &dSlug, &dArabic, &dTranslit, &dMean, &dRef, &dCat, &dBenefits,
		&dFeelingID, &dCreated, &dUpd,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(actions, &item.Actions); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}

	if vID.Valid {
		item.Verse = &models.Verse{
			ID:              vID.UUID,
			SuraNumber:      int(vSura.Int64),
			VerseNumber:     int(vVerse.Int64),
			ArabicText:      vArabic.String,
			TranslationText: vTrans.String,
			Reference:       vRef.String,
			CreatedAt:       vCreated.Time,
			UpdatedAt:       vUpd.Time,
		}
		if vTranslit.Valid {
			item.Verse.Transliteration = &vTranslit.String
		}
	}

	if dID.Valid {
		item.Dua = &models.Dua{
			ID:        dID.UUID,
			Title:     dTitle.String,
			Slug:      dSlug.String,
			Arabic:    dArabic.String,
			Meaning:   dMean.String,
			CreatedAt: dCreated.Time,
			UpdatedAt: dUpd.Time,
		}
		if dTranslit.Valid {
			item.Dua.Transliteration = &dTranslit.String
		}
		if dRef.Valid {
			item.Dua.Reference = &dRef.String
		}
		if dCat.Valid {
			item.Dua.Category = &dCat.String
		}
		if dBenefits.Valid {
			item.Dua.Benefits = &dBenefits.String
		}
		if dFeelingID.Valid {
			item.Dua.FeelingID = &dFeelingID.UUID
		}
	}

	return &item, nil
}
