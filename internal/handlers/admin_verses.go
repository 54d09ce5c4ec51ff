// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"iamfeeling/internal/models"
	"iamfeeling/internal/store"
)

// verseInput is the create/update payload for verses.
type verseInput struct {
	SuraNumber      *int    `json:"suraNumber"`
	VerseNumber     *int    `json:"verseNumber"`
	ArabicText      *string `json:"arabicText"`
	TranslationText *string `json:"translationText"`
	Transliteration *string `json:"transliteration"`
	Reference       *string `json:"reference"`
}

func (in *verseInput) apply(v *models.Verse) {
	if in.SuraNumber != nil {
		v.SuraNumber = *in.SuraNumber
	}
	if in.VerseNumber != nil {
		v.VerseNumber = *in.VerseNumber
	}
	if in.ArabicText != nil {
		v.ArabicText = *in.ArabicText
	}
	if in.TranslationText != nil {
		v.TranslationText = *in.TranslationText
	}
	if in.Transliteration != nil {
		v.Transliteration = in.Transliteration
	}
	if in.Reference != nil {
		v.Reference = *in.Reference
	}
}

// VerseCreate handles POST /admin/verses. When no reference is given,
// it is derived as "Qur'an {sura}:{verse}".
func (a *Admin) VerseCreate(w http.ResponseWriter, r *http.Request) {
	var in verseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	v := &models.Verse{}
	in.apply(v)
	if errs := validateVerse(v); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}
	if strings.TrimSpace(v.Reference) == "" {
		v.Reference = models.DefaultReference(v.SuraNumber, v.VerseNumber)
	}

	created, err := a.verses.Create(v)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "This verse already exists.",
			FieldError{"verseNumber", "The sura and verse number pair is already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "create verse failed", err)
		return
	}

	a.invalidateProjections(r)
	respondCreated(w, "Verse created.", created)
}

// VerseUpdate handles PUT /admin/verses/{id}.
func (a *Admin) VerseUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in verseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	current, err := a.verses.FindByID(id)
	if err != nil {
		respondInternal(w, "find verse failed", err)
		return
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "Verse not found.")
		return
	}

	// A derived reference follows the verse when the pair moves; an
	// explicitly set one is never touched.
	derivedRef := current.Reference == models.DefaultReference(current.SuraNumber, current.VerseNumber)

	in.apply(current)
	if errs := validateVerse(current); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}
	if in.Reference == nil && derivedRef {
		current.Reference = models.DefaultReference(current.SuraNumber, current.VerseNumber)
	}

	updated, err := a.verses.Update(current)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "This verse already exists.",
			FieldError{"verseNumber", "The sura and verse number pair is already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "update verse failed", err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Verse not found.")
		return
	}

	a.invalidateProjections(r)
	respondOK(w, "Verse updated.", updated)
}

// VerseDelete handles DELETE /admin/verses/{id}. A verse still linked
// from a feeling cannot be deleted.
func (a *Admin) VerseDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := a.verses.Delete(id)
	if errors.Is(err, store.ErrReferenced) {
		respondError(w, http.StatusBadRequest, "This verse is still linked from a feeling and cannot be deleted.")
		return
	}
	if err != nil {
		respondInternal(w, "delete verse failed", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Verse not found.")
		return
	}

	a.invalidateProjections(r)
	respondOK(w, "Verse deleted.", map[string]string{"id": id.String()})
}

// VerseGet handles GET /admin/verses/{id}.
func (a *Admin) VerseGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := a.verses.FindByID(id)
	if err != nil {
		respondInternal(w, "find verse failed", err)
		return
	}
	if v == nil {
		respondError(w, http.StatusNotFound, "Verse not found.")
		return
	}

	respondOK(w, "Verse retrieved.", v)
}

// VerseList handles GET /admin/verses with pagination.
func (a *Admin) VerseList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	items, total, err := a.verses.ListPaged(page, limit)
	if err != nil {
		respondInternal(w, "list verses failed", err)
		return
	}
	if items == nil {
		items = []models.Verse{}
	}

	respondPage(w, "Verses retrieved.", items, NewPagination(page, limit, total))
}
