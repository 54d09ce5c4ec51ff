// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"iamfeeling/internal/models"
	"iamfeeling/internal/store"
)

// suraInput is the create/update payload for suras. All fields are
// pointers so updates can distinguish "absent" from "zero".
type suraInput struct {
	SuraNumber      *int    `json:"suraNumber"`
	NameArabic      *string `json:"nameArabic"`
	NameEnglish     *string `json:"nameEnglish"`
	Transliteration *string `json:"transliteration"`
	TotalVerses     *int    `json:"totalVerses"`
}

// apply copies the provided fields onto the target sura.
func (in *suraInput) apply(s *models.Sura) {
	if in.SuraNumber != nil {
		s.SuraNumber = *in.SuraNumber
	}
	if in.NameArabic != nil {
		s.NameArabic = *in.NameArabic
	}
	if in.NameEnglish != nil {
		s.NameEnglish = *in.NameEnglish
	}
	if in.Transliteration != nil {
		s.Transliteration = *in.Transliteration
	}
	if in.TotalVerses != nil {
		s.TotalVerses = in.TotalVerses
	}
}

// SuraCreate handles POST /admin/suras.
func (a *Admin) SuraCreate(w http.ResponseWriter, r *http.Request) {
	var in suraInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	s := &models.Sura{}
	in.apply(s)
	if errs := validateSura(s); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}

	created, err := a.suras.Create(s)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "A sura with this number already exists.",
			FieldError{"suraNumber", "Sura number already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "create sura failed", err)
		return
	}

	respondCreated(w, "Sura created.", created)
}

// SuraUpdate handles PUT /admin/suras/{id}. Only fields present in the
// payload are changed; the merged result is re-validated.
func (a *Admin) SuraUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in suraInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	current, err := a.suras.FindByID(id)
	if err != nil {
		respondInternal(w, "find sura failed", err)
		return
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "Sura not found.")
		return
	}

	in.apply(current)
	if errs := validateSura(current); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}

	updated, err := a.suras.Update(current)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "A sura with this number already exists.",
			FieldError{"suraNumber", "Sura number already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "update sura failed", err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Sura not found.")
		return
	}

	respondOK(w, "Sura updated.", updated)
}

// SuraDelete handles DELETE /admin/suras/{id}.
func (a *Admin) SuraDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := a.suras.Delete(id)
	if err != nil {
		respondInternal(w, "delete sura failed", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Sura not found.")
		return
	}

	respondOK(w, "Sura deleted.", map[string]string{"id": id.String()})
}

// SuraGet handles GET /admin/suras/{id}.
func (a *Admin) SuraGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := a.suras.FindByID(id)
	if err != nil {
		respondInternal(w, "find sura failed", err)
		return
	}
	if s == nil {
		respondError(w, http.StatusNotFound, "Sura not found.")
		return
	}

	respondOK(w, "Sura retrieved.", s)
}

// SuraList handles GET /admin/suras with pagination.
func (a *Admin) SuraList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	items, total, err := a.suras.ListPaged(page, limit)
	if err != nil {
		respondInternal(w, "list suras failed", err)
		return
	}
	if items == nil {
		items = []models.Sura{}
	}

	respondPage(w, "Suras retrieved.", items, NewPagination(page, limit, total))
}
