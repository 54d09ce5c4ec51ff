// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"iamfeeling/internal/models"
	"iamfeeling/internal/slug"
	"iamfeeling/internal/store"
)

// duaInput is the create/update payload for duas.
type duaInput struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Arabic          *string `json:"arabic"`
	Transliteration *string `json:"transliteration"`
	Meaning         *string `json:"meaning"`
	Reference       *string `json:"reference"`
	Category        *string `json:"category"`
	Benefits        *string `json:"benefits"`
}

func (in *duaInput) apply(d *models.Dua) {
	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Slug != nil {
		d.Slug = slug.Normalize(*in.Slug)
	}
	if in.Arabic != nil {
		d.Arabic = *in.Arabic
	}
	if in.Transliteration != nil {
		d.Transliteration = in.Transliteration
	}
	if in.Meaning != nil {
		d.Meaning = *in.Meaning
	}
	if in.Reference != nil {
		d.Reference = in.Reference
	}
	if in.Category != nil {
		d.Category = in.Category
	}
	if in.Benefits != nil {
		d.Benefits = in.Benefits
	}
}

// DuaCreate handles POST /admin/duas. A missing slug is generated from
// the title.
func (a *Admin) DuaCreate(w http.ResponseWriter, r *http.Request) {
	var in duaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	d := &models.Dua{}
	in.apply(d)
	if d.Slug == "" && d.Title != "" {
		d.Slug = slug.Generate(d.Title)
	}
	if errs := validateDua(d); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}

	created, err := a.duas.Create(d)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "A dua with this slug already exists.",
			FieldError{"slug", "Slug already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "create dua failed", err)
		return
	}

	a.invalidateProjections(r)
	respondCreated(w, "Dua created.", created)
}

// DuaUpdate handles PUT /admin/duas/{id}.
func (a *Admin) DuaUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in duaInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	current, err := a.duas.FindByID(id)
	if err != nil {
		respondInternal(w, "find dua failed", err)
		return
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "Dua not found.")
		return
	}

	in.apply(current)
	if errs := validateDua(current); len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}

	updated, err := a.duas.Update(current)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "A dua with this slug already exists.",
			FieldError{"slug", "Slug already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "update dua failed", err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Dua not found.")
		return
	}

	a.invalidateProjections(r)
	respondOK(w, "Dua updated.", updated)
}

// DuaDelete handles DELETE /admin/duas/{id}. A dua still linked from a
// feeling cannot be deleted.
func (a *Admin) DuaDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := a.duas.Delete(id)
	if errors.Is(err, store.ErrReferenced) {
		respondError(w, http.StatusBadRequest, "This dua is still linked from a feeling and cannot be deleted.")
		return
	}
	if err != nil {
		respondInternal(w, "delete dua failed", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Dua not found.")
		return
	}

	a.invalidateProjections(r)
	respondOK(w, "Dua deleted.", map[string]string{"id": id.String()})
}

// DuaGet handles GET /admin/duas/{id}.
func (a *Admin) DuaGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := a.duas.FindByID(id)
	if err != nil {
		respondInternal(w, "find dua failed", err)
		return
	}
	if d == nil {
		respondError(w, http.StatusNotFound, "Dua not found.")
		return
	}

	respondOK(w, "Dua retrieved.", d)
}

// DuaList handles GET /admin/duas with pagination.
func (a *Admin) DuaList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	items, total, err := a.duas.ListPaged(page, limit)
	if err != nil {
		respondInternal(w, "list duas failed", err)
		return
	}
	if items == nil {
		items = []models.Dua{}
	}

	respondPage(w, "Duas retrieved.", items, NewPagination(page, limit, total))
}
