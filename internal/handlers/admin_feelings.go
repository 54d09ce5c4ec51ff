// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"iamfeeling/internal/models"
	"iamfeeling/internal/slug"
	"iamfeeling/internal/store"
)

// feelingInput is the create/update payload for feelings.
type feelingInput struct {
	Slug     *string    `json:"slug"`
	Title    *string    `json:"title"`
	Emoji    *string    `json:"emoji"`
	Preview  *string    `json:"preview"`
	Reminder *string    `json:"reminder"`
	VerseID  *uuid.UUID `json:"verseId"`
	DuaID    *uuid.UUID `json:"duaId"`
	Actions  *[]string  `json:"actions"`
}

func (in *feelingInput) apply(f *models.Feeling) {
	if in.Slug != nil {
		f.Slug = slug.Normalize(*in.Slug)
	}
	if in.Title != nil {
		f.Title = *in.Title
	}
	if in.Emoji != nil {
		f.Emoji = *in.Emoji
	}
	if in.Preview != nil {
		f.Preview = *in.Preview
	}
	if in.Reminder != nil {
		f.Reminder = *in.Reminder
	}
	if in.VerseID != nil {
		f.VerseID = *in.VerseID
	}
	if in.DuaID != nil {
		f.DuaID = *in.DuaID
	}
	if in.Actions != nil {
		f.Actions = models.CleanActions(*in.Actions)
	}
}

// checkLinks verifies that the feeling's verse and dua references
// resolve to stored rows. A reference to a missing row is a validation
// error rather than a silently-null public projection.
func (a *Admin) checkLinks(f *models.Feeling) ([]FieldError, error) {
	var errs []FieldError
	if f.VerseID == uuid.Nil {
		errs = append(errs, FieldError{"verseId", "A verse is required."})
	} else {
		v, err := a.verses.FindByID(f.VerseID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			errs = append(errs, FieldError{"verseId", "No verse exists with this id."})
		}
	}
	if f.DuaID == uuid.Nil {
		errs = append(errs, FieldError{"duaId", "A dua is required."})
	} else {
		d, err := a.duas.FindByID(f.DuaID)
		if err != nil {
			return nil, err
		}
		if d == nil {
			errs = append(errs, FieldError{"duaId", "No dua exists with this id."})
		}
	}
	return errs, nil
}

// FeelingCreate handles POST /admin/feelings. A missing slug is
// generated from the title.
func (a *Admin) FeelingCreate(w http.ResponseWriter, r *http.Request) {
	var in feelingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	f := &models.Feeling{}
	in.apply(f)
	if f.Slug == "" && f.Title != "" {
		f.Slug = slug.Generate(f.Title)
	}

	errs := validateFeeling(f)
	linkErrs, err := a.checkLinks(f)
	if err != nil {
		respondInternal(w, "feeling link check failed", err)
		return
	}
	errs = append(errs, linkErrs...)
	if len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}

	created, err := a.feelings.Create(f)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "A feeling with this slug already exists.",
			FieldError{"slug", "Slug already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "create feeling failed", err)
		return
	}

	a.invalidateProjections(r)
	respondCreated(w, "Feeling created.", created)
}

// FeelingUpdate handles PUT /admin/feelings/{id}.
func (a *Admin) FeelingUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in feelingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	current, err := a.feelings.FindByID(id)
	if err != nil {
		respondInternal(w, "find feeling failed", err)
		return
	}
	if current == nil {
		respondError(w, http.StatusNotFound, "Feeling not found.")
		return
	}

	in.apply(current)

	errs := validateFeeling(current)
	linkErrs, err := a.checkLinks(current)
	if err != nil {
		respondInternal(w, "feeling link check failed", err)
		return
	}
	errs = append(errs, linkErrs...)
	if len(errs) > 0 {
		respondError(w, http.StatusBadRequest, "Validation failed.", errs...)
		return
	}

	updated, err := a.feelings.Update(current)
	if errors.Is(err, store.ErrDuplicate) {
		respondError(w, http.StatusBadRequest, "A feeling with this slug already exists.",
			FieldError{"slug", "Slug already in use."})
		return
	}
	if err != nil {
		respondInternal(w, "update feeling failed", err)
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Feeling not found.")
		return
	}

	a.invalidateProjections(r)
	respondOK(w, "Feeling updated.", updated)
}

// FeelingDelete handles DELETE /admin/feelings/{id}.
func (a *Admin) FeelingDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deleted, err := a.feelings.Delete(id)
	if err != nil {
		respondInternal(w, "delete feeling failed", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Feeling not found.")
		return
	}

	a.invalidateProjections(r)
	respondOK(w, "Feeling deleted.", map[string]string{"id": id.String()})
}

// FeelingGet handles GET /admin/feelings/{id}.
func (a *Admin) FeelingGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := a.feelings.FindByID(id)
	if err != nil {
		respondInternal(w, "find feeling failed", err)
		return
	}
	if f == nil {
		respondError(w, http.StatusNotFound, "Feeling not found.")
		return
	}

	respondOK(w, "Feeling retrieved.", f)
}

// FeelingList handles GET /admin/feelings with pagination.
func (a *Admin) FeelingList(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	items, total, err := a.feelings.ListPaged(page, limit)
	if err != nil {
		respondInternal(w, "list feelings failed", err)
		return
	}
	if items == nil {
		items = []models.Feeling{}
	}

	respondPage(w, "Feelings retrieved.", items, NewPagination(page, limit, total))
}
