// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"iamfeeling/internal/cache"
	"iamfeeling/internal/store"
)

// Default and maximum page sizes for admin listings.
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Admin groups all admin CRUD HTTP handlers and their dependencies.
type Admin struct {
	suras    *store.SuraStore
	verses   *store.VerseStore
	duas     *store.DuaStore
	feelings *store.FeelingStore
	cache    *cache.FeelingsCache
}

// NewAdmin creates a new Admin handler group. cache may be nil; the
// handlers then skip invalidation.
func NewAdmin(suras *store.SuraStore, verses *store.VerseStore, duas *store.DuaStore, feelings *store.FeelingStore, feelingsCache *cache.FeelingsCache) *Admin {
	return &Admin{
		suras:    suras,
		verses:   verses,
		duas:     duas,
		feelings: feelings,
		cache:    feelingsCache,
	}
}

// invalidateProjections drops every cached public projection. Called
// after any mutation that can change what the public API serves.
func (a *Admin) invalidateProjections(r *http.Request) {
	if a.cache != nil {
		a.cache.Invalidate(r.Context())
	}
}

// pathID parses the {id} route parameter. A malformed id is a 400, kept
// distinct from the 404 of a well-formed id that doesn't resolve.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads ?page= and ?limit=, clamping to sane bounds.
func pageParams(r *http.Request) (page, limit int) {
	page, limit = 1, defaultPageLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
