// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"iamfeeling/internal/cache"
	"iamfeeling/internal/models"
	"iamfeeling/internal/pubformat"
	"iamfeeling/internal/slug"
	"iamfeeling/internal/store"
)

// Public groups the unauthenticated read handlers. Feelings responses
// are served from the Valkey projection cache when warm; everything
// falls through to Postgres on a miss.
type Public struct {
	feelings *store.FeelingStore
	suras    *store.SuraStore
	verses   *store.VerseStore
	duas     *store.DuaStore
	cache    *cache.FeelingsCache
}

// NewPublic creates a new Public handler group. feelingsCache may be nil.
func NewPublic(feelings *store.FeelingStore, suras *store.SuraStore, verses *store.VerseStore, duas *store.DuaStore, feelingsCache *cache.FeelingsCache) *Public {
	return &Public{
		feelings: feelings,
		suras:    suras,
		verses:   verses,
		duas:     duas,
		cache:    feelingsCache,
	}
}

// ListFeelings handles GET /feelings: every feeling, projected with its
// verse and dua denormalized, ordered by title.
func (p *Public) ListFeelings(w http.ResponseWriter, r *http.Request) {
	if p.cache != nil {
		if payload, ok := p.cache.GetList(r.Context()); ok {
			respondOK(w, "Feelings retrieved.", json.RawMessage(payload))
			return
		}
	}

	rows, err := p.feelings.ListWithLinks()
	if err != nil {
		respondInternal(w, "list feelings failed", err)
		return
	}

	out := make([]pubformat.Feeling, 0, len(rows))
	for i := range rows {
		out = append(out, pubformat.FromLinked(&rows[i]))
	}

	if p.cache != nil {
		if payload, err := json.Marshal(out); err == nil {
			p.cache.SetList(r.Context(), payload)
		}
	}

	respondOK(w, "Feelings retrieved.", out)
}

// GetFeeling handles GET /feelings/{slug}. The slug is normalized
// before lookup so mixed-case URLs still resolve.
func (p *Public) GetFeeling(w http.ResponseWriter, r *http.Request) {
	s := slug.Normalize(chi.URLParam(r, "slug"))

	if p.cache != nil {
		if payload, ok := p.cache.GetSlug(r.Context(), s); ok {
			respondOK(w, "Feeling retrieved.", json.RawMessage(payload))
			return
		}
	}

	row, err := p.feelings.FindWithLinksBySlug(s)
	if err != nil {
		respondInternal(w, "find feeling failed", err)
		return
	}
	if row == nil {
		respondError(w, http.StatusNotFound, "Feeling not found.")
		return
	}

	out := pubformat.FromLinked(row)

	if p.cache != nil {
		if payload, err := json.Marshal(out); err == nil {
			p.cache.SetSlug(r.Context(), s, payload)
		}
	}

	respondOK(w, "Feeling retrieved.", out)
}

// ListSuras handles GET /suras. The full corpus is at most 114 rows, so
// no pagination.
func (p *Public) ListSuras(w http.ResponseWriter, r *http.Request) {
	items, err := p.suras.List()
	if err != nil {
		respondInternal(w, "list suras failed", err)
		return
	}
	if items == nil {
		items = []models.Sura{}
	}

	respondOK(w, "Suras retrieved.", items)
}

// GetSura handles GET /suras/{number}, addressing the sura by its
// canonical 1..114 number rather than its row id.
func (p *Public) GetSura(w http.ResponseWriter, r *http.Request) {
	number, ok := suraNumberParam(w, r)
	if !ok {
		return
	}

	s, err := p.suras.FindByNumber(number)
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

// ListVersesBySura handles GET /suras/{number}/verses.
func (p *Public) ListVersesBySura(w http.ResponseWriter, r *http.Request) {
	number, ok := suraNumberParam(w, r)
	if !ok {
		return
	}

	items, err := p.verses.ListBySura(number)
	if err != nil {
		respondInternal(w, "list verses failed", err)
		return
	}
	if items == nil {
		items = []models.Verse{}
	}

	respondOK(w, "Verses retrieved.", items)
}

// GetVerse handles GET /suras/{number}/verses/{verse}.
func (p *Public) GetVerse(w http.ResponseWriter, r *http.Request) {
	number, ok := suraNumberParam(w, r)
	if !ok {
		return
	}
	verseNumber, err := strconv.Atoi(chi.URLParam(r, "verse"))
	if err != nil || verseNumber < 1 {
		respondError(w, http.StatusBadRequest, "Invalid verse number.")
		return
	}

	v, err := p.verses.FindByPair(number, verseNumber)
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

// ListDuas handles GET /duas with pagination.
func (p *Public) ListDuas(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	items, total, err := p.duas.ListPaged(page, limit)
	if err != nil {
		respondInternal(w, "list duas failed", err)
		return
	}
	if items == nil {
		items = []models.Dua{}
	}

	respondPage(w, "Duas retrieved.", items, NewPagination(page, limit, total))
}

// GetDua handles GET /duas/{slug}.
func (p *Public) GetDua(w http.ResponseWriter, r *http.Request) {
	s := slug.Normalize(chi.URLParam(r, "slug"))

	d, err := p.duas.FindBySlug(s)
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

// suraNumberParam parses and bounds-checks the {number} route param.
func suraNumberParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || !models.ValidSuraNumber(number) {
		respondError(w, http.StatusBadRequest, "Invalid sura number.")
		return 0, false
	}
	return number, true
}
