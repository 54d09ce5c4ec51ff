// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all entities.
// Each store struct wraps a *sql.DB and exposes typed query methods.
// Lookups return nil (not an error) when no row matches; constraint
// violations are translated to the sentinel errors below so handlers
// never see raw driver errors.
package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert or update would violate a
// uniqueness constraint (slug, email, sura number, or the
// sura/verse pair). The unique index is the correctness mechanism:
// a racing duplicate insert loses at the database, not in application
// locking.
var ErrDuplicate = errors.New("duplicate value for unique field")

// ErrReferenced is returned when deleting a verse or dua that a
// feeling still links to.
var ErrReferenced = errors.New("entity is referenced by a feeling")

// isUniqueViolation reports whether err is a Postgres unique-index
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// pageWindow converts 1-based page/limit values into a LIMIT/OFFSET
// pair, clamping out-of-range inputs to sane values.
func pageWindow(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return limit, (page - 1) * limit
}
