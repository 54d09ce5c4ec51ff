// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation, normalization,
// and validation. Slugs are unique within their collection and are
// normalized to lowercase before persistence.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// canonical is the shape every stored slug must have.
	canonical = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Feeling Grateful!" → "feeling-grateful"
func Generate(s string) string {
	result := Normalize(s)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Normalize lowercases and trims a slug without altering its characters.
// Applied before persistence and on lookups, so slug matching is
// case-insensitive.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Valid reports whether s already has the canonical slug shape:
// non-empty, lowercase letters, digits, and hyphens only.
func Valid(s string) bool {
	return canonical.MatchString(s)
}
