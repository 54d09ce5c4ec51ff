// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Sura bounds: the Qur'an has 114 suras.
const (
	MinSuraNumber = 1
	MaxSuraNumber = 114
)

// Sura is a Qur'an chapter reference record. It is a lookup table and
// is rarely mutated after initial import.
type Sura struct {
	ID              uuid.UUID `json:"id"`
	SuraNumber      int       `json:"suraNumber"`
	NameArabic      string    `json:"nameArabic"`
	NameEnglish     string    `json:"nameEnglish"`
	Transliteration string    `json:"transliteration"`
	TotalVerses     *int      `json:"totalVerses,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ValidSuraNumber reports whether n is inside the 1..114 range.
func ValidSuraNumber(n int) bool {
	return n >= MinSuraNumber && n <= MaxSuraNumber
}
