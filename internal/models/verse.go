// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Verse is a single Qur'an verse with its Arabic text and translation.
// The (SuraNumber, VerseNumber) pair is unique across the collection.
type Verse struct {
	ID              uuid.UUID `json:"id"`
	SuraNumber      int       `json:"suraNumber"`
	VerseNumber     int       `json:"verseNumber"`
	ArabicText      string    `json:"arabicText"`
	TranslationText string    `json:"translationText"`
	Transliteration *string   `json:"transliteration,omitempty"`
	Reference       string    `json:"reference"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DefaultReference builds the citation used when no reference was
// supplied at creation, e.g. "Qur'an 94:5".
func DefaultReference(suraNumber, verseNumber int) string {
	return fmt.Sprintf("Qur'an %d:%d", suraNumber, verseNumber)
}
