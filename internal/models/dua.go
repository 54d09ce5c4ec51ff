// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Dua is a supplication record: Arabic text, transliteration, and its
// meaning, plus optional citation and categorization fields.
// FeelingID is an optional back-reference to the Feeling that links it.
type Dua struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Arabic          string     `json:"arabic"`
	Transliteration *string    `json:"transliteration,omitempty"`
	Meaning         string     `json:"meaning"`
	Reference       *string    `json:"reference,omitempty"`
	Category        *string    `json:"category,omitempty"`
	Benefits        *string    `json:"benefits,omitempty"`
	FeelingID       *uuid.UUID `json:"feelingId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
