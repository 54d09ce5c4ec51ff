// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Feeling is the aggregate root for public display: an emotional state
// paired with exactly one Verse, one Dua, and an ordered list of
// suggested actions.
type Feeling struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Emoji     string    `json:"emoji"`
	Preview   string    `json:"preview"`
	Reminder  string    `json:"reminder"`
	VerseID   uuid.UUID `json:"verseId"`
	DuaID     uuid.UUID `json:"duaId"`
	Actions   []string  `json:"actions"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeelingWithLinks is a feeling with its linked verse and dua resolved.
// Either link may be nil if the referenced document no longer resolves;
// the public projection tolerates that.
type FeelingWithLinks struct {
	Feeling
	Verse *Verse `json:"verse,omitempty"`
	Dua   *Dua   `json:"dua,omitempty"`
}

// CleanActions trims every action and drops entries that are empty
// after trimming. The result may be empty; callers validate length.
func CleanActions(actions []string) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}
