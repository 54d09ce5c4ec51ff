// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pubformat turns stored feelings into the shape consumed by
// the public site. The transformation is pure and never fails: a
// missing linked verse or dua degrades to empty-string fields instead
// of breaking the read path.
package pubformat

import "iamfeeling/internal/models"

// Quran is the verse sub-object of a public feeling. SuraNumber and
// VerseNumber are omitted when the verse link did not resolve.
type Quran struct {
	Arabic      string `json:"arabic"`
	Text        string `json:"text"`
	Reference   string `json:"reference"`
	SuraNumber  int    `json:"suraNumber,omitempty"`
	VerseNumber int    `json:"verseNumber,omitempty"`
}

// Dua is the supplication sub-object of a public feeling.
type Dua struct {
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	Meaning         string `json:"meaning"`
	Reference       string `json:"reference"`
}

// Feeling is the public projection of a stored feeling with its links
// resolved and denormalized.
type Feeling struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Emoji    string   `json:"emoji"`
	Preview  string   `json:"preview"`
	Reminder string   `json:"reminder"`
	Quran    Quran    `json:"quran"`
	Dua      Dua      `json:"dua"`
	Actions  []string `json:"actions"`
}

// ToPublic projects a feeling with resolved links into the public
// shape. verse and dua may be nil.
func ToPublic(f *models.Feeling, verse *models.Verse, dua *models.Dua) Feeling {
	out := Feeling{
		Slug:     f.Slug,
		Title:    f.Title,
		Emoji:    f.Emoji,
		Preview:  f.Preview,
		Reminder: f.Reminder,
		Actions:  f.Actions,
	}
	if out.Actions == nil {
		out.Actions = []string{}
	}

	if verse != nil {
		out.Quran = Quran{
			Arabic:      verse.ArabicText,
			Text:        verse.TranslationText,
			Reference:   verse.Reference,
			SuraNumber:  verse.SuraNumber,
			VerseNumber: verse.VerseNumber,
		}
	}

	if dua != nil {
		out.Dua = Dua{
			Arabic:  dua.Arabic,
			Meaning: dua.Meaning,
		}
		if dua.Transliteration != nil {
			out.Dua.Transliteration = *dua.Transliteration
		}
		if dua.Reference != nil {
			out.Dua.Reference = *dua.Reference
		}
	}

	return out
}

// FromLinked projects a store row that already carries its links.
func FromLinked(item *models.FeelingWithLinks) Feeling {
	return ToPublic(&item.Feeling, item.Verse, item.Dua)
}
