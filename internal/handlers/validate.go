// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"iamfeeling/internal/models"
	"iamfeeling/internal/slug"
)

// Validation limits for content fields.
const (
	maxTitleLen  = 300
	maxSlugLen   = 300
	maxTextLen   = 10_000
	maxActionLen = 1_000
	maxActions   = 20
)

// validateSura checks a merged sura against its constraints. Returns
// one FieldError per offending field; empty means valid.
func validateSura(s *models.Sura) []FieldError {
	var errs []FieldError
	if !models.ValidSuraNumber(s.SuraNumber) {
		errs = append(errs, FieldError{"suraNumber", "Sura number must be between 1 and 114."})
	}
	if strings.TrimSpace(s.NameArabic) == "" {
		errs = append(errs, FieldError{"nameArabic", "Arabic name is required."})
	}
	if strings.TrimSpace(s.NameEnglish) == "" {
		errs = append(errs, FieldError{"nameEnglish", "English name is required."})
	}
	if s.TotalVerses != nil && *s.TotalVerses < 1 {
		errs = append(errs, FieldError{"totalVerses", "Total verses must be at least 1."})
	}
	return errs
}

// validateVerse checks a merged verse against its constraints.
func validateVerse(v *models.Verse) []FieldError {
	var errs []FieldError
	if !models.ValidSuraNumber(v.SuraNumber) {
		errs = append(errs, FieldError{"suraNumber", "Sura number must be between 1 and 114."})
	}
	if v.VerseNumber < 1 {
		errs = append(errs, FieldError{"verseNumber", "Verse number must be at least 1."})
	}
	if strings.TrimSpace(v.ArabicText) == "" {
		errs = append(errs, FieldError{"arabicText", "Arabic text is required."})
	}
	if strings.TrimSpace(v.TranslationText) == "" {
		errs = append(errs, FieldError{"translationText", "Translation text is required."})
	}
	if utf8.RuneCountInString(v.ArabicText) > maxTextLen {
		errs = append(errs, FieldError{"arabicText", "Arabic text is too long (max 10,000 characters)."})
	}
	if utf8.RuneCountInString(v.TranslationText) > maxTextLen {
		errs = append(errs, FieldError{"translationText", "Translation text is too long (max 10,000 characters)."})
	}
	return errs
}

// validateDua checks a merged dua against its constraints. The slug
// must already be normalized by the caller.
func validateDua(d *models.Dua) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, FieldError{"title", "Title is required."})
	}
	if utf8.RuneCountInString(d.Title) > maxTitleLen {
		errs = append(errs, FieldError{"title", "Title is too long (max 300 characters)."})
	}
	errs = append(errs, validateSlugField(d.Slug)...)
	if strings.TrimSpace(d.Arabic) == "" {
		errs = append(errs, FieldError{"arabic", "Arabic text is required."})
	}
	if strings.TrimSpace(d.Meaning) == "" {
		errs = append(errs, FieldError{"meaning", "Meaning is required."})
	}
	return errs
}

// validateFeeling checks a merged feeling against its constraints.
// Reference resolution (verseId/duaId pointing at real rows) is a
// separate store lookup done by the handler.
func validateFeeling(f *models.Feeling) []FieldError {
	var errs []FieldError
	errs = append(errs, validateSlugField(f.Slug)...)
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, FieldError{"title", "Title is required."})
	}
	if utf8.RuneCountInString(f.Title) > maxTitleLen {
		errs = append(errs, FieldError{"title", "Title is too long (max 300 characters)."})
	}
	if strings.TrimSpace(f.Emoji) == "" {
		errs = append(errs, FieldError{"emoji", "Emoji is required."})
	}
	if len(f.Actions) == 0 {
		errs = append(errs, FieldError{"actions", "At least one action is required."})
	}
	if len(f.Actions) > maxActions {
		errs = append(errs, FieldError{"actions", "Too many actions (max 20)."})
	}
	for _, a := range f.Actions {
		if utf8.RuneCountInString(a) > maxActionLen {
			errs = append(errs, FieldError{"actions", "An action is too long (max 1,000 characters)."})
			break
		}
	}
	return errs
}

// validateSlugField checks a normalized slug for shape and length.
func validateSlugField(s string) []FieldError {
	if strings.TrimSpace(s) == "" {
		return []FieldError{{"slug", "Slug is required."}}
	}
	if utf8.RuneCountInString(s) > maxSlugLen {
		return []FieldError{{"slug", "Slug is too long (max 300 characters)."}}
	}
	if !slug.Valid(s) {
		return []FieldError{{"slug", "Slug may contain only lowercase letters, digits, and hyphens."}}
	}
	return nil
}
