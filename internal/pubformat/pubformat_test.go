// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pubformat

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"iamfeeling/internal/models"
)

func sampleFeeling() *models.Feeling {
	return &models.Feeling{
		ID:       uuid.New(),
		Slug:     "anxious",
		Title:    "Anxious",
		Emoji:    "😟",
		Preview:  "When worry tightens your chest",
		Reminder: "Allah does not burden a soul beyond what it can bear.",
		Actions:  []string{"Breathe slowly", "Pray two rak'ahs"},
	}
}

func TestToPublic_FullyResolved(t *testing.T) {
	translit := "Fa inna ma'al usri yusra"
	duaRef := "Sahih al-Bukhari 6369"

	verse := &models.Verse{
		SuraNumber:      94,
		VerseNumber:     5,
		ArabicText:      "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا",
		TranslationText: "For indeed, with hardship comes ease.",
		Reference:       "Qur'an 94:5",
	}
	dua := &models.Dua{
		Arabic:          "اللَّهُمَّ إِنِّي أَعُوذُ بِكَ",
		Transliteration: &translit,
		Meaning:         "O Allah, I seek refuge in You.",
		Reference:       &duaRef,
	}

	got := ToPublic(sampleFeeling(), verse, dua)

	if got.Slug != "anxious" || got.Title != "Anxious" {
		t.Errorf("identity fields not carried over: %+v", got)
	}
	if got.Quran.Arabic != verse.ArabicText {
		t.Errorf("Quran.Arabic = %q, want %q", got.Quran.Arabic, verse.ArabicText)
	}
	if got.Quran.Text != verse.TranslationText {
		t.Errorf("Quran.Text = %q, want %q", got.Quran.Text, verse.TranslationText)
	}
	if got.Quran.Reference != "Qur'an 94:5" {
		t.Errorf("Quran.Reference = %q", got.Quran.Reference)
	}
	if got.Quran.SuraNumber != 94 || got.Quran.VerseNumber != 5 {
		t.Errorf("Quran numbers = %d:%d, want 94:5", got.Quran.SuraNumber, got.Quran.VerseNumber)
	}
	if got.Dua.Transliteration != translit {
		t.Errorf("Dua.Transliteration = %q, want %q", got.Dua.Transliteration, translit)
	}
	if got.Dua.Reference != duaRef {
		t.Errorf("Dua.Reference = %q, want %q", got.Dua.Reference, duaRef)
	}
	if len(got.Actions) != 2 {
		t.Errorf("Actions = %v, want 2 entries", got.Actions)
	}
}

// TestToPublic_UnresolvedLinks verifies graceful degradation: the
// projection never fails, and unresolved sub-objects come back as
// empty strings.
func TestToPublic_UnresolvedLinks(t *testing.T) {
	got := ToPublic(sampleFeeling(), nil, nil)

	if got.Quran.Arabic != "" || got.Quran.Text != "" || got.Quran.Reference != "" {
		t.Errorf("Quran should be empty for nil verse, got %+v", got.Quran)
	}
	if got.Dua.Arabic != "" || got.Dua.Meaning != "" || got.Dua.Transliteration != "" || got.Dua.Reference != "" {
		t.Errorf("Dua should be empty for nil dua, got %+v", got.Dua)
	}

	// The sura/verse numbers must be omitted from JSON when unresolved.
	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "suraNumber") || strings.Contains(string(raw), "verseNumber") {
		t.Errorf("unresolved projection should omit verse numbers: %s", raw)
	}
}

func TestToPublic_OptionalDuaFieldsAbsent(t *testing.T) {
	dua := &models.Dua{
		Arabic:  "arabic text",
		Meaning: "meaning text",
	}

	got := ToPublic(sampleFeeling(), nil, dua)

	if got.Dua.Arabic != "arabic text" || got.Dua.Meaning != "meaning text" {
		t.Errorf("required dua fields not carried: %+v", got.Dua)
	}
	if got.Dua.Transliteration != "" || got.Dua.Reference != "" {
		t.Errorf("optional dua fields should be empty strings: %+v", got.Dua)
	}
}

func TestToPublic_NilActionsBecomesEmptyList(t *testing.T) {
	f := sampleFeeling()
	f.Actions = nil

	got := ToPublic(f, nil, nil)

	if got.Actions == nil {
		t.Fatal("Actions should never be nil")
	}
	raw, _ := json.Marshal(got)
	if !strings.Contains(string(raw), `"actions":[]`) {
		t.Errorf("nil actions should serialize as [], got %s", raw)
	}
}

func TestFromLinked(t *testing.T) {
	item := &models.FeelingWithLinks{
		Feeling: *sampleFeeling(),
		Verse: &models.Verse{
			SuraNumber: 94, VerseNumber: 6,
			ArabicText: "arabic", TranslationText: "text", Reference: "Qur'an 94:6",
		},
	}

	got := FromLinked(item)

	if got.Quran.Reference != "Qur'an 94:6" {
		t.Errorf("Quran.Reference = %q", got.Quran.Reference)
	}
	// Dua link unresolved: empty strings, no panic.
	if got.Dua.Arabic != "" {
		t.Errorf("Dua should be empty, got %+v", got.Dua)
	}
}
