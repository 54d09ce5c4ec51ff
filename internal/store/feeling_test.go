// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"iamfeeling/internal/models"
)

// seedLinkedFeeling inserts a verse, a dua, and a feeling linking them,
// cleaning all three up after the test.
func seedLinkedFeeling(t *testing.T, db *sql.DB) (*models.Feeling, *models.Verse, *models.Dua) {
	t.Helper()

	verses := NewVerseStore(db)
	duas := NewDuaStore(db)
	feelings := NewFeelingStore(db)

	suffix := uuid.New().String()[:8]

	db.Exec("DELETE FROM verses WHERE sura_number = 90 AND verse_number = 4")
	verse, err := verses.Create(&models.Verse{
		SuraNumber:      90,
		VerseNumber:     4,
		ArabicText:      "لَقَدْ خَلَقْنَا الْإِنسَانَ فِي كَبَدٍ",
		TranslationText: "We have certainly created man into hardship.",
		Reference:       "Qur'an 90:4",
	})
	if err != nil {
		t.Fatalf("create verse: %v", err)
	}

	dua, err := duas.Create(&models.Dua{
		Title:   "Store Test Dua " + suffix,
		Slug:    "store-test-dua-" + suffix,
		Arabic:  "حسبنا الله ونعم الوكيل",
		Meaning: "Allah is sufficient for us, and He is the best disposer of affairs.",
	})
	if err != nil {
		t.Fatalf("create dua: %v", err)
	}

	feeling, err := feelings.Create(&models.Feeling{
		Slug:     "store-test-feeling-" + suffix,
		Title:    "Burdened",
		Emoji:    "😔",
		Preview:  "Carrying more than you can hold.",
		Reminder: "Hardship is part of the design, and so is ease.",
		VerseID:  verse.ID,
		DuaID:    dua.ID,
		Actions:  []string{"Name the burden out loud"},
	})
	if err != nil {
		t.Fatalf("create feeling: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM feelings WHERE id = $1", feeling.ID)
		db.Exec("DELETE FROM duas WHERE id = $1", dua.ID)
		db.Exec("DELETE FROM verses WHERE id = $1", verse.ID)
	})

	return feeling, verse, dua
}

func TestFeelingStore_FindWithLinksBySlug_ResolvesBothLinks(t *testing.T) {
	db := testDB(t)
	feelings := NewFeelingStore(db)

	feeling, verse, dua := seedLinkedFeeling(t, db)

	got, err := feelings.FindWithLinksBySlug(feeling.Slug)
	if err != nil {
		t.Fatalf("FindWithLinksBySlug: %v", err)
	}
	if got == nil {
		t.Fatal("FindWithLinksBySlug: got nil, want row")
	}
	if got.Verse == nil || got.Verse.ID != verse.ID {
		t.Errorf("verse link = %+v, want id %s", got.Verse, verse.ID)
	}
	if got.Dua == nil || got.Dua.ID != dua.ID {
		t.Errorf("dua link = %+v, want id %s", got.Dua, dua.ID)
	}
	if len(got.Actions) != 1 {
		t.Errorf("actions = %v, want one entry", got.Actions)
	}
}

func TestFeelingStore_FindWithLinksBySlug_ToleratesDanglingVerse(t *testing.T) {
	db := testDB(t)
	feelings := NewFeelingStore(db)

	feeling, verse, dua := seedLinkedFeeling(t, db)

	// Simulate a dangling reference by removing the verse directly,
	// bypassing the store's referenced-row check.
	if _, err := db.Exec("DELETE FROM verses WHERE id = $1", verse.ID); err != nil {
		t.Fatalf("force-delete verse: %v", err)
	}

	got, err := feelings.FindWithLinksBySlug(feeling.Slug)
	if err != nil {
		t.Fatalf("FindWithLinksBySlug after dangling: %v", err)
	}
	if got == nil {
		t.Fatal("FindWithLinksBySlug after dangling: got nil, want row")
	}
	if got.Verse != nil {
		t.Errorf("verse link = %+v, want nil for dangling reference", got.Verse)
	}
	if got.Dua == nil || got.Dua.ID != dua.ID {
		t.Errorf("dua link = %+v, want intact dua", got.Dua)
	}
}

func TestFeelingStore_Create_DuplicateSlug_ReturnsErrDuplicate(t *testing.T) {
	db := testDB(t)
	feelings := NewFeelingStore(db)

	feeling, verse, dua := seedLinkedFeeling(t, db)

	_, err := feelings.Create(&models.Feeling{
		Slug:    feeling.Slug,
		Title:   "Copy",
		Emoji:   "x",
		VerseID: verse.ID,
		DuaID:   dua.ID,
		Actions: []string{"a"},
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate slug: err = %v, want ErrDuplicate", err)
	}
}

func TestFeelingStore_Update_UnknownID_ReturnsNil(t *testing.T) {
	db := testDB(t)
	feelings := NewFeelingStore(db)

	got, err := feelings.Update(&models.Feeling{
		ID:      uuid.New(),
		Slug:    "ghost-" + uuid.New().String()[:8],
		Title:   "Ghost",
		Emoji:   "x",
		VerseID: uuid.New(),
		DuaID:   uuid.New(),
		Actions: []string{"a"},
	})
	if err != nil {
		t.Fatalf("update ghost: %v", err)
	}
	if got != nil {
		t.Errorf("update ghost: got %+v, want nil", got)
	}
}

func TestVerseStore_Delete_WhileReferenced_ReturnsErrReferenced(t *testing.T) {
	db := testDB(t)
	verses := NewVerseStore(db)

	_, verse, _ := seedLinkedFeeling(t, db)

	_, err := verses.Delete(verse.ID)
	if !errors.Is(err, ErrReferenced) {
		t.Fatalf("delete referenced verse: err = %v, want ErrReferenced", err)
	}
}

func TestDuaStore_Delete_WhileReferenced_ReturnsErrReferenced(t *testing.T) {
	db := testDB(t)
	duas := NewDuaStore(db)

	_, _, dua := seedLinkedFeeling(t, db)

	_, err := duas.Delete(dua.ID)
	if !errors.Is(err, ErrReferenced) {
		t.Fatalf("delete referenced dua: err = %v, want ErrReferenced", err)
	}
}

func TestDuaStore_Delete_Unreferenced_Succeeds(t *testing.T) {
	db := testDB(t)
	duas := NewDuaStore(db)

	suffix := uuid.New().String()[:8]
	dua, err := duas.Create(&models.Dua{
		Title:   "Orphan Dua " + suffix,
		Slug:    "orphan-dua-" + suffix,
		Arabic:  "x",
		Meaning: "x",
	})
	if err != nil {
		t.Fatalf("create dua: %v", err)
	}

	deleted, err := duas.Delete(dua.ID)
	if err != nil {
		t.Fatalf("delete unreferenced dua: %v", err)
	}
	if !deleted {
		t.Error("delete unreferenced dua: reported no row deleted")
	}
}

func TestVerseStore_Delete_UnknownID_NoErrorNoRow(t *testing.T) {
	db := testDB(t)
	verses := NewVerseStore(db)

	deleted, err := verses.Delete(uuid.New())
	if err != nil {
		t.Fatalf("delete unknown verse: %v", err)
	}
	if deleted {
		t.Error("delete unknown verse: reported a row deleted")
	}
}
