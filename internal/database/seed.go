package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the administrator account if no admin exists yet.
// This is the only path through which an admin account comes to exist —
// there is no registration endpoint. The email is normalized to
// lowercase before insertion.
func SeedAdmin(db *sql.DB, email, password string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
		return fmt.Errorf("seed check admins: %w", err)
	}

	if count > 0 {
		slog.Info("admin account already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	_, err = db.Exec(`
		INSERT INTO admins (email, password_hash, role)
		VALUES ($1, $2, 'admin')
	`, email, string(hash))
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("seeded admin account", "email", email)
	return nil
}

// SeedDevContent populates a small sample corpus for local development:
// one sura, two verses, one dua, and one feeling linking them. It is a
// no-op if any feeling already exists.
func SeedDevContent(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM feelings").Scan(&count); err != nil {
		return fmt.Errorf("seed check feelings: %w", err)
	}

	if count > 0 {
		slog.Info("content already seeded, skipping")
		return nil
	}

	_, err := db.Exec(`
		INSERT INTO suras (sura_number, name_arabic, name_english, transliteration, total_verses)
		VALUES (94, 'الشرح', 'The Relief', 'Ash-Sharh', 8)
		ON CONFLICT (sura_number) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("seed sura: %w", err)
	}

	var verseID string
	err = db.QueryRow(`
		INSERT INTO verses (sura_number, verse_number, arabic_text, translation_text, reference)
		VALUES (94, 5, 'فَإِنَّ مَعَ الْعُسْرِ يُسْرًا', 'For indeed, with hardship comes ease.', 'Qur''an 94:5')
		RETURNING id
	`).Scan(&verseID)
	if err != nil {
		return fmt.Errorf("seed verse: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO verses (sura_number, verse_number, arabic_text, translation_text, reference)
		VALUES (94, 6, 'إِنَّ مَعَ الْعُسْرِ يُسْرًا', 'Indeed, with hardship comes ease.', 'Qur''an 94:6')
	`)
	if err != nil {
		return fmt.Errorf("seed verse: %w", err)
	}

	var duaID string
	err = db.QueryRow(`
		INSERT INTO duas (title, slug, arabic, transliteration, meaning, reference)
		VALUES (
			'Dua for Anxiety and Sorrow',
			'dua-for-anxiety-and-sorrow',
			'اللَّهُمَّ إِنِّي أَعُوذُ بِكَ مِنَ الْهَمِّ وَالْحَزَنِ',
			'Allahumma inni a''udhu bika minal-hammi wal-hazan',
			'O Allah, I seek refuge in You from anxiety and sorrow.',
			'Sahih al-Bukhari 6369'
		)
		RETURNING id
	`).Scan(&duaID)
	if err != nil {
		return fmt.Errorf("seed dua: %w", err)
	}

	actions, err := json.Marshal([]string{
		"Take a slow breath and remember that this state is temporary.",
		"Pray two rak'ahs and speak to Allah about what weighs on you.",
		"Write down one thing you are grateful for today.",
	})
	if err != nil {
		return fmt.Errorf("seed actions: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO feelings (slug, title, emoji, preview, reminder, verse_id, dua_id, actions)
		VALUES (
			'anxious',
			'Anxious',
			'😟',
			'When worry tightens your chest',
			'Allah does not burden a soul beyond what it can bear.',
			$1, $2, $3
		)
	`, verseID, duaID, actions)
	if err != nil {
		return fmt.Errorf("seed feeling: %w", err)
	}

	slog.Info("seeded development content corpus")
	return nil
}
