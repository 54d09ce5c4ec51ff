// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"iamfeeling/internal/cache"
	"iamfeeling/internal/database"
	"iamfeeling/internal/store"
	"iamfeeling/internal/token"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "iamfeeling")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "iamfeeling")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "feelings:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	AdminStore   *store.AdminStore
	SuraStore    *store.SuraStore
	VerseStore   *store.VerseStore
	DuaStore     *store.DuaStore
	FeelingStore *store.FeelingStore
	Cache        *cache.FeelingsCache
	Tokens       *token.Manager
	Admin        *Admin
	Auth         *Auth
	Public       *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	adminStore := store.NewAdminStore(db)
	suraStore := store.NewSuraStore(db)
	verseStore := store.NewVerseStore(db)
	duaStore := store.NewDuaStore(db)
	feelingStore := store.NewFeelingStore(db)
	feelingsCache := cache.NewFeelingsCache(vk, 1*time.Minute)
	tokens := token.NewManager("test-secret", time.Hour)

	admin := NewAdmin(suraStore, verseStore, duaStore, feelingStore, feelingsCache)
	auth := NewAuth(adminStore, tokens)
	public := NewPublic(feelingStore, suraStore, verseStore, duaStore, feelingsCache)

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		AdminStore:   adminStore,
		SuraStore:    suraStore,
		VerseStore:   verseStore,
		DuaStore:     duaStore,
		FeelingStore: feelingStore,
		Cache:        feelingsCache,
		Tokens:       tokens,
		Admin:        admin,
		Auth:         auth,
		Public:       public,
	}
}

// withChiURLParam adds a chi URL parameter to a request. Repeated calls
// accumulate parameters on the same route context.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// cleanFeelings removes test feelings by slug.
func cleanFeelings(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM feelings WHERE slug = $1", s)
	}
}

// cleanDuas removes test duas by slug.
func cleanDuas(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM duas WHERE slug = $1", s)
	}
}

// cleanVerses removes test verses by sura/verse pair.
func cleanVerses(t *testing.T, db *sql.DB, suraNumber int, verseNumbers ...int) {
	t.Helper()
	for _, v := range verseNumbers {
		db.Exec("DELETE FROM verses WHERE sura_number = $1 AND verse_number = $2", suraNumber, v)
	}
}

// cleanSuras removes test suras by number.
func cleanSuras(t *testing.T, db *sql.DB, numbers ...int) {
	t.Helper()
	for _, n := range numbers {
		db.Exec("DELETE FROM suras WHERE sura_number = $1", n)
	}
}
