// Package router sets up all HTTP routes and middleware chains for the
// I Am Feeling API. Public reads are open; everything under /admin and
// the profile endpoint require a bearer token.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"iamfeeling/internal/handlers"
	"iamfeeling/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(allowedOrigins []string, authn *middleware.Authenticator, auth *handlers.Auth, admin *handlers.Admin, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Public read API.
	r.Get("/feelings", public.ListFeelings)
	r.Get("/feelings/{slug}", public.GetFeeling)
	r.Get("/suras", public.ListSuras)
	r.Get("/suras/{number}", public.GetSura)
	r.Get("/suras/{number}/verses", public.ListVersesBySura)
	r.Get("/suras/{number}/verses/{verse}", public.GetVerse)
	r.Get("/duas", public.ListDuas)
	r.Get("/duas/{slug}", public.GetDua)

	// Auth — login is rate-limited per client IP to slow brute force.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.Route("/auth/admin", func(r chi.Router) {
		r.With(loginLimiter.Middleware).Post("/login", auth.Login)
		r.With(authn.RequireAdmin).Get("/me", auth.Me)
	})

	// Admin CRUD — bearer token with the admin role on every route.
	r.Route("/admin", func(r chi.Router) {
		r.Use(authn.RequireAdmin)

		r.Route("/suras", func(r chi.Router) {
			r.Get("/", admin.SuraList)
			r.Post("/", admin.SuraCreate)
			r.Get("/{id}", admin.SuraGet)
			r.Put("/{id}", admin.SuraUpdate)
			r.Delete("/{id}", admin.SuraDelete)
		})

		r.Route("/verses", func(r chi.Router) {
			r.Get("/", admin.VerseList)
			r.Post("/", admin.VerseCreate)
			r.Get("/{id}", admin.VerseGet)
			r.Put("/{id}", admin.VerseUpdate)
			r.Delete("/{id}", admin.VerseDelete)
		})

		r.Route("/duas", func(r chi.Router) {
			r.Get("/", admin.DuaList)
			r.Post("/", admin.DuaCreate)
			r.Get("/{id}", admin.DuaGet)
			r.Put("/{id}", admin.DuaUpdate)
			r.Delete("/{id}", admin.DuaDelete)
		})

		r.Route("/feelings", func(r chi.Router) {
			r.Get("/", admin.FeelingList)
			r.Post("/", admin.FeelingCreate)
			r.Get("/{id}", admin.FeelingGet)
			r.Put("/{id}", admin.FeelingUpdate)
			r.Delete("/{id}", admin.FeelingDelete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
