// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"iamfeeling/internal/models"
	"iamfeeling/internal/store"
	"iamfeeling/internal/token"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// AdminKey is the context key for the authenticated admin.
	AdminKey contextKey = "admin"
)

// Authenticator gates admin routes behind bearer-token verification.
// Tokens are stateless; on every request the admin row is re-fetched so
// a deleted admin cannot keep using a still-valid token.
type Authenticator struct {
	tokens *token.Manager
	admins *store.AdminStore
}

// NewAuthenticator creates an Authenticator from its dependencies.
func NewAuthenticator(tokens *token.Manager, admins *store.AdminStore) *Authenticator {
	return &Authenticator{tokens: tokens, admins: admins}
}

// RequireAdmin verifies the Authorization bearer token, re-fetches the
// admin, checks the role, and stores the admin in the request context.
// Responds 401 for missing/invalid/expired tokens or a vanished admin,
// 403 for a valid token without the admin role.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			errorJSON(w, http.StatusUnauthorized, "Authentication required.")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		adminID, err := a.tokens.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				errorJSON(w, http.StatusUnauthorized, "Token has expired, please log in again.")
				return
			}
			errorJSON(w, http.StatusUnauthorized, "Invalid authentication token.")
			return
		}

		admin, err := a.admins.FindByID(adminID)
		if err != nil {
			slog.Error("admin lookup failed", "error", err)
			errorJSON(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		if admin == nil {
			// Token is valid but the account is gone.
			errorJSON(w, http.StatusUnauthorized, "Invalid authentication token.")
			return
		}

		if !admin.IsAdmin() {
			errorJSON(w, http.StatusForbidden, "Insufficient permissions.")
			return
		}

		noteAdmin(r.Context(), admin.Email)
		ctx := context.WithValue(r.Context(), AdminKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminFromCtx extracts the authenticated admin from the request
// context. Returns nil outside the RequireAdmin chain.
func AdminFromCtx(ctx context.Context) *models.Admin {
	admin, _ := ctx.Value(AdminKey).(*models.Admin)
	return admin
}

// errorJSON writes a minimal error envelope. Middleware responses use
// the same shape as handler responses so clients parse one format.
func errorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
