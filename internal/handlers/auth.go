// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"iamfeeling/internal/middleware"
	"iamfeeling/internal/store"
	"iamfeeling/internal/token"
)

// badCredentials is the single message for every failed login. Unknown
// email and wrong password are indistinguishable so accounts cannot be
// enumerated.
const badCredentials = "Invalid email or password."

// Auth groups the authentication HTTP handlers.
type Auth struct {
	admins *store.AdminStore
	tokens *token.Manager
}

// NewAuth creates a new Auth handler group.
func NewAuth(admins *store.AdminStore, tokens *token.Manager) *Auth {
	return &Auth{admins: admins, tokens: tokens}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login verifies admin credentials and issues a signed bearer token.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		respondError(w, http.StatusUnauthorized, badCredentials)
		return
	}

	admin, err := a.admins.FindByEmail(email)
	if err != nil {
		respondInternal(w, "login lookup failed", err)
		return
	}

	// bcrypt's comparison is constant-time; the identical error message
	// covers both the missing-account and wrong-password paths.
	if admin == nil || !a.admins.CheckPassword(admin, in.Password) {
		respondError(w, http.StatusUnauthorized, badCredentials)
		return
	}

	signed, expiresAt, err := a.tokens.Issue(admin.ID)
	if err != nil {
		respondInternal(w, "token issue failed", err)
		return
	}

	respondOK(w, "Login successful.", loginOutput{Token: signed, ExpiresAt: expiresAt})
}

type profileOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Me returns the authenticated admin's profile. The auth middleware has
// already verified the token and re-fetched the admin, so a deleted
// admin never reaches this handler.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	admin := middleware.AdminFromCtx(r.Context())
	if admin == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	respondOK(w, "Profile retrieved.", profileOutput{
		ID:        admin.ID.String(),
		Email:     admin.Email,
		Role:      string(admin.Role),
		CreatedAt: admin.CreatedAt,
	})
}
