// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the I Am Feeling API.
// Handlers are grouped by concern (auth, admin, public) and receive
// their dependencies through the handler struct. Every response uses
// the same JSON envelope.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError points a validation or conflict message at the offending
// input field so a form can highlight it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// NewPagination computes page metadata: totalPages is the ceiling of
// totalItems/limit, and the has-next/has-prev flags derive from the
// current page's position.
func NewPagination(page, limit, totalItems int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := (totalItems + limit - 1) / limit
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       any          `json:"data,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondOK writes a 200 success envelope.
func respondOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// respondCreated writes a 201 success envelope.
func respondCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Message: message, Data: data})
}

// respondPage writes a 200 success envelope with pagination metadata.
func respondPage(w http.ResponseWriter, message string, data any, p Pagination) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data, Pagination: &p})
}

// respondError writes an error envelope with optional per-field details.
func respondError(w http.ResponseWriter, status int, message string, fields ...FieldError) {
	writeJSON(w, status, envelope{Success: false, Message: message, Errors: fields})
}

// respondInternal logs the underlying error and answers with a generic
// 500. Raw errors never reach the client.
func respondInternal(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}
