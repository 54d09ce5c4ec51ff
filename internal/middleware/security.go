// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// SecureHeaders sets baseline security headers for a JSON-only API.
// The service never serves HTML, so framing is denied outright and the
// content security policy forbids loading anything at all.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Every response is JSON; never let the browser second-guess.
		h.Set("X-Content-Type-Options", "nosniff")

		// API responses have no business inside a frame.
		h.Set("X-Frame-Options", "DENY")

		// Covers browsers that open a response directly.
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Clients never need to announce where they came from.
		h.Set("Referrer-Policy", "no-referrer")

		// Tokens and admin data must not land in shared caches.
		if strings.HasPrefix(r.URL.Path, "/auth") || strings.HasPrefix(r.URL.Path, "/admin") {
			h.Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}
