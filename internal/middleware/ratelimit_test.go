package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(5, 1*time.Second)
	defer rl.Stop()

	// A client gets the full budget of login attempts.
	for i := 0; i < 5; i++ {
		if !rl.allow("203.0.113.7") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	// The next attempt is refused.
	if rl.allow("203.0.113.7") {
		t.Error("6th attempt should be rate-limited")
	}

	// Budgets are per client, so another IP is unaffected.
	if !rl.allow("198.51.100.20") {
		t.Error("a different client should still be allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("203.0.113.7")

	if rl.allow("203.0.113.7") {
		t.Error("should be rate-limited after exhausting the window")
	}

	// Once the window slides past the earlier attempts the client may
	// try again.
	time.Sleep(150 * time.Millisecond)

	if !rl.allow("203.0.113.7") {
		t.Error("should be allowed after the window expires")
	}
}

// TestRateLimiterMiddleware drives the middleware the way the router
// mounts it on the login route and checks both the cutoff and the
// error envelope.
func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(3, 1*time.Second)
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid email or password."}`))
	}))

	loginAttempt := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/admin/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	// Attempts within the budget reach the handler, even failing ones.
	for i := 0; i < 3; i++ {
		if rr := loginAttempt("203.0.113.7:40312"); rr.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: got status %d, want 401 from the handler", i+1, rr.Code)
		}
	}

	// The 4th attempt from the same IP is cut off with the standard
	// JSON envelope.
	rr := loginAttempt("203.0.113.7:40312")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", rr.Code)
	}

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("429 body is not valid JSON: %v", err)
	}
	if envelope.Success {
		t.Error("envelope success should be false")
	}
	if envelope.Message != "Too many requests, slow down." {
		t.Errorf("message = %q, want %q", envelope.Message, "Too many requests, slow down.")
	}

	// A different client is still served.
	if rr := loginAttempt("198.51.100.20:51400"); rr.Code != http.StatusUnauthorized {
		t.Errorf("other client: got status %d, want 401", rr.Code)
	}
}

// TestClientIP verifies IP extraction for direct and proxied requests.
// The API normally sits behind a reverse proxy, so the forwarding
// headers take precedence over RemoteAddr.
func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{
			name:       "proxied with x-forwarded-for",
			xff:        "203.0.113.7",
			remoteAddr: "10.0.0.5:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "chained proxies keep the original client",
			xff:        "203.0.113.7, 172.16.0.1, 10.0.0.5",
			remoteAddr: "10.0.0.5:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "proxied with x-real-ip",
			xri:        "198.51.100.20",
			remoteAddr: "10.0.0.5:1234",
			want:       "198.51.100.20",
		},
		{
			name:       "direct connection strips the port",
			remoteAddr: "203.0.113.7:40312",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/admin/login", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			got := clientIP(req)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(5, 50*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("198.51.100.20")

	// Let both clients' attempts age out of the window.
	time.Sleep(100 * time.Millisecond)

	rl.cleanup()

	rl.mu.RLock()
	count := len(rl.clients)
	rl.mu.RUnlock()

	if count != 0 {
		t.Errorf("cleanup should remove idle clients, got %d", count)
	}
}

// TestRateLimiterCleanupRetainsActiveClients verifies that cleanup only
// drops clients whose every attempt has aged out of the window.
func TestRateLimiterCleanupRetainsActiveClients(t *testing.T) {
	rl := NewRateLimiter(10, 200*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("198.51.100.20")

	time.Sleep(250 * time.Millisecond)

	// Fresh attempt keeps this client alive.
	rl.allow("198.51.100.20")

	rl.cleanup()

	rl.mu.RLock()
	_, idleExists := rl.clients["203.0.113.7"]
	_, activeExists := rl.clients["198.51.100.20"]
	count := len(rl.clients)
	rl.mu.RUnlock()

	if idleExists {
		t.Error("idle client should have been cleaned up")
	}
	if !activeExists {
		t.Error("active client should have been retained")
	}
	if count != 1 {
		t.Errorf("expected 1 remaining client, got %d", count)
	}
}
