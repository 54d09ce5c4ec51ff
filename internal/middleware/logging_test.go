package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestLogger(t *testing.T) {
	jsonOK := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Feelings retrieved.","data":[]}`))
	})

	t.Run("tags every response with a request id", func(t *testing.T) {
		handler := Logger(jsonOK)

		req := httptest.NewRequest(http.MethodGet, "/feelings", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		id := rr.Header().Get("X-Request-Id")
		if id == "" {
			t.Fatal("X-Request-Id header missing")
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("X-Request-Id %q is not a UUID: %v", id, err)
		}
	})

	t.Run("request ids are unique per request", func(t *testing.T) {
		handler := Logger(jsonOK)

		ids := make(map[string]bool)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/feelings/anxious", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			ids[rr.Header().Get("X-Request-Id")] = true
		}

		if len(ids) != 3 {
			t.Errorf("expected 3 distinct request ids, got %d", len(ids))
		}
	})

	t.Run("passes the request through untouched", func(t *testing.T) {
		var gotMethod, gotPath string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusCreated)
		})

		handler := Logger(inner)

		req := httptest.NewRequest(http.MethodPost, "/admin/feelings", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if gotMethod != http.MethodPost || gotPath != "/admin/feelings" {
			t.Errorf("inner handler saw %s %s, want POST /admin/feelings", gotMethod, gotPath)
		}
		if rr.Code != http.StatusCreated {
			t.Errorf("status: got %d, want 201", rr.Code)
		}
	})

	t.Run("captures error statuses", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Feeling not found."}`))
		})

		handler := Logger(inner)

		req := httptest.NewRequest(http.MethodGet, "/feelings/no-such-slug", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})

	t.Run("defaults to 200 when the handler only writes a body", func(t *testing.T) {
		handler := Logger(jsonOK)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
		if rr.Body.Len() == 0 {
			t.Error("body should have been written through")
		}
	})
}

// TestNoteAdmin verifies that the auth middleware can annotate the
// request log with the authenticated admin's email.
func TestNoteAdmin(t *testing.T) {
	t.Run("records the email inside a Logger chain", func(t *testing.T) {
		fields := &logFields{}
		ctx := context.WithValue(context.Background(), logFieldsKey, fields)

		noteAdmin(ctx, "admin@iamfeeling.local")

		if fields.admin != "admin@iamfeeling.local" {
			t.Errorf("admin = %q, want %q", fields.admin, "admin@iamfeeling.local")
		}
	})

	t.Run("is a no-op outside the Logger chain", func(t *testing.T) {
		// Must not panic when no log record is in the context.
		noteAdmin(context.Background(), "admin@iamfeeling.local")
	})
}

// TestResponseWriter tests the wrapper the Logger uses to capture the
// status code and response size.
func TestResponseWriter(t *testing.T) {
	t.Run("WriteHeader captures status code", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusUnauthorized)

		if rw.statusCode != http.StatusUnauthorized {
			t.Errorf("statusCode: got %d, want 401", rw.statusCode)
		}
		if !rw.written {
			t.Error("written should be true after WriteHeader")
		}
	})

	t.Run("WriteHeader only captures first call", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusBadRequest)
		rw.WriteHeader(http.StatusInternalServerError) // Should be ignored.

		if rw.statusCode != http.StatusBadRequest {
			t.Errorf("statusCode: got %d, want 400 (first call)", rw.statusCode)
		}
	})

	t.Run("Write sets default 200 status and counts bytes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		body := `{"status":"ok"}`
		n, err := rw.Write([]byte(body))
		if err != nil {
			t.Fatalf("Write error: %v", err)
		}
		if n != len(body) {
			t.Errorf("bytes returned: got %d, want %d", n, len(body))
		}
		if rw.bytes != len(body) {
			t.Errorf("bytes counted: got %d, want %d", rw.bytes, len(body))
		}
		if rw.statusCode != http.StatusOK {
			t.Errorf("statusCode: got %d, want 200", rw.statusCode)
		}
	})

	t.Run("bytes accumulate across writes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.Write([]byte(`{"success":true,`))
		rw.Write([]byte(`"data":[]}`))

		if rw.bytes != 26 {
			t.Errorf("bytes: got %d, want 26", rw.bytes)
		}
	})

	t.Run("Write does not override explicit WriteHeader", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rw := &responseWriter{ResponseWriter: rr, statusCode: http.StatusOK}

		rw.WriteHeader(http.StatusCreated)
		rw.Write([]byte(`{"success":true}`))

		if rw.statusCode != http.StatusCreated {
			t.Errorf("statusCode: got %d, want 201", rw.statusCode)
		}
	})
}
