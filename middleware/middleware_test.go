// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Lorcania11/presstracker/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"hello":"world"}` {
		t.Errorf("body = %q", got)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Match not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Not Found") {
		t.Errorf("body missing status text: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Match not found") {
		t.Errorf("body missing message: %s", w.Body.String())
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"error":"oops","message":"details"}`))

	var body models.ErrorResponse
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody: %v", err)
	}
	if body.Error != "oops" || body.Message != "details" {
		t.Errorf("body = %+v", body)
	}

	bad := httptest.NewRequest("POST", "/", strings.NewReader("{nope"))
	if err := ParseJSONBody(bad, &body); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestWithLogging(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/matches", nil))

	if !called {
		t.Error("wrapped handler not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", w.Code)
	}
}

func TestCORS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS("", inner)

	t.Run("reflects the request origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/matches", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:8081" {
			t.Errorf("Allow-Origin = %q", got)
		}
		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("configured origin wins", func(t *testing.T) {
		locked := CORS("https://press.example.com", inner)
		req := httptest.NewRequest("GET", "/matches", nil)
		req.Header.Set("Origin", "http://localhost:8081")
		w := httptest.NewRecorder()
		locked.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://press.example.com" {
			t.Errorf("Allow-Origin = %q, want the configured origin", got)
		}
	})

	t.Run("preflight short circuits", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/matches", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin = %q, want *", got)
		}
	})
}
