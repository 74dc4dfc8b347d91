// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abekoci/election-map/models"
)

func TestNoStore(t *testing.T) {
	handler := NoStore(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/results", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", got)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusTeapot, map[string]string{"hello": "world"})

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status 418, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"hello":"world"`) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "bad input")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Bad Request") || !strings.Contains(body, "bad input") {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"password":"sekret"}`))

	var login models.LoginRequest
	if err := ParseJSONBody(req, &login); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if login.Password != "sekret" {
		t.Errorf("Expected password decoded, got %+v", login)
	}

	bad := httptest.NewRequest("POST", "/api/login", strings.NewReader("{not json"))
	if err := ParseJSONBody(bad, &login); err == nil {
		t.Error("Expected error for malformed body")
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("sets headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/results", nil)
		req.Header.Set("Origin", "http://viewer.local")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://viewer.local" {
			t.Errorf("Expected origin echoed, got %q", got)
		}
		if w.Code != http.StatusNoContent {
			t.Errorf("Expected wrapped handler to run, got %d", w.Code)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/results", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for preflight, got %d", w.Code)
		}
	})
}
