// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/abekoci/election-map/cliparse"
	"github.com/abekoci/election-map/models"
	"github.com/abekoci/election-map/store"
)

// SetupTestStore creates a fresh sqlite-backed store in a temp
// directory; it is removed automatically when the test ends.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(store.DriverSQLite, filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// SeedSnapshot saves a snapshot into the store, failing the test on
// error.
func SeedSnapshot(t *testing.T, st *store.Store, snap models.ResultsSnapshot) {
	t.Helper()

	if err := st.Save(context.Background(), snap); err != nil {
		t.Fatalf("Failed to seed snapshot: %v", err)
	}
}

// TestConfig returns a standard test configuration
func TestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		DatabaseDriver: "sqlite",
		EntryPassword:  "test-password",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
