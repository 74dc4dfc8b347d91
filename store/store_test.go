// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abekoci/election-map/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "dsn"); err == nil {
		t.Error("Expected error for unsupported driver")
	}
}

func TestLoadEmpty(t *testing.T) {
	st := openTestStore(t)

	if _, err := st.Load(context.Background()); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := openTestStore(t)

	ps := "PS"
	other := models.WinnerOther
	snap := models.ResultsSnapshot{
		"Berat": {TotalSeats: 7, Winner: &ps, SeatsWon: map[string]int{"PS": 4, "ASHM": 3}},
		"Korçë": {TotalSeats: 10, Winner: &other, SeatsWon: map[string]int{"PS": 5, "ASHM": 5}},
		"Kukës": {TotalSeats: 3, Winner: nil, SeatsWon: map[string]int{}},
	}

	if err := st.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("Round trip mismatch:\nsaved:  %v\nloaded: %v", snap, got)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	st := openTestStore(t)

	ps := "PS"
	first := models.ResultsSnapshot{
		"Berat": {TotalSeats: 7, Winner: &ps, SeatsWon: map[string]int{"PS": 4}},
	}
	second := models.ResultsSnapshot{
		"Fier": {TotalSeats: 16, Winner: nil, SeatsWon: map[string]int{}},
	}

	if err := st.Save(context.Background(), first); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := st.Save(context.Background(), second); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("Expected second snapshot only, got %v", got)
	}
	if _, ok := got["Berat"]; ok {
		t.Error("Expected first snapshot fully replaced, found leftover region")
	}
}
