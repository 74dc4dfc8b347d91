// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poller

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abekoci/election-map/apiclient"
	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/models"
)

// fakeFetcher returns queued responses in order, repeating the last one.
type fakeFetcher struct {
	responses []fetchResponse
	calls     atomic.Int64
}

type fetchResponse struct {
	snap models.ResultsSnapshot
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context) (models.ResultsSnapshot, error) {
	n := int(f.calls.Add(1)) - 1
	if n >= len(f.responses) {
		n = len(f.responses) - 1
	}
	r := f.responses[n]
	return r.snap, r.err
}

func decodeSnapshot(t *testing.T, payload string) models.ResultsSnapshot {
	t.Helper()
	var snap models.ResultsSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		t.Fatalf("Failed to decode test snapshot: %v", err)
	}
	return snap
}

func TestPollOnceFirstPollChanges(t *testing.T) {
	snap := decodeSnapshot(t, `{"Berat": {"totalSeats": 7, "winner": "PS", "seatsWon": {"PS": 4}}}`)
	f := &fakeFetcher{responses: []fetchResponse{{snap: snap}}}

	var gotChange models.ResultsSnapshot
	p := New(f, catalog.Default(), time.Minute, func(s models.ResultsSnapshot) {
		gotChange = s
	})

	result, err := p.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("PollOnce failed: %v", err)
	}
	if result != Changed {
		t.Errorf("Expected Changed, got %v", result)
	}
	if !reflect.DeepEqual(gotChange, snap) {
		t.Errorf("Expected change callback with fetched snapshot, got %v", gotChange)
	}
	if !reflect.DeepEqual(p.Snapshot(), snap) {
		t.Errorf("Expected Snapshot() to return fetched snapshot")
	}
}

func TestPollOnceStructuralEquality(t *testing.T) {
	// Same data, different key order and whitespace on the wire.
	first := decodeSnapshot(t, `{"Berat": {"totalSeats": 7, "winner": "PS", "seatsWon": {"PS": 4, "ASHM": 2}}}`)
	second := decodeSnapshot(t, `{"Berat":{"seatsWon":{"ASHM":2,"PS":4},"winner":"PS","totalSeats":7}}`)

	f := &fakeFetcher{responses: []fetchResponse{{snap: first}, {snap: second}}}

	changes := 0
	p := New(f, catalog.Default(), time.Minute, func(models.ResultsSnapshot) { changes++ })

	if result, err := p.PollOnce(context.Background()); err != nil || result != Changed {
		t.Fatalf("First poll: expected Changed, got %v, %v", result, err)
	}
	if result, err := p.PollOnce(context.Background()); err != nil || result != Unchanged {
		t.Fatalf("Second poll: expected Unchanged, got %v, %v", result, err)
	}
	if changes != 1 {
		t.Errorf("Expected exactly one change callback, got %d", changes)
	}
}

func TestPollOnceNotFoundSubstitutesDefault(t *testing.T) {
	cat := catalog.Default()
	f := &fakeFetcher{responses: []fetchResponse{{err: apiclient.ErrNotFound}}}

	p := New(f, cat, time.Minute, nil)

	result, err := p.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("Expected not-found to be recovered, got %v", err)
	}
	if result != Changed {
		t.Errorf("Expected Changed on first default snapshot, got %v", result)
	}
	if !reflect.DeepEqual(p.Snapshot(), cat.DefaultSnapshot()) {
		t.Error("Expected default snapshot after not-found")
	}
}

func TestPollOnceFetchErrorRetainsLastKnownGood(t *testing.T) {
	snap := decodeSnapshot(t, `{"Berat": {"totalSeats": 7, "winner": null, "seatsWon": {}}}`)
	f := &fakeFetcher{responses: []fetchResponse{
		{snap: snap},
		{err: &apiclient.FetchError{Cause: errors.New("boom")}},
	}}

	p := New(f, catalog.Default(), time.Minute, nil)

	if _, err := p.PollOnce(context.Background()); err != nil {
		t.Fatalf("First poll failed: %v", err)
	}

	result, err := p.PollOnce(context.Background())
	if err == nil {
		t.Fatal("Expected fetch error to surface")
	}
	var fetchErr *apiclient.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Expected FetchError, got %T", err)
	}
	if result != Unchanged {
		t.Errorf("Expected Unchanged on error, got %v", result)
	}
	if !reflect.DeepEqual(p.Snapshot(), snap) {
		t.Error("Expected last-known-good snapshot retained after fetch error")
	}
}

// blockingFetcher parks in Fetch until released, so a second poll can
// be attempted while the first is still in flight.
type blockingFetcher struct {
	entered chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context) (models.ResultsSnapshot, error) {
	close(f.entered)
	<-f.release
	return models.ResultsSnapshot{}, nil
}

func TestPollOnceSerialized(t *testing.T) {
	f := &blockingFetcher{entered: make(chan struct{}), release: make(chan struct{})}
	p := New(f, catalog.Default(), time.Minute, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.PollOnce(context.Background())
	}()

	<-f.entered
	_, err := p.PollOnce(context.Background())
	if !errors.Is(err, ErrPollInFlight) {
		t.Errorf("Expected ErrPollInFlight for overlapping poll, got %v", err)
	}

	close(f.release)
	<-done
}

func TestRunPollsOnTicksAndStopsOnCancel(t *testing.T) {
	snap := decodeSnapshot(t, `{"Berat": {"totalSeats": 7, "winner": null, "seatsWon": {}}}`)
	f := &fakeFetcher{responses: []fetchResponse{{snap: snap}}}

	p := New(f, catalog.Default(), 5*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := p.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if f.calls.Load() < 2 {
		t.Errorf("Expected at least 2 polls (immediate + ticks), got %d", f.calls.Load())
	}
	if p.Running() {
		t.Error("Expected poller stopped after Run returned")
	}
}

func TestRunRejectsSecondLoop(t *testing.T) {
	snap := decodeSnapshot(t, `{"Berat": {"totalSeats": 7, "winner": null, "seatsWon": {}}}`)
	f := &fakeFetcher{responses: []fetchResponse{{snap: snap}}}

	p := New(f, catalog.Default(), time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	for !p.Running() {
		time.Sleep(time.Millisecond)
	}

	if err := p.Run(ctx); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}

	cancel()
	<-done
}
