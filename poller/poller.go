// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poller

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abekoci/election-map/apiclient"
	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/metrics"
	"github.com/abekoci/election-map/models"
)

// DefaultInterval is the poll period when none is configured.
const DefaultInterval = 30 * time.Second

var (
	// ErrPollInFlight means a previous poll has not completed yet; the
	// caller should simply wait for the next tick.
	ErrPollInFlight = errors.New("previous poll still in flight")

	// ErrAlreadyRunning means Run was called on a poller whose loop is
	// already active.
	ErrAlreadyRunning = errors.New("poller already running")
)

// Result reports what a single poll observed.
type Result int

const (
	Unchanged Result = iota
	Changed
)

func (r Result) String() string {
	if r == Changed {
		return "changed"
	}
	return "unchanged"
}

// Fetcher retrieves the current authoritative snapshot.
// *apiclient.Client satisfies it; tests substitute fakes.
type Fetcher interface {
	Fetch(ctx context.Context) (models.ResultsSnapshot, error)
}

// Poller periodically retrieves the authoritative snapshot, detects
// structural changes against the last-seen copy, and invokes the change
// callback only when something actually differs.
//
// The poller is the single writer of the last-seen snapshot; any number
// of readers may call Snapshot concurrently.
type Poller struct {
	fetcher  Fetcher
	cat      *catalog.Catalog
	interval time.Duration
	onChange func(models.ResultsSnapshot)

	inflight atomic.Bool
	running  atomic.Bool

	mu       sync.RWMutex
	lastSeen models.ResultsSnapshot
}

// New creates a poller. interval <= 0 selects DefaultInterval; onChange
// may be nil.
func New(fetcher Fetcher, cat *catalog.Catalog, interval time.Duration, onChange func(models.ResultsSnapshot)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		fetcher:  fetcher,
		cat:      cat,
		interval: interval,
		onChange: onChange,
	}
}

// Snapshot returns a copy of the last successfully fetched snapshot,
// or nil before the first successful poll.
func (p *Poller) Snapshot() models.ResultsSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastSeen.Clone()
}

// PollOnce fetches the snapshot and compares it structurally to the
// last-seen copy.
//
// A not-found resource substitutes the catalog's default snapshot (no
// data yet is not an error). Any other fetch failure leaves the
// last-seen snapshot untouched: last-known-good is never cleared on a
// transient failure. Only one poll runs at a time; an overlapping call
// returns ErrPollInFlight.
func (p *Poller) PollOnce(ctx context.Context) (Result, error) {
	if !p.inflight.CompareAndSwap(false, true) {
		return Unchanged, ErrPollInFlight
	}
	defer p.inflight.Store(false)

	snap, err := p.fetcher.Fetch(ctx)
	if errors.Is(err, apiclient.ErrNotFound) {
		snap = p.cat.DefaultSnapshot()
	} else if err != nil {
		metrics.Polls.WithLabelValues(metrics.OutcomeError).Inc()
		return Unchanged, err
	}

	p.mu.Lock()
	if reflect.DeepEqual(p.lastSeen, snap) {
		p.mu.Unlock()
		metrics.Polls.WithLabelValues(metrics.OutcomeUnchanged).Inc()
		return Unchanged, nil
	}
	p.lastSeen = snap
	p.mu.Unlock()

	metrics.Polls.WithLabelValues(metrics.OutcomeChanged).Inc()
	metrics.SnapshotChanges.Inc()
	if p.onChange != nil {
		p.onChange(snap.Clone())
	}
	return Changed, nil
}

// Run polls immediately and then on a fixed period until ctx is
// canceled. Fetch errors are logged and never stop the loop; a tick
// that arrives while the previous poll is still in flight is skipped
// rather than overlapped.
func (p *Poller) Run(ctx context.Context) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer p.running.Store(false)

	p.pollAndLog(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.pollAndLog(ctx)
		}
	}
}

// Running reports whether the poll loop is active.
func (p *Poller) Running() bool {
	return p.running.Load()
}

func (p *Poller) pollAndLog(ctx context.Context) {
	result, err := p.PollOnce(ctx)
	switch {
	case errors.Is(err, ErrPollInFlight):
		slog.Warn("poll still in flight, skipping tick")
	case err != nil:
		slog.Error("poll failed, keeping last known results", "error", err)
	case result == Changed:
		slog.Info("results changed")
	default:
		slog.Debug("no change in results")
	}
}
