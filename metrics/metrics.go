// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics defines the Prometheus collectors shared by the
// poller and the API handlers, registered on the default registry and
// served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Poll and save outcomes.
const (
	OutcomeChanged   = "changed"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
)

var (
	// Polls counts polls of the results resource by outcome.
	Polls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "electionmap_polls_total",
		Help: "Polls of the results resource by outcome.",
	}, []string{"outcome"})

	// Saves counts snapshot save attempts by outcome.
	Saves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "electionmap_saves_total",
		Help: "Snapshot save attempts by outcome.",
	}, []string{"outcome"})

	// SnapshotChanges counts polls that detected a structural change.
	SnapshotChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "electionmap_snapshot_changes_total",
		Help: "Polls that observed a structurally different snapshot.",
	})
)
