// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/models"
)

// RawInput is the editor's per-region, per-party seat entries exactly as
// typed: values may be negative, non-numeric, or over capacity.
type RawInput map[string]map[string]string

// Corrections records inputs the engine zeroed out (unparsable or
// negative values) so the caller can reset its edit surface.
type Corrections map[string]map[string]int

// CapacityExceededError reports a region whose entered seats sum above
// its fixed capacity. The whole batch is rejected; nothing is persisted.
type CapacityExceededError struct {
	Region   string
	Computed int
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("region %s: %d seats entered, capacity is %d", e.Region, e.Computed, e.Capacity)
}

// UnknownRegionError reports an input or snapshot key outside the
// region catalog.
type UnknownRegionError struct {
	Region string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region %q", e.Region)
}

// Engine validates raw seat entries and finalizes them into a results
// snapshot. All methods are pure and safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

// New creates an engine bound to a region catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// ValidateAndFinalize turns raw form input into a finalized snapshot
// covering every catalog region.
//
// Unparsable and negative values are dropped (that party gets zero
// seats) and reported in Corrections. If any region's surviving seats
// sum above its capacity the whole batch fails with
// CapacityExceededError and no snapshot is returned. Input keyed by a
// region outside the catalog fails with UnknownRegionError.
//
// On success every region satisfies sum(seatsWon) <= totalSeats and
// carries its computed winner.
func (e *Engine) ValidateAndFinalize(raw RawInput) (models.ResultsSnapshot, Corrections, error) {
	if err := e.checkRegionKeys(rawRegions(raw)); err != nil {
		return nil, nil, err
	}

	corrections := Corrections{}
	snap := make(models.ResultsSnapshot, len(e.cat.Regions))

	// Sorted region order keeps the first-failing region deterministic.
	for _, region := range e.cat.RegionNames() {
		capacity, _ := e.cat.Capacity(region)
		seats := map[string]int{}
		sum := 0

		for party, value := range raw[region] {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 0 {
				if corrections[region] == nil {
					corrections[region] = map[string]int{}
				}
				corrections[region][party] = 0
				continue
			}
			if n > 0 {
				seats[party] = n
				sum += n
			}
		}

		if sum > capacity {
			return nil, nil, &CapacityExceededError{Region: region, Computed: sum, Capacity: capacity}
		}

		snap[region] = models.RegionRecord{
			TotalSeats: capacity,
			Winner:     winnerOf(seats),
			SeatsWon:   seats,
		}
	}

	return snap, corrections, nil
}

// Revalidate re-checks a full snapshot (as submitted to the persistence
// API) against the catalog: region keys, capacity sums, and winners are
// all recomputed rather than trusted. Non-positive seat entries are
// stripped, region capacities are forced to the catalog values, and
// missing regions become empty "no data" records.
func (e *Engine) Revalidate(snap models.ResultsSnapshot) (models.ResultsSnapshot, error) {
	if err := e.checkRegionKeys(snapshotRegions(snap)); err != nil {
		return nil, err
	}

	out := make(models.ResultsSnapshot, len(e.cat.Regions))
	for _, region := range e.cat.RegionNames() {
		capacity, _ := e.cat.Capacity(region)
		seats := map[string]int{}
		sum := 0
		for party, n := range snap[region].SeatsWon {
			if n > 0 {
				seats[party] = n
				sum += n
			}
		}
		if sum > capacity {
			return nil, &CapacityExceededError{Region: region, Computed: sum, Capacity: capacity}
		}
		out[region] = models.RegionRecord{
			TotalSeats: capacity,
			Winner:     winnerOf(seats),
			SeatsWon:   seats,
		}
	}
	return out, nil
}

// checkRegionKeys rejects the lexicographically first key not present
// in the catalog, so the error is stable across map iteration orders.
func (e *Engine) checkRegionKeys(regions []string) error {
	sort.Strings(regions)
	for _, region := range regions {
		if !e.cat.HasRegion(region) {
			return &UnknownRegionError{Region: region}
		}
	}
	return nil
}

// winnerOf scans the cleaned seat counts tracking the running maximum
// and an explicit tie flag. A later party matching the max sets the
// flag; a later party exceeding it clears the flag and takes the lead.
// Because ties are tracked by value comparison the result does not
// depend on map iteration order.
func winnerOf(seats map[string]int) *string {
	maxSeats := 0
	leader := ""
	tie := false
	for party, n := range seats {
		switch {
		case n > maxSeats:
			maxSeats = n
			leader = party
			tie = false
		case n == maxSeats && maxSeats > 0:
			tie = true
		}
	}
	if maxSeats == 0 {
		return nil
	}
	if tie {
		other := models.WinnerOther
		return &other
	}
	return &leader
}

func rawRegions(raw RawInput) []string {
	regions := make([]string, 0, len(raw))
	for region := range raw {
		regions = append(regions, region)
	}
	return regions
}

func snapshotRegions(snap models.ResultsSnapshot) []string {
	regions := make([]string, 0, len(snap))
	for region := range snap {
		regions = append(regions, region)
	}
	return regions
}
