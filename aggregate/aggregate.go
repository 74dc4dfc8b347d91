// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"log/slog"
	"math"
	"sort"

	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/models"
)

// Aggregator reduces a full results snapshot into the national summary:
// per-party seat totals, the proportional bar segments, and the
// featured-party headline figures. It holds no state between passes.
type Aggregator struct {
	cat *catalog.Catalog
}

// New creates an aggregator bound to a catalog.
func New(cat *catalog.Catalog) *Aggregator {
	return &Aggregator{cat: cat}
}

// Aggregate sums seats won per party across all regions and builds the
// ordered bar segments.
//
// Every registered party starts at zero. A party code outside the
// registry is logged and dropped from the totals; it never aborts the
// pass. Segment widths use the fixed national seat total as the
// denominator and are never clamped or renormalized, so inconsistent
// input (more seats counted than the national total) surfaces as an
// over-100% bar rather than being masked.
func (a *Aggregator) Aggregate(snap models.ResultsSnapshot) (models.NationalTally, []models.BarSegment) {
	tally := models.NationalTally{Seats: make(map[string]int, len(a.cat.Parties))}
	for _, code := range a.cat.PartyCodes() {
		tally.Seats[code] = 0
	}

	// Sorted regions keep warning order reproducible.
	regions := make([]string, 0, len(snap))
	for region := range snap {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		for party, seats := range snap[region].SeatsWon {
			if _, known := tally.Seats[party]; !known {
				slog.Warn("unexpected party code in results", "party", party, "region", region)
				continue
			}
			tally.Seats[party] += seats
			tally.TotalSeatsCounted += seats
		}
	}

	segments := make([]models.BarSegment, 0, len(tally.Seats))
	for party, seats := range tally.Seats {
		if seats == 0 {
			continue
		}
		segments = append(segments, models.BarSegment{
			Party:        party,
			Seats:        seats,
			WidthPercent: float64(seats) / float64(a.cat.TotalNationalSeats) * 100,
			Color:        a.partyColor(party),
		})
	}

	// Seats descending, then party code ascending: a strict total order,
	// so identical input always yields identical segment order.
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Seats != segments[j].Seats {
			return segments[i].Seats > segments[j].Seats
		}
		return segments[i].Party < segments[j].Party
	})

	return tally, segments
}

// Headlines returns the configured featured parties as seats and
// percentage of the fixed national total, rounded to one decimal place
// (half away from zero).
func (a *Aggregator) Headlines(tally models.NationalTally) []models.Headline {
	headlines := make([]models.Headline, 0, len(a.cat.Featured))
	for _, party := range a.cat.Featured {
		seats := tally.Seats[party]
		percent := float64(seats) / float64(a.cat.TotalNationalSeats) * 100
		headlines = append(headlines, models.Headline{
			Party:   party,
			Seats:   seats,
			Percent: math.Round(percent*10) / 10,
		})
	}
	return headlines
}

// RegionColors maps every catalog region to the fill color token for its
// current winner: the party color, the Other color on a tie, or the TBD
// color while undecided or absent from the snapshot.
func (a *Aggregator) RegionColors(snap models.ResultsSnapshot) map[string]string {
	colors := make(map[string]string, len(a.cat.Regions))
	for region := range a.cat.Regions {
		rec, ok := snap[region]
		if !ok {
			colors[region] = a.cat.ColorFor(nil)
			continue
		}
		colors[region] = a.cat.ColorFor(rec.Winner)
	}
	return colors
}

func (a *Aggregator) partyColor(party string) string {
	if p, ok := a.cat.Parties[party]; ok {
		return p.Color
	}
	return a.cat.Parties[catalog.SentinelOther].Color
}
