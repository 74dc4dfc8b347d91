// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// WinnerOther is the sentinel winner for a region where two or more
// parties tie at the regional maximum.
const WinnerOther = "Other"

// Domain types

// RegionRecord is the per-region slice of a results snapshot.
//
// SeatsWon holds only parties with more than zero seats; an absent key
// means zero (the canonical representation). Winner is nil while the
// region is undecided.
type RegionRecord struct {
	TotalSeats int            `json:"totalSeats"`
	Winner     *string        `json:"winner"`
	SeatsWon   map[string]int `json:"seatsWon"`
}

// ResultsSnapshot is the complete, atomic picture of all regions at one
// point in time. It is replaced wholesale on every load or save, never
// patched field-by-field.
type ResultsSnapshot map[string]RegionRecord

// Clone returns a deep copy of the snapshot.
func (s ResultsSnapshot) Clone() ResultsSnapshot {
	if s == nil {
		return nil
	}
	out := make(ResultsSnapshot, len(s))
	for region, rec := range s {
		seats := make(map[string]int, len(rec.SeatsWon))
		for party, n := range rec.SeatsWon {
			seats[party] = n
		}
		var winner *string
		if rec.Winner != nil {
			w := *rec.Winner
			winner = &w
		}
		out[region] = RegionRecord{
			TotalSeats: rec.TotalSeats,
			Winner:     winner,
			SeatsWon:   seats,
		}
	}
	return out
}

// NationalTally holds per-party seat totals summed across all regions.
// TotalSeatsCounted approaches, but need not equal, the fixed national
// seat total as results come in.
type NationalTally struct {
	Seats             map[string]int `json:"seats"`
	TotalSeatsCounted int            `json:"totalSeatsCounted"`
}

// BarSegment is one slice of the proportional national seat bar. It is
// derived per render pass and never persisted.
type BarSegment struct {
	Party        string  `json:"party"`
	Seats        int     `json:"seats"`
	WidthPercent float64 `json:"widthPercent"`
	Color        string  `json:"color"`
}

// Headline is a featured party's national seat count and share of the
// fixed national total, rounded to one decimal place.
type Headline struct {
	Party   string  `json:"party"`
	Seats   int     `json:"seats"`
	Percent float64 `json:"percent"`
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token,omitempty"`
	Error         string `json:"error,omitempty"`
}

type SaveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	SaveID  string `json:"save_id,omitempty"`
}

// SaveRejectedResponse identifies the region that violated its seat
// capacity so the editor can point the operator at it.
type SaveRejectedResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Region   string `json:"region"`
	Computed int    `json:"computed"`
	Capacity int    `json:"capacity"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
