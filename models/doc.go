// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain, request, and response types shared by
the results engine, the persistence API, and its clients.

# Domain Types

  - RegionRecord: fixed seat capacity, seats won per party, computed winner
  - ResultsSnapshot: region name → RegionRecord, replaced wholesale
  - NationalTally: per-party national seat totals plus seats counted
  - BarSegment: one slice of the proportional national seat bar
  - Headline: featured-party seats and rounded national percentage

# Conventions

SeatsWon never stores zeros: a party missing from the map has zero seats
in that region. Winner is a *string so the wire format can carry null for
an undecided region, a party code for a decided one, or the WinnerOther
sentinel for a tie.

# Wire Types

LoginRequest/LoginResponse, SaveResponse, SaveRejectedResponse, and
ErrorResponse mirror the JSON bodies of the /api endpoints.
*/
package models
