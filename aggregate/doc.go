// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate derives the national summary from a results snapshot.

Aggregate produces the per-party NationalTally and the ordered
BarSegment list (seats descending, party code ascending). Headlines
returns the featured parties' seats and rounded national percentage.
RegionColors maps each region to its renderer color token.

All derivations are recomputed from scratch per call and own no state,
so calling them twice on the same snapshot yields identical output.
*/
package aggregate
