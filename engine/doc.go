// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine validates raw seat entries and finalizes them into
results snapshots.

# Finalization

ValidateAndFinalize processes each catalog region independently:

 1. Coerce every entered value to an integer. Unparsable or negative
    values count as zero seats and are reported back as corrections.
 2. Sum the surviving counts. A sum above the region's fixed capacity
    fails the entire batch with CapacityExceededError.
 3. Determine the winner: the unique party at the positive maximum, the
    "Other" sentinel on a multi-way tie, or nil when no seats are won.

The operation is pure: no IO, no mutation of its input, deterministic
regardless of map iteration order.

# Server-side Revalidation

Revalidate applies the same capacity and winner rules to a snapshot
posted to the persistence API, so a hand-crafted request cannot store
data violating the per-region invariant.
*/
package engine
