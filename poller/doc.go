// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poller keeps a client's view of the results snapshot in sync
with the persistence resource.

# Change Detection

PollOnce fetches the snapshot (with a cache-busting parameter) and
compares it to the last-seen copy using deep structural equality, so
incidental key ordering in the wire payload never triggers downstream
work. Only a real change replaces the last-seen snapshot and fires the
change callback; re-rendering the map widget is expensive and worth
avoiding.

# Failure Policy

A not-found resource counts as "no data yet" and substitutes the
catalog's default snapshot. Every other fetch failure is logged and the
last-known-good snapshot is retained until the next tick. Nothing here
is fatal.

# Scheduling

Run polls on a fixed period with no backoff. Polls are serialized: a
tick that fires while the previous poll is still in flight is skipped,
so two in-flight fetches can never apply out of order.
*/
package poller
