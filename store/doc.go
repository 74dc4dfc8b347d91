// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the authoritative results snapshot behind the
/api/results resource.

The snapshot is written as one JSON blob in a single-row table and
replaced wholesale on every save. There is no patching and no optimistic
concurrency: the last writer wins, which is the documented trade-off for
a single trusted operator.

Two backends share the same schema: sqlite (default, via modernc.org's
pure-Go driver) and postgres (via lib/pq).
*/
package store
