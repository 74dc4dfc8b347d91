// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the typed HTTP client for the results persistence
resource: Fetch (GET with cache busting), Save (full-snapshot POST), and
Login (entry-password gate).

Failures split along the recovery policy: FetchError is transient and
callers retain last-known-good state, SaveError is surfaced for a manual
retry, and a server-side capacity rejection comes back as the engine's
own CapacityExceededError.
*/
package apiclient
