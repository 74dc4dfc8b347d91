// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ method+pattern
routing:

	GET  /health       → liveness check
	GET  /api/results  → current snapshot (no-store, default when empty)
	POST /api/results  → full snapshot replacement (revalidated)
	POST /api/login    → entry-password gate
	GET  /metrics      → Prometheus metrics
*/
package router
