// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the election-map results
service.

The service tracks regional election results (seats won per party per
administrative region) behind a single REST resource, keeping the
data-entry editor and the public results viewer consistent with one
source of truth.

# Starting the Server

	go run . -p 8000

Configuration comes from flags or environment variables:

  - PORT (-p): listen port (default: 8000)
  - DATABASE_DRIVER (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or postgres DSN
  - ELECTION_MAP_PASSWORD (-password): editor entry password
  - CATALOG_PATH (-catalog): region/party catalog YAML override

A .env file in the working directory is loaded if present.

# Watch Mode

	go run . -watch -api http://localhost:8000 -interval 30s

Runs the headless viewer: polls /api/results on a fixed period, detects
structural changes, and logs the national tally, bar segments, and
headline figures on each change.

# Architecture

  - catalog: region capacities and the open party registry
  - engine: input validation, capacity checks, winner computation
  - aggregate: national tally, bar segments, headline figures
  - store: whole-snapshot persistence (sqlite or postgres)
  - apiclient/poller: REST client and change-detecting sync loop
  - handlers/router/middleware: the HTTP surface
  - metrics: Prometheus counters

See package documentation for each component.
*/
package main
