// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the results API.

# Handlers

  - ResultsHandler: the persistence resource (GET/POST /api/results)
  - LoginHandler: the entry-password gate (POST /api/login)

Handlers are structs created via constructors that take their
dependencies:

	resultsHandler := handlers.NewResultsHandler(st, eng, cat)

# Results Resource

GET returns the stored snapshot, or the catalog's default snapshot with
status 200 when nothing has been saved yet. POST replaces the snapshot
wholesale after server-side revalidation; a region over capacity rejects
the whole batch with 422 and a body naming the region, its computed sum,
and its capacity. There are no patch semantics.
*/
package handlers
