// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/cliparse"
	"github.com/abekoci/election-map/engine"
	"github.com/abekoci/election-map/handlers"
	"github.com/abekoci/election-map/middleware"
	"github.com/abekoci/election-map/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config, cat *catalog.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	eng := engine.New(cat)
	resultsHandler := handlers.NewResultsHandler(st, eng, cat)
	loginHandler := handlers.NewLoginHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Results resource (snapshot read/replace)
	mux.HandleFunc("GET /api/results", middleware.WithLogging(middleware.NoStore(resultsHandler.GetResults)))
	mux.HandleFunc("POST /api/results", middleware.WithLogging(resultsHandler.SaveResults))

	// Editor access gate
	mux.HandleFunc("POST /api/login", middleware.WithLogging(loginHandler.Login))

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("election-map API v1"))
	})

	return mux
}
