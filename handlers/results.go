// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/abekoci/election-map/catalog"
	"github.com/abekoci/election-map/engine"
	"github.com/abekoci/election-map/metrics"
	"github.com/abekoci/election-map/middleware"
	"github.com/abekoci/election-map/models"
	"github.com/abekoci/election-map/store"
)

type ResultsHandler struct {
	store *store.Store
	eng   *engine.Engine
	cat   *catalog.Catalog
}

func NewResultsHandler(st *store.Store, eng *engine.Engine, cat *catalog.Catalog) *ResultsHandler {
	return &ResultsHandler{store: st, eng: eng, cat: cat}
}

// GetResults handles GET /api/results
// An empty store is "no data yet": the catalog's default snapshot is
// returned with status 200, never a 404.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Load(r.Context())
	if errors.Is(err, store.ErrNoData) {
		slog.Info("no results saved yet, returning initial structure")
		middleware.JSONResponse(w, http.StatusOK, h.cat.DefaultSnapshot())
		return
	}
	if err != nil {
		slog.Error("failed to load results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error reading stored results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}

// SaveResults handles POST /api/results
// The posted snapshot replaces the stored one wholesale, but only after
// revalidation: region keys, capacity sums, and winners are recomputed
// server-side. A capacity violation rejects the whole batch with 422
// and nothing is persisted.
func (h *ResultsHandler) SaveResults(w http.ResponseWriter, r *http.Request) {
	var snap models.ResultsSnapshot
	if err := middleware.ParseJSONBody(r, &snap); err != nil {
		metrics.Saves.WithLabelValues(metrics.OutcomeRejected).Inc()
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON data received. Expected an object.")
		return
	}

	finalized, err := h.eng.Revalidate(snap)
	if err != nil {
		metrics.Saves.WithLabelValues(metrics.OutcomeRejected).Inc()

		var capErr *engine.CapacityExceededError
		if errors.As(err, &capErr) {
			middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.SaveRejectedResponse{
				Status:   "error",
				Message:  capErr.Error(),
				Region:   capErr.Region,
				Computed: capErr.Computed,
				Capacity: capErr.Capacity,
			})
			return
		}

		var unkErr *engine.UnknownRegionError
		if errors.As(err, &unkErr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, unkErr.Error())
			return
		}

		slog.Error("snapshot revalidation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error processing request")
		return
	}

	if err := h.store.Save(r.Context(), finalized); err != nil {
		metrics.Saves.WithLabelValues(metrics.OutcomeError).Inc()
		slog.Error("failed to save results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to write results")
		return
	}

	metrics.Saves.WithLabelValues(metrics.OutcomeSuccess).Inc()
	middleware.JSONResponse(w, http.StatusOK, models.SaveResponse{
		Status:  "success",
		Message: "Data saved successfully.",
		SaveID:  uuid.NewString(),
	})
}
