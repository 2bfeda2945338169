// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aniketgond098/servizoapp/middleware"
	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/state"
)

type ProviderHandler struct {
	app *state.Controller
}

func NewProviderHandler(app *state.Controller) *ProviderHandler {
	return &ProviderHandler{app: app}
}

// GetProvider handles GET /providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("id")
	if providerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "provider id is required")
		return
	}

	p, ok := h.app.Provider(providerID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Provider not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// UpdateProvider handles PUT /providers/{id}
// Replaces the record wholesale. The body id must match the path.
func (h *ProviderHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("id")
	if providerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "provider id is required")
		return
	}

	var req models.ServiceProvider
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ID != providerID {
		middleware.ErrorResponse(w, http.StatusBadRequest, "body id does not match path id")
		return
	}

	if err := h.app.UpdateProvider(req); err != nil {
		writeStateError(w, err)
		return
	}

	slog.Info("provider updated", "provider_id", providerID)

	updated, _ := h.app.Provider(providerID)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// AddReview handles POST /providers/{id}/reviews
func (h *ProviderHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("id")
	if providerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "provider id is required")
		return
	}

	var req models.AddReviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	review, err := h.app.AddReview(providerID, req)
	if err != nil {
		writeStateError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, review)
}

// GetNearby handles GET /providers/nearby?lat=..&lng=..
// Returns the role-gated catalog sorted by distance, nearest first.
func (h *ProviderHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.app.NearbyProviders(lat, lng))
}

// Verify handles POST /providers/{id}/verify
func (h *ProviderHandler) Verify(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, func(id string) error { return h.app.SetVerified(id, true) })
}

// Reject handles POST /providers/{id}/reject
func (h *ProviderHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.app.Reject)
}

// Restore handles POST /providers/{id}/restore
func (h *ProviderHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.app.Restore)
}

func (h *ProviderHandler) moderate(w http.ResponseWriter, r *http.Request, op func(string) error) {
	providerID := r.PathValue("id")
	if providerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "provider id is required")
		return
	}

	if err := op(providerID); err != nil {
		writeStateError(w, err)
		return
	}

	updated, _ := h.app.Provider(providerID)
	middleware.JSONResponse(w, http.StatusOK, updated)
}
