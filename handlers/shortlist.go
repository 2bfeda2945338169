// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aniketgond098/servizoapp/middleware"
	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/state"
)

type ShortlistHandler struct {
	app *state.Controller
}

func NewShortlistHandler(app *state.Controller) *ShortlistHandler {
	return &ShortlistHandler{app: app}
}

// GetShortlist handles GET /shortlist
// Returns full provider records in membership order. Rejected providers are
// skipped but keep their membership.
func (h *ShortlistHandler) GetShortlist(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.ShortlistProviders())
}

// ToggleShortlist handles POST /shortlist/{id}/toggle
func (h *ShortlistHandler) ToggleShortlist(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("id")
	if providerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "provider id is required")
		return
	}

	shortlisted, err := h.app.ToggleShortlist(providerID)
	if err != nil {
		writeStateError(w, err)
		return
	}

	slog.Info("shortlist toggled", "provider_id", providerID, "shortlisted", shortlisted)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleShortlistResponse{
		ProviderID:  providerID,
		Shortlisted: shortlisted,
	})
}
