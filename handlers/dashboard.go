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

type DashboardHandler struct {
	app *state.Controller
}

func NewDashboardHandler(app *state.Controller) *DashboardHandler {
	return &DashboardHandler{app: app}
}

// SetAvailability handles PUT /dashboard/availability
// Updates the dashboard owner's status. Provider role only.
func (h *DashboardHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req models.SetAvailabilityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	status, err := models.ParseAvailability(req.Availability)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.app.SetAvailability(status); err != nil {
		writeStateError(w, err)
		return
	}

	slog.Info("availability updated", "status", status)

	self, _ := h.app.SelfProvider()
	middleware.JSONResponse(w, http.StatusOK, self)
}

// SetDescription handles PUT /dashboard/description
func (h *DashboardHandler) SetDescription(w http.ResponseWriter, r *http.Request) {
	var req models.SetDescriptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	if err := h.app.SetDescription(req.Description); err != nil {
		writeStateError(w, err)
		return
	}

	self, _ := h.app.SelfProvider()
	middleware.JSONResponse(w, http.StatusOK, self)
}

// GetStats handles GET /dashboard/stats
// Catalog totals for the admin dashboard.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.Stats())
}
