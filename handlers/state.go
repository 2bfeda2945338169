// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/aniketgond098/servizoapp/middleware"
	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/state"
)

type StateHandler struct {
	app *state.Controller
}

func NewStateHandler(app *state.Controller) *StateHandler {
	return &StateHandler{app: app}
}

// GetState handles GET /state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.Snapshot())
}

// GetProviders handles GET /state/providers
// Returns the role-gated, filtered catalog projection.
func (h *StateHandler) GetProviders(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.app.VisibleProviders())
}

// SetFilters handles PUT /state/filters
func (h *StateHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req models.FilterState
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.app.SetFilters(req)
	middleware.JSONResponse(w, http.StatusOK, h.app.Filters())
}

// SetTheme handles PUT /state/theme
func (h *StateHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req models.SetThemeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	theme, err := models.ParseTheme(req.Theme)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.app.SetTheme(theme)
	middleware.JSONResponse(w, http.StatusOK, h.app.Snapshot())
}

// Navigate handles POST /state/navigate
// The snapshot it returns shows the URL already moved and the transition
// in flight; the view settles after the transition delay.
func (h *StateHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req models.NavigateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	view, err := models.ParseView(req.View)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.app.NavigateTo(view, req.ProviderID)
	middleware.JSONResponse(w, http.StatusOK, h.app.Snapshot())
}

// SwitchRole handles POST /state/role
func (h *StateHandler) SwitchRole(w http.ResponseWriter, r *http.Request) {
	var req models.SwitchRoleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.app.SwitchRole(role)
	middleware.JSONResponse(w, http.StatusOK, h.app.Snapshot())
}

// PathChanged handles POST /state/history
// Consumes a back/forward event: the path is applied synchronously with no
// transition and no URL re-write.
func (h *StateHandler) PathChanged(w http.ResponseWriter, r *http.Request) {
	var req models.PathChangedRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Path == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "path is required")
		return
	}

	h.app.HandlePathChanged(req.Path)
	middleware.JSONResponse(w, http.StatusOK, h.app.Snapshot())
}

// Search handles POST /state/search
// Sets the search term and navigates to listings in one step.
func (h *StateHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.app.Search(req.Query)
	middleware.JSONResponse(w, http.StatusOK, h.app.Snapshot())
}
