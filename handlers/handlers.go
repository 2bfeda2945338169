// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/aniketgond098/servizoapp/middleware"
	"github.com/aniketgond098/servizoapp/state"
)

// writeStateError maps controller errors onto HTTP statuses.
func writeStateError(w http.ResponseWriter, err error) {
	var verr *state.ValidationError
	switch {
	case errors.Is(err, state.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Provider not found")
	case errors.Is(err, state.ErrRoleDenied):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Msg)
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
