// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/aniketgond098/servizoapp/handlers"
	"github.com/aniketgond098/servizoapp/middleware"
	"github.com/aniketgond098/servizoapp/state"
)

func NewRouter(app *state.Controller) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	stateHandler := handlers.NewStateHandler(app)
	shortlistHandler := handlers.NewShortlistHandler(app)
	providerHandler := handlers.NewProviderHandler(app)
	dashboardHandler := handlers.NewDashboardHandler(app)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Application state
	mux.HandleFunc("GET /state", middleware.WithLogging(stateHandler.GetState))
	mux.HandleFunc("GET /state/providers", middleware.WithLogging(stateHandler.GetProviders))
	mux.HandleFunc("PUT /state/filters", middleware.WithLogging(stateHandler.SetFilters))
	mux.HandleFunc("PUT /state/theme", middleware.WithLogging(stateHandler.SetTheme))
	mux.HandleFunc("POST /state/navigate", middleware.WithLogging(stateHandler.Navigate))
	mux.HandleFunc("POST /state/role", middleware.WithLogging(stateHandler.SwitchRole))
	mux.HandleFunc("POST /state/history", middleware.WithLogging(stateHandler.PathChanged))
	mux.HandleFunc("POST /state/search", middleware.WithLogging(stateHandler.Search))

	// Shortlist
	mux.HandleFunc("GET /shortlist", middleware.WithLogging(shortlistHandler.GetShortlist))
	mux.HandleFunc("POST /shortlist/{id}/toggle", middleware.WithLogging(shortlistHandler.ToggleShortlist))

	// Provider catalog (nearby before {id}: the literal segment wins)
	mux.HandleFunc("GET /providers/nearby", middleware.WithLogging(providerHandler.GetNearby))
	mux.HandleFunc("GET /providers/{id}", middleware.WithLogging(providerHandler.GetProvider))
	mux.HandleFunc("PUT /providers/{id}", middleware.WithLogging(providerHandler.UpdateProvider))
	mux.HandleFunc("POST /providers/{id}/reviews", middleware.WithLogging(providerHandler.AddReview))

	// Moderation (admin role)
	mux.HandleFunc("POST /providers/{id}/verify", middleware.WithLogging(providerHandler.Verify))
	mux.HandleFunc("POST /providers/{id}/reject", middleware.WithLogging(providerHandler.Reject))
	mux.HandleFunc("POST /providers/{id}/restore", middleware.WithLogging(providerHandler.Restore))

	// Dashboard
	mux.HandleFunc("PUT /dashboard/availability", middleware.WithLogging(dashboardHandler.SetAvailability))
	mux.HandleFunc("PUT /dashboard/description", middleware.WithLogging(dashboardHandler.SetDescription))
	mux.HandleFunc("GET /dashboard/stats", middleware.WithLogging(dashboardHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("servizo API v1"))
	})

	return mux
}
