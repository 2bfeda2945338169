// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/testutil"
)

func TestGetState(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	req := testutil.MakeRequest("GET", "/state", nil)
	w := httptest.NewRecorder()
	h.GetState(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Navigation.View != models.ViewHome || snap.Navigation.Role != models.RoleUser {
		t.Errorf("Expected home/user boot state, got %+v", snap.Navigation)
	}
	if snap.Path != "/" {
		t.Errorf("Expected path /, got %s", snap.Path)
	}
	if snap.Theme != models.ThemeDark {
		t.Errorf("Expected dark theme, got %s", snap.Theme)
	}
}

func TestGetProvidersAppliesFilters(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	// Unfiltered: the whole seed catalog
	w := httptest.NewRecorder()
	h.GetProviders(w, testutil.MakeRequest("GET", "/state/providers", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var all []models.ServiceProvider
	testutil.AssertJSON(t, w, &all)
	if len(all) == 0 {
		t.Fatal("Expected seed providers")
	}

	// Filtered down by search
	w = httptest.NewRecorder()
	h.SetFilters(w, testutil.MakeRequest("PUT", "/state/filters", models.FilterState{Search: "plumb"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	h.GetProviders(w, testutil.MakeRequest("GET", "/state/providers", nil))

	var filtered []models.ServiceProvider
	testutil.AssertJSON(t, w, &filtered)
	if len(filtered) == 0 || len(filtered) >= len(all) {
		t.Errorf("Expected search to narrow the catalog, got %d of %d", len(filtered), len(all))
	}
}

func TestSetTheme(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.SetTheme(w, testutil.MakeRequest("PUT", "/state/theme", models.SetThemeRequest{Theme: "light"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Theme != models.ThemeLight {
		t.Errorf("Expected light theme, got %s", snap.Theme)
	}
}

func TestSetThemeRejectsUnknownValue(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.SetTheme(w, testutil.MakeRequest("PUT", "/state/theme", models.SetThemeRequest{Theme: "solarized"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestNavigateMovesURLBeforeViewSettles(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.Navigate(w, testutil.MakeRequest("POST", "/state/navigate", models.NavigateRequest{View: "listings"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Path != "/listings" {
		t.Errorf("URL should move synchronously, got %s", snap.Path)
	}
	if !snap.Transitioning {
		t.Error("Expected transition in flight")
	}
	if snap.Navigation.View != models.ViewHome {
		t.Errorf("View should not settle before the delay, got %s", snap.Navigation.View)
	}

	testutil.WaitSettled(t, app)
	if settled := app.Snapshot(); settled.Navigation.View != models.ViewListings {
		t.Errorf("Expected listings after settle, got %s", settled.Navigation.View)
	}
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.Navigate(w, testutil.MakeRequest("POST", "/state/navigate", models.NavigateRequest{View: "settings"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestNavigateToMissingProfileFallsBack(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.Navigate(w, testutil.MakeRequest("POST", "/state/navigate", models.NavigateRequest{View: "profile", ProviderID: "999"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Path != "/listings" {
		t.Errorf("Unresolved profile should target listings, got %s", snap.Path)
	}
}

func TestSwitchRole(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.SwitchRole(w, testutil.MakeRequest("POST", "/state/role", models.SwitchRoleRequest{Role: "admin"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Navigation.Role != models.RoleAdmin {
		t.Errorf("Role should apply immediately, got %s", snap.Navigation.Role)
	}
	if snap.Path != "/admin" {
		t.Errorf("Expected /admin path, got %s", snap.Path)
	}

	testutil.WaitSettled(t, app)
	if settled := app.Snapshot(); settled.Navigation.View != models.ViewDashboard {
		t.Errorf("Expected dashboard landing, got %s", settled.Navigation.View)
	}
}

func TestSwitchRoleRejectsUnknownRole(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.SwitchRole(w, testutil.MakeRequest("POST", "/state/role", models.SwitchRoleRequest{Role: "superadmin"}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestPathChangedIsSynchronous(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.PathChanged(w, testutil.MakeRequest("POST", "/state/history", models.PathChangedRequest{Path: "/shortlist"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Transitioning {
		t.Error("History events should not start a transition")
	}
	if snap.Navigation.View != models.ViewShortlist {
		t.Errorf("Expected shortlist view, got %s", snap.Navigation.View)
	}
}

func TestPathChangedRequiresPath(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.PathChanged(w, testutil.MakeRequest("POST", "/state/history", models.PathChangedRequest{}))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSearch(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	h := NewStateHandler(app)

	w := httptest.NewRecorder()
	h.Search(w, testutil.MakeRequest("POST", "/state/search", models.SearchRequest{Query: "tutor"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Filters.Search != "tutor" {
		t.Errorf("Expected search term set, got %+v", snap.Filters)
	}
	if snap.Path != "/listings" {
		t.Errorf("Expected /listings path, got %s", snap.Path)
	}
}
