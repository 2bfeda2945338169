// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/testutil"
)

func TestHealthCheck(t *testing.T) {
	mux := NewRouter(testutil.NewTestState(t, "/"))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %s", w.Body.String())
	}
}

func TestRootBanner(t *testing.T) {
	mux := NewRouter(testutil.NewTestState(t, "/"))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "servizo API v1" {
		t.Errorf("Expected banner, got %s", w.Body.String())
	}
}

func TestRoutesAreRegistered(t *testing.T) {
	mux := NewRouter(testutil.NewTestState(t, "/"))

	// Every route should resolve to a handler, not 404/405
	routes := []struct {
		method string
		path   string
		body   interface{}
	}{
		{"GET", "/state", nil},
		{"GET", "/state/providers", nil},
		{"PUT", "/state/filters", models.FilterState{}},
		{"PUT", "/state/theme", models.SetThemeRequest{Theme: "light"}},
		{"POST", "/state/navigate", models.NavigateRequest{View: "listings"}},
		{"POST", "/state/role", models.SwitchRoleRequest{Role: "user"}},
		{"POST", "/state/history", models.PathChangedRequest{Path: "/"}},
		{"POST", "/state/search", models.SearchRequest{Query: "x"}},
		{"GET", "/shortlist", nil},
		{"POST", "/shortlist/1/toggle", nil},
		{"GET", "/providers/nearby?lat=12.9&lng=77.5", nil},
		{"GET", "/providers/1", nil},
		{"POST", "/providers/1/reviews", models.AddReviewRequest{User: "A", Rating: 4}},
		{"GET", "/dashboard/stats", nil},
	}

	for _, rt := range routes {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(rt.method, rt.path, rt.body))
		if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
			t.Errorf("%s %s not routed: %d", rt.method, rt.path, w.Code)
		}
	}
}

func TestNearbyIsNotShadowedByWildcard(t *testing.T) {
	mux := NewRouter(testutil.NewTestState(t, "/"))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/providers/nearby?lat=12.9716&lng=77.5946", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var sorted []models.ServiceProvider
	testutil.AssertJSON(t, w, &sorted)
	if len(sorted) == 0 {
		t.Error("Expected distance-sorted providers, not a wildcard 404")
	}
}

// Full browsing flow: open a profile, go back, check the shortlist.
func TestBrowseFlow(t *testing.T) {
	app := testutil.NewTestState(t, "/")
	mux := NewRouter(app)

	// Open a profile
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/state/navigate", models.NavigateRequest{View: "profile", ProviderID: "3"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var snap models.StateSnapshot
	testutil.AssertJSON(t, w, &snap)
	if snap.Path != "/profile/3" {
		t.Fatalf("Expected /profile/3, got %s", snap.Path)
	}
	testutil.WaitSettled(t, app)

	// Shortlist the open provider
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/shortlist/3/toggle", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Back button to the home screen
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/state/history", models.PathChangedRequest{Path: "/"}))
	testutil.AssertStatus(t, w, http.StatusOK)

	testutil.AssertJSON(t, w, &snap)
	if snap.Navigation.View != models.ViewHome || snap.Transitioning {
		t.Errorf("Expected settled home state, got %+v", snap)
	}

	// Shortlist survived the trip
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/shortlist", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resolved []models.ServiceProvider
	testutil.AssertJSON(t, w, &resolved)
	if len(resolved) != 1 || resolved[0].ID != "3" {
		t.Errorf("Expected provider 3 shortlisted, got %+v", resolved)
	}
}
