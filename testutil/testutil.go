// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aniketgond098/servizoapp/cliparse"
	"github.com/aniketgond098/servizoapp/persist"
	"github.com/aniketgond098/servizoapp/state"
)

// TestTransitionDelay keeps navigation tests fast. Production uses 800ms.
const TestTransitionDelay = 10 * time.Millisecond

// OpenTestStore opens a throwaway sqlite store under t.TempDir. A file is
// used rather than :memory: because each pooled connection would otherwise
// see its own empty database.
func OpenTestStore(t *testing.T) *persist.Store {
	t.Helper()

	s, err := persist.Open("sqlite", filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// NewTestState builds a state controller on a fresh store, booted at the
// given path with a short transition delay.
func NewTestState(t *testing.T, bootPath string) *state.Controller {
	t.Helper()
	cfg := GetTestConfig()
	return state.New(OpenTestStore(t), bootPath, cfg.TransitionDelay, cfg.SelfProviderID)
}

// WaitSettled blocks until no transition is in flight.
func WaitSettled(t *testing.T, c *state.Controller) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if snap := c.Snapshot(); !snap.Transitioning {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Transition never settled")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            4217,
		DatabaseURL:     "test.db",
		DatabaseType:    "sqlite",
		TransitionDelay: TestTransitionDelay,
		SelfProviderID:  "1",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
