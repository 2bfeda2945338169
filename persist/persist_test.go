// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"path/filepath"
	"testing"

	"github.com/aniketgond098/servizoapp/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open("sqlite", filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func corruptKey(t *testing.T, s *Store, key, value string) {
	t.Helper()
	if err := s.save(key, value); err != nil {
		t.Fatalf("Failed to plant corrupt value: %v", err)
	}
}

func TestDefaultsWhenEmpty(t *testing.T) {
	s := openTestStore(t)

	if theme := s.LoadTheme(); theme != models.ThemeDark {
		t.Errorf("Expected dark default, got %s", theme)
	}
	if role := s.LoadRole(); role != models.RoleUser {
		t.Errorf("Expected user default, got %s", role)
	}
	if ids := s.LoadShortlist(); len(ids) != 0 {
		t.Errorf("Expected empty shortlist, got %v", ids)
	}

	seed := []models.ServiceProvider{{ID: "1", Name: "Arjun Mehta"}}
	if got := s.LoadProviders(seed); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Expected seed catalog fallback, got %v", got)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveTheme(models.ThemeLight); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}
	if got := s.LoadTheme(); got != models.ThemeLight {
		t.Errorf("Expected light, got %s", got)
	}

	// Saves overwrite, not append.
	if err := s.SaveTheme(models.ThemeDark); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}
	if got := s.LoadTheme(); got != models.ThemeDark {
		t.Errorf("Expected dark after overwrite, got %s", got)
	}
}

func TestRoleRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveRole(models.RoleAdmin); err != nil {
		t.Fatalf("SaveRole failed: %v", err)
	}
	if got := s.LoadRole(); got != models.RoleAdmin {
		t.Errorf("Expected admin, got %s", got)
	}
}

func TestShortlistRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveShortlist([]string{"3", "1"}); err != nil {
		t.Fatalf("SaveShortlist failed: %v", err)
	}

	got := s.LoadShortlist()
	if len(got) != 2 || got[0] != "3" || got[1] != "1" {
		t.Errorf("Expected [3 1], got %v", got)
	}
}

func TestProvidersRoundTrip(t *testing.T) {
	s := openTestStore(t)

	catalog := []models.ServiceProvider{
		{ID: "1", Name: "Arjun Mehta", Availability: models.StatusAvailable, Skills: []string{"Leak Detection"},
			Reviews: []models.Review{{ID: "r1", User: "Priya S.", Rating: 5, Comment: "Great", Date: "2024-11-02"}}},
		{ID: "2", Name: "Sneha Rao", IsRejected: true, Reviews: []models.Review{}},
	}
	if err := s.SaveProviders(catalog); err != nil {
		t.Fatalf("SaveProviders failed: %v", err)
	}

	got := s.LoadProviders(nil)
	if len(got) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(got))
	}
	if got[0].Skills[0] != "Leak Detection" || got[0].Reviews[0].User != "Priya S." {
		t.Errorf("Nested fields lost: %+v", got[0])
	}
	if !got[1].IsRejected {
		t.Error("Rejection flag lost in round trip")
	}
}

func TestCorruptValuesYieldDefaults(t *testing.T) {
	s := openTestStore(t)

	corruptKey(t, s, KeyTheme, "solarized")
	corruptKey(t, s, KeyRole, "superadmin")
	corruptKey(t, s, KeyShortlist, "{not json")
	corruptKey(t, s, KeyProviders, "[{\"id\": 42]")

	if got := s.LoadTheme(); got != models.ThemeDark {
		t.Errorf("Corrupt theme should default to dark, got %s", got)
	}
	if got := s.LoadRole(); got != models.RoleUser {
		t.Errorf("Corrupt role should default to user, got %s", got)
	}
	if got := s.LoadShortlist(); len(got) != 0 {
		t.Errorf("Corrupt shortlist should default to empty, got %v", got)
	}

	seed := []models.ServiceProvider{{ID: "1"}}
	if got := s.LoadProviders(seed); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("Corrupt catalog should fall back to seed, got %v", got)
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	if err := CreateSchema(s.db); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}
