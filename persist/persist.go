// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/aniketgond098/servizoapp/models"
)

// Storage keys. The names carry the _v1 suffix from the original browser
// profile data so a payload migration can bump them independently.
const (
	KeyProviders = "servizo_providers_v1"
	KeyShortlist = "servizo_shortlist_v1"
	KeyTheme     = "servizo_theme"
	KeyRole      = "servizo_role"
)

// Store is a typed key/value store over durable storage. Saves write
// through immediately; loads read the backing table directly. Loads never
// fail the caller: missing or corrupt values yield the documented default.
type Store struct {
	db *sql.DB
}

// Open connects to the configured backend (sqlite file or postgres URL),
// verifies the connection, and ensures the schema exists.
func Open(databaseType, databaseURL string) (*Store, error) {
	driver := "sqlite"
	if databaseType == "postgres" {
		driver = "postgres"
	}

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSchema creates the backing table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// The $1 placeholder form is understood by both lib/pq and modernc sqlite,
// so one statement set serves both backends.
const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// LoadTheme returns the persisted theme, defaulting to dark.
func (s *Store) LoadTheme() models.Theme {
	raw, ok := s.load(KeyTheme)
	if !ok {
		return models.ThemeDark
	}
	theme, err := models.ParseTheme(raw)
	if err != nil {
		slog.Warn("discarding corrupt theme value", "value", raw)
		return models.ThemeDark
	}
	return theme
}

// SaveTheme writes the theme through to storage.
func (s *Store) SaveTheme(theme models.Theme) error {
	return s.save(KeyTheme, string(theme))
}

// LoadRole returns the persisted role, defaulting to user.
func (s *Store) LoadRole() models.Role {
	raw, ok := s.load(KeyRole)
	if !ok {
		return models.RoleUser
	}
	role, err := models.ParseRole(raw)
	if err != nil {
		slog.Warn("discarding corrupt role value", "value", raw)
		return models.RoleUser
	}
	return role
}

// SaveRole writes the role through to storage.
func (s *Store) SaveRole(role models.Role) error {
	return s.save(KeyRole, string(role))
}

// LoadShortlist returns the persisted shortlist ids, defaulting to empty.
func (s *Store) LoadShortlist() []string {
	raw, ok := s.load(KeyShortlist)
	if !ok {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		slog.Warn("discarding corrupt shortlist payload", "error", err)
		return []string{}
	}
	return ids
}

// SaveShortlist writes the shortlist through to storage.
func (s *Store) SaveShortlist(ids []string) error {
	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal shortlist: %w", err)
	}
	return s.save(KeyShortlist, string(payload))
}

// LoadProviders returns the persisted catalog, falling back to the given
// seed when nothing valid is stored.
func (s *Store) LoadProviders(seed []models.ServiceProvider) []models.ServiceProvider {
	raw, ok := s.load(KeyProviders)
	if !ok {
		return seed
	}
	var providers []models.ServiceProvider
	if err := json.Unmarshal([]byte(raw), &providers); err != nil {
		slog.Warn("discarding corrupt provider catalog payload", "error", err)
		return seed
	}
	return providers
}

// SaveProviders writes the full catalog through to storage.
func (s *Store) SaveProviders(providers []models.ServiceProvider) error {
	payload, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("marshal provider catalog: %w", err)
	}
	return s.save(KeyProviders, string(payload))
}

func (s *Store) load(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		slog.Warn("durable storage read failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (s *Store) save(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = $2
	`, key, value)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
