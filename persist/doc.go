// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package persist is the typed key/value façade over durable storage.

# Backends

Open selects the driver from the configured database type:

  - sqlite (modernc.org/sqlite): a local file, zero configuration; the
    default, playing the role the browser's localStorage played
  - postgres (lib/pq): for deployments that want the state off-box

Both share a single table:

	app_state(key TEXT PRIMARY KEY, value TEXT NOT NULL)

# Keys

	servizo_theme          "light" | "dark"
	servizo_role           "user" | "provider" | "admin"
	servizo_shortlist_v1   JSON array of provider ids
	servizo_providers_v1   JSON array of ServiceProvider records

# Failure policy

Loads never fail the caller. A missing row, unreadable value, bad JSON, or
unknown enum yields the documented default (dark, user, empty shortlist,
seed catalog) with a log line at Warn. This state is best-effort UX state,
not a correctness source of truth.

Saves are write-through upserts issued on every mutation, with no batching
or debouncing. Callers treat a save error as non-fatal and log it.
*/
package persist
