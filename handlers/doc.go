// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP endpoints over the state controller.

# Handler Groups

  - StateHandler: snapshot reads, filters, theme, navigation, role
    switching, history events, and search
  - ShortlistHandler: shortlist reads and membership toggles
  - ProviderHandler: catalog reads, whole-record updates, reviews,
    nearest-provider queries, and admin moderation
  - DashboardHandler: the provider dashboard's self-service edits and the
    admin stats summary

# Error Mapping

Controller errors map onto statuses in one place:

	state.ErrNotFound        → 404
	state.ErrRoleDenied      → 403
	*state.ValidationError   → 400

Malformed JSON and unknown enum values are 400s caught before the
controller is touched.

# Navigation Semantics

POST /state/navigate returns a snapshot taken right after the request: the
path has already moved, transitioning is true, and the view settles after
the transition delay. POST /state/history applies synchronously, so its
snapshot is already settled.
*/
package handlers
