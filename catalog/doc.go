// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog owns the canonical mutable collection of provider records.

# Contract

  - All: copy of the catalog in stable insertion order
  - Get: lookup by id
  - Update: whole-record replacement by id; no-op when absent, never inserts
  - Version: monotonic counter bumped per successful update

Update is the single mutation primitive. Every role-specific action (verify,
reject, restore, edit, availability change) is expressed as read current
record, produce a modified copy, call Update. Two mutations computed from
the same stale snapshot lose the earlier write; last call wins.

Records are never deleted. Rejection is a soft, reversible flag on the
record itself.

# Seed

Seed returns the built-in dataset used when no catalog has been persisted
yet. After first boot the persisted catalog is authoritative.
*/
package catalog
