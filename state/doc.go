// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package state composes the whole application behind one Controller.

# Responsibilities

The Controller is built once at boot. It hydrates theme, role, shortlist,
and the provider catalog from durable storage, derives the initial
navigation state from the boot path, and from then on is the only writer
of application state:

  - navigation and role switching (delegated to the nav machine)
  - the filter predicate and the memoized visible-provider projection
  - shortlist membership
  - catalog mutations: whole-record updates, reviews, moderation flags,
    and the provider dashboard's self-service edits

# Boot precedence

A role encoded in the boot path (/admin, /provider) wins over the
persisted role; neutral paths keep the persisted role. An unresolvable
profile path degrades to listings before the first snapshot.

# Persistence

Every theme, role, shortlist, and catalog mutation writes through exactly
one save. A failed save logs at Warn and the session continues from
memory.

# Role gating

Moderation (verify, reject, restore) requires the admin role; dashboard
self-service requires the provider role. The gate mirrors what the UI
would allow and returns ErrRoleDenied otherwise. It is not a security
boundary.
*/
package state
