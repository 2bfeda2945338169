// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package filter computes the visible subset of the provider catalog.

Visible applies, in order:

 1. Role gate: the user role drops rejected listings; provider and admin
    roles see everything.
 2. Search: case-insensitive substring over name, category, and skills.
 3. Category: exact match.
 4. Location: substring match.
 5. Availability: exact match.

All predicates AND together; empty fields are unconstrained. Output keeps
the catalog's insertion order, with no ranking.

Distance (haversine, km) and Nearest exist for the map widget's "near me"
affordance and are deliberately not part of the default ordering.
*/
package filter
