// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires all HTTP routes to their handlers.

# Routes

Application state:

	GET  /state               Full state snapshot
	GET  /state/providers     Role-gated, filtered catalog projection
	PUT  /state/filters       Replace the filter predicate
	PUT  /state/theme         Set the theme
	POST /state/navigate      Request a view transition
	POST /state/role          Switch the active role
	POST /state/history       Apply a back/forward history event
	POST /state/search        Search from the home screen

Shortlist:

	GET  /shortlist                 Resolved shortlist records
	POST /shortlist/{id}/toggle     Toggle membership

Providers:

	GET  /providers/nearby          Catalog sorted by distance
	GET  /providers/{id}            One record
	PUT  /providers/{id}            Whole-record update
	POST /providers/{id}/reviews    Append a review
	POST /providers/{id}/verify     Set the verified badge (admin)
	POST /providers/{id}/reject     Hide from the user catalog (admin)
	POST /providers/{id}/restore    Clear a rejection (admin)

Dashboard:

	PUT /dashboard/availability     Self-service status (provider)
	PUT /dashboard/description      Self-service description (provider)
	GET /dashboard/stats            Catalog totals

Plus GET /health and a GET / banner. Uses Go 1.22+ method and wildcard
patterns; /providers/nearby registers alongside /providers/{id} because
the literal segment is the more specific pattern.
*/
package router
