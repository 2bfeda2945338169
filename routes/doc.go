// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package routes maps navigation state to URL paths and back.

# Path Table

	/              home · user
	/listings      listings · user
	/shortlist     shortlist · user
	/profile/{id}  profile · user
	/provider      dashboard · provider
	/admin         dashboard · admin

Encode precedence is first match wins, in the order admin, provider,
listings, profile, shortlist. Decode is the literal inverse keyed on the
first path segment and never fails: any unrecognized path degrades to the
home route.

Role and view share the same path space. A role switch while a profile is
open therefore drops the /profile/{id} segment; this matches the shipped
behavior and is pinned by tests rather than corrected.
*/
package routes
