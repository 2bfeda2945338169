// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package nav is the navigation state machine.

# States

	idle          accepting requests
	transitioning a navigation is in flight

A NavigateTo call pushes the encoded URL synchronously (current role, target
view), raises the transitioning flag, and settles view + selection after a
fixed delay. The delay only drives the loading indicator.

# Supersession

Each transition takes a monotonically increasing token. A completion whose
token is no longer current is discarded, so when two requests overlap the
later one always wins; there is no queue and no explicit cancel.

# Role switches

SwitchRole sets the role immediately, then transitions to the role's
canonical landing view (dashboard for provider/admin, home for user).

# History events

HandlePathChanged is the inbound counterpart of NavigateTo: the browser
already moved, so the controller decodes the path and sets role, view, and
selection synchronously. No URL re-write, no loading state, and any pending
transition is abandoned.

# Profile invariant

A profile target must resolve to an existing, non-rejected provider; a
failed resolution degrades to the listings view with no selection on both
the outbound and inbound paths.
*/
package nav
