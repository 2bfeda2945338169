// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package routes

import (
	"strings"

	"github.com/aniketgond098/servizoapp/models"
)

// Encode maps a navigation intent to a URL path. Precedence is first match
// wins and mirrors Decode: role is encoded into the same path space as the
// view, so a role switch while deep in a profile loses the profile segment.
// That is observable, accepted behavior.
func Encode(view models.View, role models.Role, providerID string) string {
	switch {
	case role == models.RoleAdmin:
		return "/admin"
	case role == models.RoleProvider:
		return "/provider"
	case view == models.ViewListings:
		return "/listings"
	case view == models.ViewProfile && providerID != "":
		return "/profile/" + providerID
	case view == models.ViewShortlist:
		return "/shortlist"
	}
	return "/"
}

// Decode is the literal inverse of Encode, keyed on the first path segment.
// It never fails: unrecognized paths degrade to the home route.
func Decode(path string) models.NavigationState {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	switch segments[0] {
	case "admin":
		return models.NavigationState{View: models.ViewDashboard, Role: models.RoleAdmin}
	case "provider":
		return models.NavigationState{View: models.ViewDashboard, Role: models.RoleProvider}
	case "listings":
		return models.NavigationState{View: models.ViewListings, Role: models.RoleUser}
	case "profile":
		if len(segments) > 1 && segments[1] != "" {
			return models.NavigationState{View: models.ViewProfile, Role: models.RoleUser, ProviderID: segments[1]}
		}
	case "shortlist":
		return models.NavigationState{View: models.ViewShortlist, Role: models.RoleUser}
	}

	return models.NavigationState{View: models.ViewHome, Role: models.RoleUser}
}
