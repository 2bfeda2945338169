// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
application-state engine.

# Domain Types

  - ServiceProvider: a catalog entry with descriptive attributes, live
    availability, moderation flags, and embedded reviews
  - Review: immutable customer review (1-5 rating)
  - FilterState: the active filter predicate (empty field = no constraint)
  - NavigationState: current view, role, and optional selected provider

# Enums

String-typed enums with ParseX validators that reject unknown values:

	Role:         user | provider | admin
	View:         home | listings | profile | shortlist | dashboard
	Availability: Available | Busy | Offline
	Theme:        light | dark

Categories is the closed 13-value category set; ValidCategory checks
membership.

# Request Types

NavigateRequest, SwitchRoleRequest, PathChangedRequest, SearchRequest,
SetThemeRequest, SetAvailabilityRequest, SetDescriptionRequest,
AddReviewRequest.

# Response Types

StateSnapshot (full read-only view of the engine), ToggleShortlistResponse,
DashboardStats, ErrorResponse.
*/
package models
