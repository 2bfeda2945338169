// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filter

import (
	"math"
	"sort"
	"strings"

	"github.com/aniketgond098/servizoapp/models"
)

// Visible computes the role-gated, filtered subset of the catalog. It is a
// pure function: deterministic, no side effects, safe to recompute on every
// state change. Output preserves the input's order; no ranking is applied.
//
// Predicates are conjunctive. Text comparisons are case-insensitive. An
// empty filter field means no constraint.
func Visible(providers []models.ServiceProvider, filters models.FilterState, role models.Role) []models.ServiceProvider {
	search := strings.ToLower(filters.Search)

	out := make([]models.ServiceProvider, 0, len(providers))
	for _, p := range providers {
		// Role gate: the user role never sees rejected listings. Provider
		// and admin see the full catalog.
		if role == models.RoleUser && p.IsRejected {
			continue
		}
		if !matchesSearch(p, search) {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.Location != "" && !strings.Contains(p.Location, filters.Location) {
			continue
		}
		if filters.Availability != "" && string(p.Availability) != filters.Availability {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p models.ServiceProvider, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), search) {
		return true
	}
	for _, skill := range p.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

const earthRadiusKm = 6371

// Distance returns the haversine distance in kilometres between two
// coordinates.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLng := (lng2 - lng1) * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*(math.Pi/180))*math.Cos(lat2*(math.Pi/180))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * (2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)))
}

// Nearest returns a copy of providers sorted by distance from the given
// coordinate, nearest first. It backs the map widget's "near me"
// affordance only; the default catalog ordering never uses it.
func Nearest(providers []models.ServiceProvider, lat, lng float64) []models.ServiceProvider {
	out := make([]models.ServiceProvider, len(providers))
	copy(out, providers)
	sort.SliceStable(out, func(i, j int) bool {
		return Distance(lat, lng, out[i].Lat, out[i].Lng) < Distance(lat, lng, out[j].Lat, out[j].Lng)
	})
	return out
}
