// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package state

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aniketgond098/servizoapp/catalog"
	"github.com/aniketgond098/servizoapp/filter"
	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/nav"
	"github.com/aniketgond098/servizoapp/persist"
	"github.com/aniketgond098/servizoapp/routes"
)

// ErrNotFound is returned when a provider id has no catalog record.
var ErrNotFound = errors.New("provider not found")

// ErrRoleDenied is returned when the active role does not permit an
// operation. The role gate shapes the UI, it is not a security boundary.
var ErrRoleDenied = errors.New("active role does not permit this operation")

// ValidationError indicates a request carried a value outside the domain.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Controller owns the whole application state: theme, role, shortlist,
// filters, the provider catalog, and the navigation machine. It is
// constructed once at boot, hydrates from durable storage, and writes every
// mutation back through exactly one save. Save failures are logged and
// swallowed: the in-memory state is authoritative for the session.
type Controller struct {
	store   *persist.Store
	catalog *catalog.Store
	nav     *nav.Controller
	history *nav.Recorder
	selfID  string

	mu        sync.Mutex // guards the fields below
	filters   models.FilterState
	theme     models.Theme
	shortlist []string
	memo      visibleMemo
}

// visibleMemo caches the last filtered projection. A hit requires the same
// catalog version, filters, and role that produced it.
type visibleMemo struct {
	valid    bool
	version  uint64
	filters  models.FilterState
	role     models.Role
	visible  []models.ServiceProvider
}

// New hydrates a Controller from durable storage and positions it at the
// boot path. A role encoded in the path (/admin, /provider) wins over the
// persisted role; any other path keeps the persisted role. An unresolvable
// profile path degrades to listings before the first snapshot is taken.
// The recorded URL stays wherever the browser booted: nothing is pushed
// until the first navigation.
func New(store *persist.Store, bootPath string, transitionDelay time.Duration, selfProviderID string) *Controller {
	cat := catalog.NewStore(store.LoadProviders(catalog.Seed()))

	if bootPath == "" {
		bootPath = "/"
	}
	initial := routes.Decode(bootPath)
	if initial.Role == models.RoleUser {
		initial.Role = store.LoadRole()
	}
	initial.View, initial.ProviderID = nav.Resolve(cat, initial.View, initial.ProviderID)

	history := nav.NewRecorder(bootPath)

	c := &Controller{
		store:     store,
		catalog:   cat,
		nav:       nav.New(initial, cat, history, transitionDelay),
		history:   history,
		selfID:    selfProviderID,
		theme:     store.LoadTheme(),
		shortlist: store.LoadShortlist(),
	}
	slog.Info("application state hydrated",
		"path", history.Current(), "role", initial.Role, "theme", c.theme,
		"shortlist", len(c.shortlist), "providers", cat.Len())
	return c
}

// Snapshot returns the full client-facing state in one read.
func (c *Controller) Snapshot() models.StateSnapshot {
	navState, transitioning := c.nav.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()
	return models.StateSnapshot{
		Navigation:    navState,
		Transitioning: transitioning,
		Path:          c.history.Current(),
		Filters:       c.filters,
		Theme:         c.theme,
		Shortlist:     append([]string{}, c.shortlist...),
	}
}

// Navigation exposes the navigation machine for the transport layer.
func (c *Controller) Navigation() *nav.Controller {
	return c.nav
}

// CurrentPath returns the most recently pushed URL path.
func (c *Controller) CurrentPath() string {
	return c.history.Current()
}

// Role returns the active role.
func (c *Controller) Role() models.Role {
	navState, _ := c.nav.Snapshot()
	return navState.Role
}

// SetFilters replaces the active filter predicate.
func (c *Controller) SetFilters(f models.FilterState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
}

// Filters returns the active filter predicate.
func (c *Controller) Filters() models.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetTheme sets and persists the presentation theme.
func (c *Controller) SetTheme(theme models.Theme) {
	c.mu.Lock()
	c.theme = theme
	c.mu.Unlock()

	if err := c.store.SaveTheme(theme); err != nil {
		slog.Warn("theme not persisted", "error", err)
	}
}

// Theme returns the active theme.
func (c *Controller) Theme() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// VisibleProviders returns the role-gated, filtered catalog projection in
// insertion order. The result is memoized against the catalog version,
// filters, and role that produced it, so repeated reads between mutations
// do not re-filter.
func (c *Controller) VisibleProviders() []models.ServiceProvider {
	role := c.Role()
	version := c.catalog.Version()

	c.mu.Lock()
	if c.memo.valid && c.memo.version == version && c.memo.filters == c.filters && c.memo.role == role {
		out := c.memo.visible
		c.mu.Unlock()
		return out
	}
	filters := c.filters
	c.mu.Unlock()

	visible := filter.Visible(c.catalog.All(), filters, role)

	c.mu.Lock()
	c.memo = visibleMemo{valid: true, version: version, filters: filters, role: role, visible: visible}
	c.mu.Unlock()
	return visible
}

// Provider returns one catalog record by id.
func (c *Controller) Provider(id string) (models.ServiceProvider, bool) {
	return c.catalog.Get(id)
}

// NearbyProviders returns the role-gated catalog sorted by distance from
// the given point, nearest first.
func (c *Controller) NearbyProviders(lat, lng float64) []models.ServiceProvider {
	visible := filter.Visible(c.catalog.All(), models.FilterState{}, c.Role())
	return filter.Nearest(visible, lat, lng)
}

// NavigateTo requests a view transition through the navigation machine.
func (c *Controller) NavigateTo(view models.View, providerID string) {
	c.nav.NavigateTo(view, providerID)
}

// SwitchRole changes the active role, persists it, and lands on that
// role's canonical view. The landing transition drops any open profile
// context.
func (c *Controller) SwitchRole(role models.Role) {
	c.nav.SwitchRole(role)
	if err := c.store.SaveRole(role); err != nil {
		slog.Warn("role not persisted", "error", err)
	}
}

// HandlePathChanged consumes an inbound history event. The role encoded in
// the path becomes the active role, so it is persisted like a switch.
func (c *Controller) HandlePathChanged(path string) {
	c.nav.HandlePathChanged(path)
	navState, _ := c.nav.Snapshot()
	if err := c.store.SaveRole(navState.Role); err != nil {
		slog.Warn("role not persisted", "error", err)
	}
}

// Search replaces the search term, keeping the other predicates, and
// navigates to listings. This is the home-screen search box behavior.
func (c *Controller) Search(query string) {
	c.mu.Lock()
	c.filters.Search = query
	c.mu.Unlock()
	c.nav.NavigateTo(models.ViewListings, "")
}

// IsShortlisted reports shortlist membership.
func (c *Controller) IsShortlisted(providerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shortlistedLocked(providerID)
}

func (c *Controller) shortlistedLocked(providerID string) bool {
	for _, id := range c.shortlist {
		if id == providerID {
			return true
		}
	}
	return false
}

// ToggleShortlist flips shortlist membership for a provider and persists
// the result. It reports the new membership. Unknown ids return
// ErrNotFound rather than accreting dangling entries.
func (c *Controller) ToggleShortlist(providerID string) (bool, error) {
	if _, ok := c.catalog.Get(providerID); !ok {
		return false, ErrNotFound
	}

	c.mu.Lock()
	if c.shortlistedLocked(providerID) {
		kept := make([]string, 0, len(c.shortlist)-1)
		for _, id := range c.shortlist {
			if id != providerID {
				kept = append(kept, id)
			}
		}
		c.shortlist = kept
	} else {
		c.shortlist = append(c.shortlist, providerID)
	}
	member := c.shortlistedLocked(providerID)
	snapshot := append([]string{}, c.shortlist...)
	c.mu.Unlock()

	if err := c.store.SaveShortlist(snapshot); err != nil {
		slog.Warn("shortlist not persisted", "error", err)
	}
	return member, nil
}

// Shortlist returns the shortlist ids in membership order.
func (c *Controller) Shortlist() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.shortlist...)
}

// ShortlistProviders resolves the shortlist to full records in membership
// order. Ids whose record is gone or rejected are skipped, not removed:
// a restored provider reappears without re-shortlisting.
func (c *Controller) ShortlistProviders() []models.ServiceProvider {
	ids := c.Shortlist()
	out := make([]models.ServiceProvider, 0, len(ids))
	for _, id := range ids {
		p, ok := c.catalog.Get(id)
		if !ok || p.IsRejected {
			continue
		}
		out = append(out, p)
	}
	return out
}

// UpdateProvider replaces a catalog record wholesale and persists the
// catalog. The record's category and availability must be in-domain.
func (c *Controller) UpdateProvider(p models.ServiceProvider) error {
	if !models.ValidCategory(p.Category) {
		return &ValidationError{Msg: fmt.Sprintf("unknown category %q", p.Category)}
	}
	if _, err := models.ParseAvailability(string(p.Availability)); err != nil {
		return &ValidationError{Msg: err.Error()}
	}
	if !c.catalog.Update(p) {
		return ErrNotFound
	}
	c.persistCatalog()
	return nil
}

// SetVerified toggles a provider's verified badge. Admin only.
func (c *Controller) SetVerified(providerID string, verified bool) error {
	return c.moderate(providerID, func(p *models.ServiceProvider) {
		p.Verified = verified
	})
}

// Reject hides a provider from the user-facing catalog. Admin only. The
// record stays in the catalog so a restore is a flag flip, not a re-entry.
// The verified badge is independent and may go stale on a rejected record.
func (c *Controller) Reject(providerID string) error {
	return c.moderate(providerID, func(p *models.ServiceProvider) {
		p.IsRejected = true
	})
}

// Restore clears a provider's rejection. Admin only.
func (c *Controller) Restore(providerID string) error {
	return c.moderate(providerID, func(p *models.ServiceProvider) {
		p.IsRejected = false
	})
}

func (c *Controller) moderate(providerID string, mutate func(*models.ServiceProvider)) error {
	if c.Role() != models.RoleAdmin {
		return ErrRoleDenied
	}
	p, ok := c.catalog.Get(providerID)
	if !ok {
		return ErrNotFound
	}
	mutate(&p)
	c.catalog.Update(p)
	c.persistCatalog()
	slog.Info("provider moderated", "provider_id", providerID, "rejected", p.IsRejected, "verified", p.Verified)
	return nil
}

// SetAvailability updates the dashboard owner's availability status.
// Provider role only.
func (c *Controller) SetAvailability(status models.Availability) error {
	return c.updateSelf(func(p *models.ServiceProvider) {
		p.Availability = status
	})
}

// SetDescription updates the dashboard owner's short description.
// Provider role only.
func (c *Controller) SetDescription(text string) error {
	return c.updateSelf(func(p *models.ServiceProvider) {
		p.Description = text
	})
}

func (c *Controller) updateSelf(mutate func(*models.ServiceProvider)) error {
	if c.Role() != models.RoleProvider {
		return ErrRoleDenied
	}
	p, ok := c.catalog.Get(c.selfID)
	if !ok {
		return ErrNotFound
	}
	mutate(&p)
	c.catalog.Update(p)
	c.persistCatalog()
	return nil
}

// SelfProvider returns the record the provider dashboard manages.
func (c *Controller) SelfProvider() (models.ServiceProvider, bool) {
	return c.catalog.Get(c.selfID)
}

// AddReview appends a review to a provider and bumps its review count.
// Ratings outside 1..5 are rejected.
func (c *Controller) AddReview(providerID string, req models.AddReviewRequest) (models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return models.Review{}, &ValidationError{Msg: fmt.Sprintf("rating must be between 1 and 5, got %d", req.Rating)}
	}
	if req.User == "" {
		return models.Review{}, &ValidationError{Msg: "review user is required"}
	}

	p, ok := c.catalog.Get(providerID)
	if !ok {
		return models.Review{}, ErrNotFound
	}

	review := models.Review{
		ID:      uuid.NewString(),
		User:    req.User,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    time.Now().Format("2006-01-02"),
	}
	p.Reviews = append(p.Reviews, review)
	p.ReviewsCount = len(p.Reviews)
	c.catalog.Update(p)
	c.persistCatalog()

	slog.Info("review added", "provider_id", providerID, "rating", review.Rating)
	return review, nil
}

// Stats summarizes the catalog for the admin dashboard.
func (c *Controller) Stats() models.DashboardStats {
	var stats models.DashboardStats
	for _, p := range c.catalog.All() {
		if p.IsRejected {
			stats.Rejected++
			continue
		}
		stats.Active++
		if p.Verified {
			stats.Verified++
		} else {
			stats.Pending++
		}
	}
	return stats
}

func (c *Controller) persistCatalog() {
	if err := c.store.SaveProviders(c.catalog.All()); err != nil {
		slog.Warn("provider catalog not persisted", "error", err)
	}
}
