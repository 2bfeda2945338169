// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nav

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aniketgond098/servizoapp/catalog"
	"github.com/aniketgond098/servizoapp/models"
	"github.com/aniketgond098/servizoapp/routes"
)

// DefaultTransitionDelay drives the perceived-latency loading indicator. It
// is not a retry or backoff interval.
const DefaultTransitionDelay = 800 * time.Millisecond

// History receives outbound URL writes. The browser-facing layer implements
// it; tests substitute a recorder.
type History interface {
	Push(path string)
}

// Recorder is a History that remembers every pushed path. It doubles as the
// in-process address bar: Current is what the presentation layer should
// show.
type Recorder struct {
	mu      sync.Mutex
	current string
	entries []string
}

// NewRecorder returns a Recorder positioned at the given path.
func NewRecorder(initial string) *Recorder {
	return &Recorder{current: initial}
}

// Push records a new current path.
func (r *Recorder) Push(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = path
	r.entries = append(r.entries, path)
}

// Current returns the most recently pushed path.
func (r *Recorder) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Entries returns all pushed paths in order.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Controller is the navigation state machine, either idle or
// transitioning. A request pushes the URL immediately and settles view and
// selection after a fixed delay. The token check discards completions
// superseded by a newer request.
type Controller struct {
	mu            sync.Mutex
	state         models.NavigationState
	transitioning bool
	token         uint64
	delay         time.Duration
	catalog       *catalog.Store
	history       History
	onSettled     func()
}

// New builds a Controller at the given initial state. A delay of zero uses
// DefaultTransitionDelay.
func New(initial models.NavigationState, cat *catalog.Store, history History, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultTransitionDelay
	}
	return &Controller{state: initial, catalog: cat, history: history, delay: delay}
}

// OnSettled registers a hook fired after a transition completes. The
// presentation layer uses it to reset scroll position.
func (c *Controller) OnSettled(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSettled = fn
}

// Snapshot returns the current navigation state and whether a transition is
// in flight.
func (c *Controller) Snapshot() (models.NavigationState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.transitioning
}

// NavigateTo requests a view transition. The URL updates synchronously with
// the current role and the target view; view and selection settle after the
// transition delay. A request issued while transitioning restarts the timer
// with the new target. No queueing.
func (c *Controller) NavigateTo(view models.View, providerID string) {
	c.mu.Lock()
	view, providerID = c.resolveLocked(view, providerID)
	tok, delay := c.beginLocked(view, c.state.Role, providerID)
	c.mu.Unlock()

	time.AfterFunc(delay, func() { c.complete(tok, view, providerID) })
}

// SwitchRole sets the role immediately (not deferred), then transitions to
// that role's canonical landing view: dashboard for provider and admin,
// home for user. The landing URL is encoded with the new role, so any open
// profile segment is dropped.
func (c *Controller) SwitchRole(role models.Role) {
	landing := models.ViewHome
	if role == models.RoleProvider || role == models.RoleAdmin {
		landing = models.ViewDashboard
	}

	c.mu.Lock()
	c.state.Role = role
	tok, delay := c.beginLocked(landing, role, "")
	c.mu.Unlock()

	slog.Info("role switched", "role", role, "landing", landing)
	time.AfterFunc(delay, func() { c.complete(tok, landing, "") })
}

// HandlePathChanged consumes an inbound browser history event. The browser
// already moved, so the URL is not re-written and no loading state runs:
// role, view, and selection are set synchronously. Any in-flight transition
// is abandoned via the token bump.
func (c *Controller) HandlePathChanged(path string) {
	decoded := routes.Decode(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	view, providerID := c.resolveLocked(decoded.View, decoded.ProviderID)
	c.token++
	c.state = models.NavigationState{View: view, Role: decoded.Role, ProviderID: providerID}
	c.transitioning = false
}

// Resolve enforces the profile invariant: the selected provider must exist
// and not be rejected, otherwise the target falls back to the listings view
// with no selection. Non-profile views never carry a selection.
func Resolve(cat *catalog.Store, view models.View, providerID string) (models.View, string) {
	if view != models.ViewProfile {
		return view, ""
	}
	if p, ok := cat.Get(providerID); ok && !p.IsRejected {
		return view, providerID
	}
	slog.Warn("profile target unresolved, falling back to listings", "provider_id", providerID)
	return models.ViewListings, ""
}

func (c *Controller) resolveLocked(view models.View, providerID string) (models.View, string) {
	return Resolve(c.catalog, view, providerID)
}

func (c *Controller) beginLocked(view models.View, role models.Role, providerID string) (uint64, time.Duration) {
	c.history.Push(routes.Encode(view, role, providerID))
	c.transitioning = true
	c.token++
	return c.token, c.delay
}

func (c *Controller) complete(tok uint64, view models.View, providerID string) {
	c.mu.Lock()
	if tok != c.token {
		// Superseded by a newer navigation or a history event.
		c.mu.Unlock()
		return
	}
	c.state.View = view
	c.state.ProviderID = providerID
	c.transitioning = false
	settled := c.onSettled
	c.mu.Unlock()

	if settled != nil {
		settled()
	}
}
