package models

import "fmt"

// Role is the active UI mode. It determines visibility and available
// actions; it is not a security boundary.
type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// ParseRole converts a raw string to a Role, returning an error for
// unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleUser, RoleProvider, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// View identifies one of the application's top-level screens.
type View string

const (
	ViewHome      View = "home"
	ViewListings  View = "listings"
	ViewProfile   View = "profile"
	ViewShortlist View = "shortlist"
	ViewDashboard View = "dashboard"
)

// ParseView converts a raw string to a View, returning an error for
// unknown values.
func ParseView(s string) (View, error) {
	v := View(s)
	switch v {
	case ViewHome, ViewListings, ViewProfile, ViewShortlist, ViewDashboard:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Availability is a provider's live presence status.
type Availability string

const (
	StatusAvailable Availability = "Available"
	StatusBusy      Availability = "Busy"
	StatusOffline   Availability = "Offline"
)

// ParseAvailability converts a raw string to an Availability, returning an
// error for unknown values.
func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	switch a {
	case StatusAvailable, StatusBusy, StatusOffline:
		return a, nil
	}
	return "", fmt.Errorf("unknown availability status %q", s)
}

// Theme is the persisted presentation preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme converts a raw string to a Theme, returning an error for
// unknown values.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	switch t {
	case ThemeLight, ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Categories is the closed set of service categories.
var Categories = []string{
	"Plumbing",
	"Electrical",
	"Tutoring",
	"Mechanic",
	"Home Maintenance",
	"Gardening",
	"Cleaning",
	"Moving",
	"Pet Care",
	"Beauty",
	"Wellness",
	"Appliance Repair",
	"AC Repair",
}

// ValidCategory reports whether s is one of the closed category set.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Review is a single customer review. Reviews are immutable once created.
type Review struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// ServiceProvider is a catalog entry for a bookable service professional.
// JSON tags use camelCase so persisted payloads match the original
// browser-profile data.
type ServiceProvider struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Category        string       `json:"category"`
	Location        string       `json:"location"`
	Availability    Availability `json:"availability"`
	Rating          float64      `json:"rating"`
	ReviewsCount    int          `json:"reviewsCount"`
	Reviews         []Review     `json:"reviews"`
	Price           string       `json:"price"`
	Avatar          string       `json:"avatar"`
	Lat             float64      `json:"lat"`
	Lng             float64      `json:"lng"`
	Description     string       `json:"description"`
	LongBio         string       `json:"longBio"`
	Skills          []string     `json:"skills"`
	YearsExperience int          `json:"yearsExperience"`
	ResponseTime    string       `json:"responseTime"`
	Verified        bool         `json:"verified"`
	RepeatCustomers int          `json:"repeatCustomers"`
	Certifications  []string     `json:"certifications"`
	Equipment       []string     `json:"equipment"`
	CompletedJobs   int          `json:"completedJobs"`
	IsRejected      bool         `json:"isRejected,omitempty"`
	Images          []string     `json:"images,omitempty"`
}

// FilterState is the active filter predicate over the catalog. An empty
// field means "no constraint", never "match empty".
type FilterState struct {
	Search       string `json:"search"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
}

// NavigationState is the current view/role/selection triple. View "profile"
// implies ProviderID resolves to an existing, non-rejected catalog record.
type NavigationState struct {
	View       View   `json:"view"`
	Role       Role   `json:"role"`
	ProviderID string `json:"providerId,omitempty"`
}

// Request types

type NavigateRequest struct {
	View       string `json:"view"`
	ProviderID string `json:"provider_id"`
}

type SwitchRoleRequest struct {
	Role string `json:"role"`
}

type PathChangedRequest struct {
	Path string `json:"path"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

type SetAvailabilityRequest struct {
	Availability string `json:"availability"`
}

type SetDescriptionRequest struct {
	Description string `json:"description"`
}

type AddReviewRequest struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Response types

type StateSnapshot struct {
	Navigation    NavigationState `json:"navigation"`
	Transitioning bool            `json:"transitioning"`
	Path          string          `json:"path"`
	Filters       FilterState     `json:"filters"`
	Theme         Theme           `json:"theme"`
	Shortlist     []string        `json:"shortlist"`
}

type ToggleShortlistResponse struct {
	ProviderID  string `json:"provider_id"`
	Shortlisted bool   `json:"shortlisted"`
}

type DashboardStats struct {
	Active   int `json:"active"`
	Rejected int `json:"rejected"`
	Verified int `json:"verified"`
	Pending  int `json:"pending"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
