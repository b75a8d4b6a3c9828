package routereport

import "strings"

// Default presentation settings
const (
	DefaultPreviewBaseURL = "http://localhost:5173"
	DefaultRoutesDir      = "src/routes"
)

// Snapshot is the set of template values describing what was generated.
// It is built once before reporting and never modified afterwards.
type Snapshot struct {
	RouteName      string `json:"name"`         // "grades"
	DisplayName    string `json:"display_name"` // "Grade Overview"
	RouteType      string `json:"type"`         // free-form page kind: "list", "detail", ...
	IncludeFilters bool   `json:"-"`            // Subject/Topic/Subtopic filters
	IncludeTable   bool   `json:"-"`            // sortable table instead of cards
	IncludeModal   bool   `json:"-"`            // modal dialog
}

// Options holds presentation settings. Zero values select the defaults.
type Options struct {
	PreviewBaseURL string // "http://localhost:5173"
	RoutesDir      string // "src/routes"
}

// withDefaults fills empty fields and strips trailing slashes so paths can be
// joined with a single "/".
func (o Options) withDefaults() Options {
	o.PreviewBaseURL = strings.TrimRight(strings.TrimSpace(o.PreviewBaseURL), "/")
	if o.PreviewBaseURL == "" {
		o.PreviewBaseURL = DefaultPreviewBaseURL
	}
	o.RoutesDir = strings.TrimRight(strings.TrimSpace(o.RoutesDir), "/")
	if o.RoutesDir == "" {
		o.RoutesDir = DefaultRoutesDir
	}
	return o
}

// PreviewURL returns the local development address of the generated route.
func (o Options) PreviewURL(routeName string) string {
	return o.withDefaults().PreviewBaseURL + "/" + routeName
}

// ParseFlag interprets a template feature flag such as "yes" or "no".
// Any value that is not recognised as true, including unsubstituted
// placeholders, is false.
func ParseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "on":
		return true
	default:
		return false
	}
}
