package templates

// Option is one dropdown entry.
type Option struct {
	Label string
	Value string
}

// Selector is a dropdown that re-fetches Endpoint whenever its value changes.
type Selector struct {
	ID          string
	Name        string
	Placeholder string
	Endpoint    string
	Options     []Option
}

// LookupPanel binds one selector to the output region its endpoint fills.
type LookupPanel struct {
	Selector Selector
	OutputID string
}

// MapTab is a tab holding a single choropleth. Figure is marshalled to JSON
// and drawn in the browser.
type MapTab struct {
	ID     string
	Label  string
	Figure any
}

type DashboardPageData struct {
	Title   string
	Tabs    []MapTab
	Lookups []LookupPanel
}

// A 404 from a lookup still carries the "not found" fragment, so htmx swaps it
// instead of treating it as an error.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"404","swap":true,"error":false},{"code":"[45]..","swap":false,"error":true}]}`
