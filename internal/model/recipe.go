package model

// Recipe is a single search result as returned by the recipe service.
// The JSON tags follow the service wire format.
type Recipe struct {
	Name      string `json:"Name"`
	ImageURL  string `json:"Img"`
	SourceURL string `json:"Url"`
}

// SearchState is a point-in-time snapshot of the search controller handed to
// the view for rendering.
type SearchState struct {
	Query     string
	Results   []Recipe
	Status    SearchStatus
	InFlight  int    // number of unresolved searches
	LastError string // message of the last failed search, empty after a success
}

// HasResults reports whether the snapshot carries at least one recipe
func (s SearchState) HasResults() bool {
	return len(s.Results) > 0
}

// GetDisplayTitle returns the recipe name, falling back to the source URL
func (r Recipe) GetDisplayTitle() string {
	if r.Name != "" {
		return r.Name
	}
	return r.SourceURL
}
