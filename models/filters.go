package models

// FacetMetadata is everything the storefront filter sidebar needs for the
// current category or promotion scope.
type FacetMetadata struct {
	Sections     map[string]map[string][]string `json:"sections"`
	PriceRange   PriceRange                     `json:"price_range"`
	Availability []FilterOption                 `json:"availability"`
	SortOptions  []FilterOption                 `json:"sort_options"`
}

// FilterOption is a single selectable filter value.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count,omitempty"`
}

// PriceRange is the min and max variation price within the current scope.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
