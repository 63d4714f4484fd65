package catalog

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Sort orders accepted by the catalog query.
const (
	SortRatingDesc   = "rating_desc"
	SortPriceAsc     = "price_asc"
	SortPriceDesc    = "price_desc"
	SortDiscountDesc = "discount_desc"
)

// Availability facet values.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// RawSelections is the untrusted facet input as parsed off the request.
// Values are validated here, at the normalizer boundary, rather than trusted
// downstream.
type RawSelections struct {
	PriceMin     string
	PriceMax     string
	Rating       string // "lo-hi" token, e.g. "4-5"; empty means unbounded
	DiscountMin  string
	DiscountMax  string
	Availability string // "in_stock" | "out_of_stock"; empty means both
	Attributes   map[string][]string
	Sort         string
	Page         int
	PageSize     int
}

// FilterCriteria is the canonical, transient query criteria object. Created
// fresh per request and never persisted beyond the listing session state.
type FilterCriteria struct {
	CategoryScope map[uuid.UUID]struct{}         `json:"category_scope"`
	PriceMin      *float64                       `json:"price_min,omitempty"`
	PriceMax      *float64                       `json:"price_max,omitempty"`
	RatingLo      *float64                       `json:"rating_lo,omitempty"`
	RatingHi      *float64                       `json:"rating_hi,omitempty"`
	DiscountLo    float64                        `json:"discount_lo"`
	DiscountHi    float64                        `json:"discount_hi"`
	Availability  string                         `json:"availability,omitempty"`
	Attributes    map[string]map[string]struct{} `json:"attributes,omitempty"`
	Sort          string                         `json:"sort"`
	Page          int                            `json:"page"`
	PageSize      int                            `json:"page_size"`
}

// Normalize turns raw user selections plus a resolved category scope into
// canonical criteria. Unparsable numeric tokens are treated as absent, the
// discount range defaults to the unbounded [0,100], and attribute value sets
// are deduplicated with empty names and values dropped.
func Normalize(raw RawSelections, scope map[uuid.UUID]struct{}) FilterCriteria {
	c := FilterCriteria{
		CategoryScope: scope,
		DiscountLo:    0,
		DiscountHi:    100,
		Availability:  normalizeAvailability(raw.Availability),
		Sort:          normalizeSort(raw.Sort),
		Page:          raw.Page,
		PageSize:      raw.PageSize,
	}

	c.PriceMin = parseOptionalFloat(raw.PriceMin)
	c.PriceMax = parseOptionalFloat(raw.PriceMax)
	c.RatingLo, c.RatingHi = parseRatingToken(raw.Rating)

	if lo := parseOptionalFloat(raw.DiscountMin); lo != nil {
		c.DiscountLo = *lo
	}
	if hi := parseOptionalFloat(raw.DiscountMax); hi != nil {
		c.DiscountHi = *hi
	}

	if len(raw.Attributes) > 0 {
		c.Attributes = make(map[string]map[string]struct{}, len(raw.Attributes))
		for name, values := range raw.Attributes {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			set := make(map[string]struct{}, len(values))
			for _, v := range values {
				v = strings.TrimSpace(v)
				if v != "" {
					set[v] = struct{}{}
				}
			}
			if len(set) > 0 {
				c.Attributes[name] = set
			}
		}
		if len(c.Attributes) == 0 {
			c.Attributes = nil
		}
	}

	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 || c.PageSize > MaxPageSize {
		c.PageSize = DefaultPageSize
	}

	return c
}

// ResetPageIfChanged enforces the pagination side-effect ordering: changing
// the category scope, any facet, or the sort resets page to 1; a page-only
// change leaves every other field untouched. Stale pagination across a new
// result set is a correctness bug, so the comparison covers everything
// except the page itself.
func (c *FilterCriteria) ResetPageIfChanged(prev *FilterCriteria) {
	if prev == nil {
		return
	}
	if !c.sameResultSet(prev) {
		c.Page = 1
	}
}

func (c *FilterCriteria) sameResultSet(prev *FilterCriteria) bool {
	if c.Sort != prev.Sort || c.PageSize != prev.PageSize {
		return false
	}
	if !sameFloatPtr(c.PriceMin, prev.PriceMin) || !sameFloatPtr(c.PriceMax, prev.PriceMax) {
		return false
	}
	if !sameFloatPtr(c.RatingLo, prev.RatingLo) || !sameFloatPtr(c.RatingHi, prev.RatingHi) {
		return false
	}
	if c.DiscountLo != prev.DiscountLo || c.DiscountHi != prev.DiscountHi {
		return false
	}
	if c.Availability != prev.Availability {
		return false
	}
	if !sameIDSet(c.CategoryScope, prev.CategoryScope) {
		return false
	}
	if len(c.Attributes) != len(prev.Attributes) {
		return false
	}
	for name, values := range c.Attributes {
		prevValues, ok := prev.Attributes[name]
		if !ok || len(values) != len(prevValues) {
			return false
		}
		for v := range values {
			if _, ok := prevValues[v]; !ok {
				return false
			}
		}
	}
	return true
}

// normalizeAvailability canonicalizes the stock facet token. Both snake_case
// and camelCase spellings are accepted; anything else means no stock filter.
func normalizeAvailability(token string) string {
	switch token {
	case AvailabilityInStock, "inStock":
		return AvailabilityInStock
	case AvailabilityOutOfStock, "outOfStock":
		return AvailabilityOutOfStock
	default:
		return ""
	}
}

func normalizeSort(sort string) string {
	switch sort {
	case SortPriceAsc, SortPriceDesc, SortDiscountDesc:
		return sort
	default:
		return SortRatingDesc
	}
}

// parseRatingToken splits a "lo-hi" token into numeric bounds. An empty or
// malformed token leaves the rating unbounded.
func parseRatingToken(token string) (lo, hi *float64) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return nil, nil
	}
	lo = parseOptionalFloat(parts[0])
	hi = parseOptionalFloat(parts[1])
	if lo == nil || hi == nil {
		return nil, nil
	}
	return lo, hi
}

func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func sameFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameIDSet(a, b map[uuid.UUID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
