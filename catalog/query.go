package catalog

import (
	"context"
	"sort"

	"github.com/DeaforK/electronics-store-sub002/models"
)

// QueryResult is one page of matching variation records plus the total match
// count across all pages.
type QueryResult struct {
	Items []models.Variation
	Total int
}

// QueryEngine applies normalized criteria to the variation store: filter,
// sort, paginate. The store only restricts by category scope; every facet
// semantic lives here.
type QueryEngine struct {
	Variations VariationStore
}

// Query returns the requested page of variations matching the criteria and
// the unpaginated total. Malformed criteria (an inverted price, rating or
// discount range) simply match nothing; that is policy, not an error.
func (e *QueryEngine) Query(ctx context.Context, criteria FilterCriteria) (QueryResult, error) {
	candidates, err := e.Variations.ListByCategoryScope(ctx, criteria.CategoryScope)
	if err != nil {
		return QueryResult{}, err
	}

	matched := make([]models.Variation, 0, len(candidates))
	for _, v := range candidates {
		if Matches(v, criteria) {
			matched = append(matched, v)
		}
	}

	sortVariations(matched, criteria.Sort)

	total := len(matched)
	page := criteria.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * criteria.PageSize
	if offset >= total {
		return QueryResult{Items: []models.Variation{}, Total: total}, nil
	}
	end := offset + criteria.PageSize
	if end > total {
		end = total
	}
	return QueryResult{Items: matched[offset:end], Total: total}, nil
}

// Matches reports whether a single variation satisfies every facet of the
// criteria. A variation missing an attribute named by a filter fails that
// filter.
func Matches(v models.Variation, c FilterCriteria) bool {
	if v.Product == nil {
		return false
	}
	if len(c.CategoryScope) > 0 {
		if _, ok := c.CategoryScope[v.Product.CategoryID]; !ok {
			return false
		}
	}
	if c.PriceMin != nil && v.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && v.Price > *c.PriceMax {
		return false
	}
	if v.Discount < c.DiscountLo || v.Discount > c.DiscountHi {
		return false
	}
	switch c.Availability {
	case AvailabilityInStock:
		if !v.InStock() {
			return false
		}
	case AvailabilityOutOfStock:
		if v.InStock() {
			return false
		}
	}
	if c.RatingLo != nil && v.Product.Rating < *c.RatingLo {
		return false
	}
	if c.RatingHi != nil && v.Product.Rating > *c.RatingHi {
		return false
	}
	for name, accepted := range c.Attributes {
		value, ok := v.Attributes[name]
		if !ok {
			return false
		}
		if _, ok := accepted[value]; !ok {
			return false
		}
	}
	return true
}

// sortVariations orders matches by the criteria's sort key. Ties keep the
// store's input order (stable sort, no secondary key).
func sortVariations(items []models.Variation, sortOrder string) {
	switch sortOrder {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case SortDiscountDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Discount > items[j].Discount
		})
	default: // rating_desc
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Product.Rating > items[j].Product.Rating
		})
	}
}
