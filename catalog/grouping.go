package catalog

import (
	"math"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

// Group aggregates a flat, already-sorted variation page into per-product
// view models. Output order is the order of first occurrence of each product
// id in items; groups are never re-sorted.
//
// MinPrice and MaxDiscount are each computed independently across the group,
// so they need not come from the same variation. The headline FinalPrice is
// the cheapest variation's price with the group's best discount applied.
func Group(items []models.Variation) []models.GroupedProductView {
	grouped := make([]models.GroupedProductView, 0)
	index := make(map[uuid.UUID]int)

	for _, v := range items {
		pos, seen := index[v.ProductID]
		if !seen {
			view := models.GroupedProductView{
				ProductID:   v.ProductID,
				MinPrice:    v.Price,
				MaxDiscount: math.Max(0, v.Discount),
			}
			if v.Product != nil {
				view.Name = v.Product.Name
				view.Image = v.Product.PrimaryImage()
				view.Status = v.Product.Status
				view.Rating = v.Product.Rating
				view.OnSale = v.Product.OnSale
				// Promotion references come from the first variation seen for
				// this product; later variations never merge theirs in.
				view.PromotionIDs = v.Product.ApplicablePromotionIDs
			}
			view.Variations = []models.Variation{v}
			index[v.ProductID] = len(grouped)
			grouped = append(grouped, view)
			continue
		}

		view := &grouped[pos]
		view.Variations = append(view.Variations, v)
		if v.Price < view.MinPrice {
			view.MinPrice = v.Price
		}
		if v.Discount > view.MaxDiscount {
			view.MaxDiscount = v.Discount
		}
	}

	for i := range grouped {
		grouped[i].FinalPrice = finalPrice(grouped[i].MinPrice, grouped[i].MaxDiscount)
	}

	return grouped
}

// finalPrice applies the best discount percent to the lowest price, rounded
// to 2 decimal places. With no discount the final price equals the min price.
func finalPrice(minPrice, maxDiscount float64) float64 {
	if maxDiscount <= 0 {
		return minPrice
	}
	return round2(minPrice * (1 - maxDiscount/100))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
