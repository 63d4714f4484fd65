package catalog

import (
	"context"
	"log"
	"time"

	"github.com/DeaforK/electronics-store-sub002/models"
)

// PromotionResolver decides which promotion badge, if any, a grouped product
// displays.
type PromotionResolver struct {
	Promotions PromotionStore
}

// Resolve picks the badge for one grouped product.
//
// On a promotion's own listing page every on-sale product displays that
// page-scope promotion, unconditionally. Off-sale products never display a
// badge regardless of attached references. Otherwise the first applicable
// promotion reference in list order wins; no ranking by discount size is
// applied.
func (r *PromotionResolver) Resolve(ctx context.Context, view *models.GroupedProductView, pageScope *models.Promotion) *models.Promotion {
	if !view.OnSale {
		return nil
	}
	if pageScope != nil {
		return pageScope
	}
	if len(view.PromotionIDs) == 0 {
		return nil
	}

	promo, err := r.Promotions.GetPromotion(ctx, view.PromotionIDs[0])
	if err != nil {
		log.Printf("catalog: promotion %s unresolvable for product %s: %v",
			view.PromotionIDs[0], view.ProductID, err)
		return nil
	}
	return promo
}

// ListActivePromotions returns every currently live promotion the product
// references, in reference-list order. The product detail page shows the full
// list; its first entry matches the badge Resolve picks. Off-sale products
// list nothing, like badges. A store failure degrades to an empty list.
func (r *PromotionResolver) ListActivePromotions(ctx context.Context, view *models.GroupedProductView) []models.Promotion {
	if !view.OnSale || len(view.PromotionIDs) == 0 {
		return nil
	}

	promotions, err := r.Promotions.ListPromotionsForProduct(ctx, view.ProductID)
	if err != nil {
		log.Printf("catalog: promotions unavailable for product %s: %v", view.ProductID, err)
		return nil
	}

	now := time.Now()
	active := make([]models.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.ActiveAt(now) {
			active = append(active, p)
		}
	}
	return active
}
