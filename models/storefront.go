package models

import (
	"github.com/google/uuid"
)

// GroupedProductView is the display-ready aggregate of one product and all of
// its variations that matched the current catalog query. Built once per query
// response and discarded after render.
type GroupedProductView struct {
	ProductID   uuid.UUID   `json:"product_id"`
	Name        string      `json:"name"`
	Image       string      `json:"image"`
	Status      string      `json:"status"`
	Rating      float64     `json:"rating"`
	MinPrice    float64     `json:"min_price"`
	MaxDiscount float64     `json:"max_discount"`
	FinalPrice  float64     `json:"final_price"`
	OnSale      bool        `json:"on_sale"`
	IsFavorite  bool        `json:"is_favorite"`
	Promotion   *Promotion  `json:"promotion,omitempty"`
	Variations  []Variation `json:"variations"`

	// ActivePromotions holds every live referenced promotion in reference
	// order; populated on the product detail page only.
	ActivePromotions []Promotion `json:"active_promotions,omitempty"`

	// PromotionIDs is carried from the first variation's product record seen
	// during grouping; badge resolution picks the first id in list order.
	PromotionIDs UUIDList `json:"-"`
}

// CatalogPage is the response of one storefront catalog query.
type CatalogPage struct {
	GroupedProducts []GroupedProductView `json:"grouped_products"`
	Total           int                  `json:"total"`
	TotalPages      int                  `json:"total_pages"`
	Page            int                  `json:"page"`
	PageSize        int                  `json:"page_size"`
}
