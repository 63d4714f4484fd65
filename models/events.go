package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Catalog change events published by the CMS. The storefront consumes them
// only to invalidate its caches.
const (
	EventCategoryChanged  = "category_changed"
	EventProductChanged   = "product_changed"
	EventVariationChanged = "variation_changed"
	EventPromotionChanged = "promotion_changed"
)

// CatalogEvent is the broker message emitted when catalog-management data
// changes.
type CatalogEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	EntityID  uuid.UUID `json:"entity_id"`
}

func (e *CatalogEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
