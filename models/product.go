package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// UUIDList is a JSONB-backed ordered list of uuids. The order is meaningful:
// promotion badges are resolved by first-in-list precedence.
type UUIDList []uuid.UUID

func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = make(UUIDList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan UUIDList")
	}
	return json.Unmarshal(bytes, l)
}

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is the catalog-management side of a sellable item. Purchasable
// price/stock lives on its Variations; the product row carries the shared
// presentation fields and the promotion references.
type Product struct {
	ID                     uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey"`
	Name                   string                     `json:"name" gorm:"not null;index"`
	Description            string                     `json:"description"`
	Brand                  string                     `json:"brand" gorm:"index"`
	Images                 datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Status                 string                     `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	CategoryID             uuid.UUID                  `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	Category               *Category                  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	OnSale                 bool                       `json:"on_sale" gorm:"default:false;index"`
	ApplicablePromotionIDs UUIDList                   `json:"applicable_promotion_ids" gorm:"type:jsonb;not null;default:'[]'"`
	Rating                 float64                    `json:"rating" gorm:"type:numeric(3,2);default:0"`
	RatingCount            int                        `json:"rating_count" gorm:"default:0"`
	Views                  int                        `json:"views" gorm:"default:0"`
	CreatedAt              time.Time                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// PrimaryImage returns the first image URL, or "" when the product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
