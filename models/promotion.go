package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount types a promotion can apply.
const (
	DiscountTypePercent     = "percent"
	DiscountTypeFixedAmount = "fixed_amount"
)

// Promotion is a marketing campaign a product can reference. The storefront
// only reads promotions and attaches them as badges on grouped products;
// order-time discount math happens in the checkout service.
type Promotion struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string     `json:"name" gorm:"not null"`
	Description    string     `json:"description"`
	DiscountType   string     `json:"discount_type" gorm:"type:varchar(20);not null;check:discount_type IN ('percent', 'fixed_amount')"`
	DiscountValue  float64    `json:"discount_value" gorm:"type:numeric(12,2);not null"`
	MinOrderAmount float64    `json:"min_order_amount" gorm:"type:numeric(12,2);default:0"`
	MaxDiscount    float64    `json:"max_discount" gorm:"type:numeric(12,2);default:0"`
	GiftProductID  *uuid.UUID `json:"gift_product_id" gorm:"type:uuid"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:'Inactive';check:status IN ('Active', 'Inactive')"`
	StartsAt       time.Time  `json:"starts_at"`
	EndsAt         time.Time  `json:"ends_at"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Promotion) TableName() string {
	return "promotions"
}

// ActiveAt reports whether the promotion is live at the given instant.
func (p *Promotion) ActiveAt(t time.Time) bool {
	if p.Status != "Active" {
		return false
	}
	if !p.StartsAt.IsZero() && t.Before(p.StartsAt) {
		return false
	}
	if !p.EndsAt.IsZero() && t.After(p.EndsAt) {
		return false
	}
	return true
}
