package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributeMap holds a variation's facet attributes (e.g. "Color" → "Black",
// "Storage" → "256GB") as a JSONB column. Keys are attribute names, values the
// selected option for this SKU.
type AttributeMap map[string]string

func (a *AttributeMap) Scan(value interface{}) error {
	if value == nil {
		*a = make(AttributeMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AttributeMap")
	}
	return json.Unmarshal(bytes, a)
}

func (a AttributeMap) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(a)
}

// Variation is one purchasable SKU of a product. Each variation carries its
// own price, discount percent and stock; the catalog query engine works on
// variations denormalized with their owning Product preloaded.
type Variation struct {
	ID         uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index:idx_variations_product"`
	Product    *Product     `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	SKU        string       `json:"sku" gorm:"uniqueIndex"`
	Price      float64      `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Discount   float64      `json:"discount" gorm:"type:numeric(5,2);default:0;check:discount >= 0 AND discount <= 100"`
	Quantity   int          `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	Attributes AttributeMap `json:"attributes" gorm:"type:jsonb;not null;default:'{}'"`
	Status     string       `json:"status" gorm:"not null;check:status IN ('Active', 'Inactive');index"`
	CreatedAt  time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (v *Variation) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Variation) TableName() string {
	return "variations"
}

// InStock reports whether this SKU can currently be purchased.
func (v *Variation) InStock() bool {
	return v.Quantity > 0
}
