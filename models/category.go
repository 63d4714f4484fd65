package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is one node of the storefront category tree. A category with a
// nil ParentID is a root. Categories are managed by the CMS; the storefront
// only reads them.
type Category struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'Inactive';check:status IN ('Active', 'Inactive')"`
	ParentID    *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// BeforeCreate hook - auto-generate UUID v7 if not set
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// StorefrontCategory is the customer-facing category shape with product
// counts and nested subcategories.
type StorefrontCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	ParentID      *string              `json:"parent_id"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}
