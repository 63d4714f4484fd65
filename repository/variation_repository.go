package repository

import (
	"context"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VariationRepository loads candidate variation records for the query engine.
// It restricts by status and category scope only; facet matching, sorting and
// pagination semantics are owned by the engine so they behave identically in
// tests and production.
type VariationRepository struct {
	db *gorm.DB
}

func NewVariationRepository(db *gorm.DB) *VariationRepository {
	return &VariationRepository{db: db}
}

func (r *VariationRepository) ListByCategoryScope(ctx context.Context, scope map[uuid.UUID]struct{}) ([]models.Variation, error) {
	if len(scope) == 0 {
		return []models.Variation{}, nil
	}

	ids := make([]uuid.UUID, 0, len(scope))
	for id := range scope {
		ids = append(ids, id)
	}

	variations := make([]models.Variation, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = variations.product_id").
		Where("variations.status = ?", "Active").
		Where("products.status = ?", "Active").
		Where("products.category_id IN ?", ids).
		Preload("Product").
		Order("variations.created_at ASC, variations.id ASC").
		Find(&variations).Error
	if err != nil {
		return nil, err
	}
	return variations, nil
}

// GetProductVariations returns one product's active variations for the
// product detail page.
func (r *VariationRepository) GetProductVariations(ctx context.Context, productID uuid.UUID) ([]models.Variation, error) {
	variations := make([]models.Variation, 0)
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, "Active").
		Preload("Product").
		Order("created_at ASC").
		Find(&variations).Error
	if err != nil {
		return nil, err
	}
	return variations, nil
}
