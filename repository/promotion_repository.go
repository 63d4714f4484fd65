package repository

import (
	"context"
	"errors"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository is the GORM-backed promotion store.
type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) GetPromotion(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&promotion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPromotionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promotion, nil
}

// ListPromotionsForProduct returns the product's referenced promotions in
// reference-list order; the first entry is the one the badge resolver shows.
func (r *PromotionRepository) ListPromotionsForProduct(ctx context.Context, productID uuid.UUID) ([]models.Promotion, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Select("applicable_promotion_ids").
		Where("id = ?", productID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	if len(product.ApplicablePromotionIDs) == 0 {
		return []models.Promotion{}, nil
	}

	var promotions []models.Promotion
	err = r.db.WithContext(ctx).
		Where("id IN ?", []uuid.UUID(product.ApplicablePromotionIDs)).
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}

	// reorder to match the reference list
	byID := make(map[uuid.UUID]models.Promotion, len(promotions))
	for _, p := range promotions {
		byID[p.ID] = p
	}
	ordered := make([]models.Promotion, 0, len(promotions))
	for _, id := range product.ApplicablePromotionIDs {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
