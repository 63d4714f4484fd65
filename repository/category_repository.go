package repository

import (
	"context"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository is the GORM-backed category store.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", "Active").
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, "Active").
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// ListStorefrontCategories returns the customer-facing category rows with
// per-category active product counts, for the category navigation endpoint.
func (r *CategoryRepository) ListStorefrontCategories(ctx context.Context) ([]models.StorefrontCategory, error) {
	query := `
		SELECT
			c.id::text AS id,
			c.name,
			c.description,
			c.parent_id::text AS parent_id,
			COUNT(DISTINCT p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.status = 'Active'
		WHERE c.status = 'Active'
		GROUP BY c.id, c.name, c.description, c.parent_id
		ORDER BY c.name ASC
	`

	categories := make([]models.StorefrontCategory, 0)
	if err := r.db.WithContext(ctx).Raw(query).Scan(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
