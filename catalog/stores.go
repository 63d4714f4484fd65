package catalog

import (
	"context"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

// Collaborator contracts the catalog core depends on. The storefront wires
// GORM/pgx implementations from the repository package; tests substitute
// in-memory fakes.

// CategoryStore reads the category tree source data.
type CategoryStore interface {
	ListActiveCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

// VariationStore loads candidate variation records, denormalized with their
// owning product, restricted to a category scope. Facet filtering, sorting
// and pagination semantics are owned by the query engine, not the store.
type VariationStore interface {
	ListByCategoryScope(ctx context.Context, scope map[uuid.UUID]struct{}) ([]models.Variation, error)
}

// FacetStore supplies the dynamic facet definitions and the price bounds that
// drive the filter sidebar for a category or promotion scope.
type FacetStore interface {
	ListFacetDefinitions(ctx context.Context, scope map[uuid.UUID]struct{}) (map[string]map[string][]string, error)
	PriceRange(ctx context.Context, scope map[uuid.UUID]struct{}) (models.PriceRange, error)
}

// PromotionStore reads promotion campaigns for badge resolution.
type PromotionStore interface {
	GetPromotion(ctx context.Context, id uuid.UUID) (*models.Promotion, error)
	ListPromotionsForProduct(ctx context.Context, productID uuid.UUID) ([]models.Promotion, error)
}

// FavoriteStore reads a user's wishlist; the catalog uses it only to set the
// is_favorite flag on grouped products.
type FavoriteStore interface {
	ListProductIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

// SessionStateStore persists the last applied criteria of one listing
// session, so a follow-up request can tell a page-only change from a filter
// change.
type SessionStateStore interface {
	LoadCriteria(ctx context.Context, sessionID string) (*FilterCriteria, error)
	SaveCriteria(ctx context.Context, sessionID string, criteria *FilterCriteria) error
}
