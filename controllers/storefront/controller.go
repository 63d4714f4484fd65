package storefront

import (
	"github.com/DeaforK/electronics-store-sub002/catalog"
	"github.com/DeaforK/electronics-store-sub002/repository"
)

var (
	loader        *catalog.Loader
	facetStore    catalog.FacetStore
	productRepo   *repository.ProductRepository
	variationRepo *repository.VariationRepository
	favoriteRepo  *repository.FavoriteRepository
	categoryRepo  *repository.CategoryRepository
	badgeResolver *catalog.PromotionResolver
)

// Init wires the storefront handlers to the catalog loader and stores.
// Must be called once before the routes are registered.
func Init(
	l *catalog.Loader,
	categories *repository.CategoryRepository,
	products *repository.ProductRepository,
	variations *repository.VariationRepository,
	facets catalog.FacetStore,
	promotions catalog.PromotionStore,
	favorites *repository.FavoriteRepository,
) {
	loader = l
	categoryRepo = categories
	productRepo = products
	variationRepo = variations
	facetStore = facets
	favoriteRepo = favorites
	badgeResolver = &catalog.PromotionResolver{Promotions: promotions}
}
