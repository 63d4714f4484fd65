package catalog

import (
	"context"
	"log"
	"time"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/DeaforK/electronics-store-sub002/utils"
	"github.com/google/uuid"
)

// PageRequest carries everything one storefront catalog query needs.
type PageRequest struct {
	// SessionID identifies one listing session (one open catalog view);
	// sequence guarding and page-reset tracking are scoped by it.
	SessionID   string
	CategoryID  uuid.UUID
	PromotionID *uuid.UUID
	Selections  RawSelections
	UserID      *uuid.UUID
}

// Loader orchestrates the full catalog pipeline: category-scope resolution,
// criteria normalization, the variation query, grouping, promotion badges and
// favorite decoration. Each call is a stateless request/response operation;
// the only cross-request state is the per-session sequence guard and the
// saved criteria used for page resets.
type Loader struct {
	Categories CategoryStore
	Engine     *QueryEngine
	Resolver   *PromotionResolver
	Promotions PromotionStore
	Favorites  FavoriteStore
	Sessions   SessionStateStore
	Guard      *SequenceGuard
}

func NewLoader(categories CategoryStore, variations VariationStore, promotions PromotionStore, favorites FavoriteStore, sessions SessionStateStore) *Loader {
	return &Loader{
		Categories: categories,
		Engine:     &QueryEngine{Variations: variations},
		Resolver:   &PromotionResolver{Promotions: promotions},
		Promotions: promotions,
		Favorites:  favorites,
		Sessions:   sessions,
		Guard:      NewSequenceGuard(),
	}
}

// LoadCatalogPage runs one catalog query end to end. Collaborator failures
// degrade to an empty page with a logged diagnostic; a result superseded by a
// newer request in the same session returns ErrStaleResult and must be
// discarded without rendering.
func (l *Loader) LoadCatalogPage(ctx context.Context, req PageRequest) (*models.CatalogPage, error) {
	seq := l.Guard.Begin(req.SessionID)

	scope, ok := l.resolveScope(ctx, req.CategoryID)
	if !ok {
		return l.commitEmpty(req, seq)
	}

	criteria := Normalize(req.Selections, scope)
	if prev := l.loadPrevCriteria(ctx, req.SessionID); prev != nil {
		criteria.ResetPageIfChanged(prev)
	}

	pageScope := l.resolvePageScope(ctx, req.PromotionID)

	result, err := l.Engine.Query(ctx, criteria)
	if err != nil {
		log.Printf("catalog: variation query failed for session %s: %v", req.SessionID, err)
		return l.commitEmpty(req, seq)
	}

	grouped := Group(result.Items)
	for i := range grouped {
		grouped[i].Promotion = l.Resolver.Resolve(ctx, &grouped[i], pageScope)
	}
	l.decorateFavorites(ctx, req.UserID, grouped)

	if !l.Guard.Commit(req.SessionID, seq) {
		return nil, ErrStaleResult
	}
	if err := l.Sessions.SaveCriteria(ctx, req.SessionID, &criteria); err != nil {
		log.Printf("catalog: failed to save session criteria for %s: %v", req.SessionID, err)
	}

	return &models.CatalogPage{
		GroupedProducts: grouped,
		Total:           result.Total,
		TotalPages:      utils.CalculateTotalPages(result.Total, criteria.PageSize),
		Page:            criteria.Page,
		PageSize:        criteria.PageSize,
	}, nil
}

// FacetScope resolves the descendant-id set facet definitions should be
// restricted to. Exposed for the facet metadata endpoint.
func (l *Loader) FacetScope(ctx context.Context, categoryID uuid.UUID) map[uuid.UUID]struct{} {
	scope, _ := l.resolveScope(ctx, categoryID)
	return scope
}

// resolveScope computes {categoryID} ∪ descendants. The scope always contains
// the selected category id itself, even with zero descendants. A category
// store failure reports !ok so the caller can degrade to an empty page.
func (l *Loader) resolveScope(ctx context.Context, categoryID uuid.UUID) (map[uuid.UUID]struct{}, bool) {
	categories, err := l.Categories.ListActiveCategories(ctx)
	if err != nil {
		log.Printf("catalog: category store unavailable: %v", err)
		return nil, false
	}
	return DescendantIDs(categoryID, categories), true
}

func (l *Loader) loadPrevCriteria(ctx context.Context, sessionID string) *FilterCriteria {
	if l.Sessions == nil || sessionID == "" {
		return nil
	}
	prev, err := l.Sessions.LoadCriteria(ctx, sessionID)
	if err != nil {
		log.Printf("catalog: failed to load session criteria for %s: %v", sessionID, err)
		return nil
	}
	return prev
}

// resolvePageScope loads the promotion whose own listing page this is, if
// any. An inactive or unresolvable promotion degrades to no page scope.
func (l *Loader) resolvePageScope(ctx context.Context, promotionID *uuid.UUID) *models.Promotion {
	if promotionID == nil {
		return nil
	}
	promo, err := l.Promotions.GetPromotion(ctx, *promotionID)
	if err != nil {
		log.Printf("catalog: page-scope promotion %s unresolvable: %v", *promotionID, err)
		return nil
	}
	if !promo.ActiveAt(time.Now()) {
		return nil
	}
	return promo
}

func (l *Loader) decorateFavorites(ctx context.Context, userID *uuid.UUID, grouped []models.GroupedProductView) {
	if userID == nil || l.Favorites == nil {
		return
	}
	favorites, err := l.Favorites.ListProductIDs(ctx, *userID)
	if err != nil {
		log.Printf("catalog: favorites unavailable for user %s: %v", *userID, err)
		return
	}
	for i := range grouped {
		_, grouped[i].IsFavorite = favorites[grouped[i].ProductID]
	}
}

// commitEmpty finishes a degraded request: the empty result still competes in
// the sequence order so a stale success can never overwrite it.
func (l *Loader) commitEmpty(req PageRequest, seq uint64) (*models.CatalogPage, error) {
	if !l.Guard.Commit(req.SessionID, seq) {
		return nil, ErrStaleResult
	}
	pageSize := req.Selections.PageSize
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	page := req.Selections.Page
	if page < 1 {
		page = 1
	}
	return &models.CatalogPage{
		GroupedProducts: []models.GroupedProductView{},
		Total:           0,
		TotalPages:      0,
		Page:            page,
		PageSize:        pageSize,
	}, nil
}
