package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

type stubCategories struct {
	categories []models.Category
	err        error
}

func (s *stubCategories) ListActiveCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func (s *stubCategories) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i], nil
		}
	}
	return nil, errors.New("category not found")
}

type stubFavorites struct {
	products map[uuid.UUID]struct{}
	err      error
}

func (s *stubFavorites) ListProductIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return s.products, s.err
}

type memSessions struct {
	mu   sync.Mutex
	data map[string]*FilterCriteria
}

func newMemSessions() *memSessions {
	return &memSessions{data: make(map[string]*FilterCriteria)}
}

func (m *memSessions) LoadCriteria(ctx context.Context, sessionID string) (*FilterCriteria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[sessionID], nil
}

func (m *memSessions) SaveCriteria(ctx context.Context, sessionID string, criteria *FilterCriteria) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *criteria
	m.data[sessionID] = &saved
	return nil
}

type catalogFixture struct {
	rootID   uuid.UUID
	childID  uuid.UUID
	saleID   uuid.UUID
	products []*models.Product
	loader   *Loader
}

func newFixture(t *testing.T) *catalogFixture {
	t.Helper()

	rootID := uuid.New()
	childID := uuid.New()
	categories := []models.Category{
		{ID: rootID, Name: "Computers", Status: "Active"},
		{ID: childID, Name: "Laptops", ParentID: &rootID, Status: "Active"},
	}

	saleID := uuid.New()
	sale := &models.Promotion{
		ID:     saleID,
		Name:   "Back to School",
		Status: "Active",
	}

	onSale := &models.Product{
		ID:                     uuid.New(),
		Name:                   "Ultrabook",
		Status:                 "Active",
		CategoryID:             childID,
		Rating:                 4.5,
		OnSale:                 true,
		ApplicablePromotionIDs: models.UUIDList{saleID},
	}
	regular := &models.Product{
		ID:         uuid.New(),
		Name:       "Desktop Tower",
		Status:     "Active",
		CategoryID: rootID,
		Rating:     3.9,
	}

	variations := []models.Variation{
		variation(onSale, 1200, 0, models.AttributeMap{"RAM": "16GB"}),
		variation(onSale, 999, 15, models.AttributeMap{"RAM": "32GB"}),
		variation(regular, 700, 0, models.AttributeMap{"RAM": "16GB"}),
	}

	loader := NewLoader(
		&stubCategories{categories: categories},
		&stubVariations{items: variations},
		&stubPromotions{byID: map[uuid.UUID]*models.Promotion{saleID: sale}},
		&stubFavorites{products: map[uuid.UUID]struct{}{regular.ID: {}}},
		newMemSessions(),
	)

	return &catalogFixture{
		rootID:   rootID,
		childID:  childID,
		saleID:   saleID,
		products: []*models.Product{onSale, regular},
		loader:   loader,
	}
}

func TestLoadCatalogPageEndToEnd(t *testing.T) {
	fx := newFixture(t)
	user := uuid.New()

	page, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:  "sess-1",
		CategoryID: fx.rootID,
		UserID:     &user,
		Selections: RawSelections{Page: 1, PageSize: 12},
	})
	if err != nil {
		t.Fatal(err)
	}

	// both products are inside the root scope (child category included)
	if len(page.GroupedProducts) != 2 {
		t.Fatalf("grouped products = %d, want 2", len(page.GroupedProducts))
	}
	if page.Total != 3 {
		t.Errorf("total = %d, want 3 variations", page.Total)
	}
	if page.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", page.TotalPages)
	}

	var ultrabook, desktop *models.GroupedProductView
	for i := range page.GroupedProducts {
		switch page.GroupedProducts[i].Name {
		case "Ultrabook":
			ultrabook = &page.GroupedProducts[i]
		case "Desktop Tower":
			desktop = &page.GroupedProducts[i]
		}
	}
	if ultrabook == nil || desktop == nil {
		t.Fatal("missing expected grouped products")
	}

	if ultrabook.MinPrice != 999 || ultrabook.MaxDiscount != 15 {
		t.Errorf("ultrabook aggregates = (%v, %v), want (999, 15)", ultrabook.MinPrice, ultrabook.MaxDiscount)
	}
	if ultrabook.FinalPrice > ultrabook.MinPrice {
		t.Error("finalPrice must never exceed minPrice")
	}
	if ultrabook.Promotion == nil || ultrabook.Promotion.ID != fx.saleID {
		t.Error("on-sale product must carry its first referenced promotion")
	}
	if desktop.Promotion != nil {
		t.Error("off-sale product must not carry a promotion badge")
	}
	if !desktop.IsFavorite {
		t.Error("favorite decoration missing")
	}
	if ultrabook.IsFavorite {
		t.Error("non-favorited product decorated as favorite")
	}
}

func TestLoadCatalogPageChildScope(t *testing.T) {
	fx := newFixture(t)

	page, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:  "sess-2",
		CategoryID: fx.childID,
		Selections: RawSelections{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.GroupedProducts) != 1 {
		t.Fatalf("child scope grouped = %d, want only the laptop product", len(page.GroupedProducts))
	}
	if page.GroupedProducts[0].Name != "Ultrabook" {
		t.Errorf("wrong product in child scope: %s", page.GroupedProducts[0].Name)
	}
}

func TestLoadCatalogPagePromotionScope(t *testing.T) {
	fx := newFixture(t)

	page, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:   "sess-3",
		CategoryID:  fx.rootID,
		PromotionID: &fx.saleID,
		Selections:  RawSelections{},
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := range page.GroupedProducts {
		g := &page.GroupedProducts[i]
		if g.OnSale {
			if g.Promotion == nil || g.Promotion.ID != fx.saleID {
				t.Errorf("on-sale product %s must display the page-scope promotion", g.Name)
			}
		} else if g.Promotion != nil {
			t.Errorf("off-sale product %s must not display a badge", g.Name)
		}
	}
}

func TestLoadCatalogPageResetsPageOnFacetChange(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.loader.LoadCatalogPage(ctx, PageRequest{
		SessionID:  "sess-4",
		CategoryID: fx.rootID,
		Selections: RawSelections{Page: 2, PageSize: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.Page != 2 {
		t.Fatalf("first request page = %d, want 2", first.Page)
	}

	// same session, new attribute facet: page must reset to 1
	second, err := fx.loader.LoadCatalogPage(ctx, PageRequest{
		SessionID:  "sess-4",
		CategoryID: fx.rootID,
		Selections: RawSelections{
			Page:       2,
			PageSize:   2,
			Attributes: map[string][]string{"RAM": {"16GB"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.Page != 1 {
		t.Errorf("facet change kept page %d, want reset to 1", second.Page)
	}

	// page-only change in the same session keeps the new page
	third, err := fx.loader.LoadCatalogPage(ctx, PageRequest{
		SessionID:  "sess-4",
		CategoryID: fx.rootID,
		Selections: RawSelections{
			Page:       2,
			PageSize:   2,
			Attributes: map[string][]string{"RAM": {"16GB"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if third.Page != 2 {
		t.Errorf("page-only change ended at page %d, want 2", third.Page)
	}
}

func TestLoadCatalogPageCategoryStoreFailure(t *testing.T) {
	fx := newFixture(t)
	fx.loader.Categories = &stubCategories{err: errors.New("timeout")}

	page, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:  "sess-5",
		CategoryID: fx.rootID,
	})
	if err != nil {
		t.Fatalf("collaborator failure must degrade, not error: %v", err)
	}
	if len(page.GroupedProducts) != 0 || page.Total != 0 {
		t.Errorf("got %d products, want an empty result set", len(page.GroupedProducts))
	}
}

func TestLoadCatalogPageVariationStoreFailure(t *testing.T) {
	fx := newFixture(t)
	fx.loader.Engine = &QueryEngine{Variations: &stubVariations{err: errors.New("down")}}

	page, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:  "sess-6",
		CategoryID: fx.rootID,
	})
	if err != nil {
		t.Fatalf("collaborator failure must degrade, not error: %v", err)
	}
	if len(page.GroupedProducts) != 0 {
		t.Error("expected empty result set on variation store failure")
	}
}

// racingVariations simulates an overlapping newer request finishing while an
// older one is still in flight.
type racingVariations struct {
	loader  *Loader
	session string
	items   []models.Variation
	once    sync.Once
}

func (r *racingVariations) ListByCategoryScope(ctx context.Context, scope map[uuid.UUID]struct{}) ([]models.Variation, error) {
	r.once.Do(func() {
		seq := r.loader.Guard.Begin(r.session)
		r.loader.Guard.Commit(r.session, seq)
	})
	return r.items, nil
}

func TestLoadCatalogPageStaleResultDiscarded(t *testing.T) {
	fx := newFixture(t)
	racing := &racingVariations{loader: fx.loader, session: "sess-7"}
	fx.loader.Engine = &QueryEngine{Variations: racing}

	_, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:  "sess-7",
		CategoryID: fx.rootID,
	})
	if !errors.Is(err, ErrStaleResult) {
		t.Fatalf("superseded request returned %v, want ErrStaleResult", err)
	}
}

func TestLoadCatalogPageInactivePageScopeIgnored(t *testing.T) {
	fx := newFixture(t)
	expired := uuid.New()
	fx.loader.Promotions = &stubPromotions{byID: map[uuid.UUID]*models.Promotion{
		expired: {
			ID:     expired,
			Status: "Active",
			EndsAt: time.Now().Add(-time.Hour),
		},
	}}
	fx.loader.Resolver = &PromotionResolver{Promotions: fx.loader.Promotions}

	page, err := fx.loader.LoadCatalogPage(context.Background(), PageRequest{
		SessionID:   "sess-8",
		CategoryID:  fx.rootID,
		PromotionID: &expired,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := range page.GroupedProducts {
		if p := page.GroupedProducts[i].Promotion; p != nil && p.ID == expired {
			t.Error("expired promotion must not be applied as page scope")
		}
	}
}
