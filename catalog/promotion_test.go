package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

type stubPromotions struct {
	byID      map[uuid.UUID]*models.Promotion
	byProduct map[uuid.UUID][]models.Promotion
	err       error
}

func (s *stubPromotions) GetPromotion(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	promo, ok := s.byID[id]
	if !ok {
		return nil, errors.New("promotion not found")
	}
	return promo, nil
}

func (s *stubPromotions) ListPromotionsForProduct(ctx context.Context, productID uuid.UUID) ([]models.Promotion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byProduct[productID], nil
}

func onSaleView(promotionIDs ...uuid.UUID) *models.GroupedProductView {
	return &models.GroupedProductView{
		ProductID:    uuid.New(),
		OnSale:       true,
		PromotionIDs: promotionIDs,
	}
}

func TestResolvePageScopeWinsForOnSaleProduct(t *testing.T) {
	resolver := &PromotionResolver{Promotions: &stubPromotions{}}
	pageScope := &models.Promotion{ID: uuid.New(), Name: "Summer Sale"}

	// on-sale product with no own references still shows the scope promotion
	got := resolver.Resolve(context.Background(), onSaleView(), pageScope)
	if got != pageScope {
		t.Errorf("got %v, want the page-scope promotion", got)
	}
}

func TestResolvePageScopeOverridesOwnReferences(t *testing.T) {
	own := uuid.New()
	resolver := &PromotionResolver{Promotions: &stubPromotions{
		byID: map[uuid.UUID]*models.Promotion{own: {ID: own}},
	}}
	pageScope := &models.Promotion{ID: uuid.New()}

	got := resolver.Resolve(context.Background(), onSaleView(own), pageScope)
	if got != pageScope {
		t.Error("page scope must win unconditionally over attached references")
	}
}

func TestResolveOffSaleProductShowsNothing(t *testing.T) {
	promoID := uuid.New()
	resolver := &PromotionResolver{Promotions: &stubPromotions{
		byID: map[uuid.UUID]*models.Promotion{promoID: {ID: promoID}},
	}}

	view := &models.GroupedProductView{OnSale: false, PromotionIDs: models.UUIDList{promoID}}
	if got := resolver.Resolve(context.Background(), view, nil); got != nil {
		t.Errorf("off-sale product resolved %v, want nil regardless of references", got)
	}
	if got := resolver.Resolve(context.Background(), view, &models.Promotion{ID: uuid.New()}); got != nil {
		t.Errorf("off-sale product resolved %v on a promotion page, want nil", got)
	}
}

func TestResolveFirstReferenceWins(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	resolver := &PromotionResolver{Promotions: &stubPromotions{
		byID: map[uuid.UUID]*models.Promotion{
			// second promotion has the bigger discount; list order still wins
			first:  {ID: first, DiscountValue: 5},
			second: {ID: second, DiscountValue: 50},
		},
	}}

	got := resolver.Resolve(context.Background(), onSaleView(first, second), nil)
	if got == nil || got.ID != first {
		t.Errorf("got %v, want the first reference in list order", got)
	}
}

func TestResolveNoReferences(t *testing.T) {
	resolver := &PromotionResolver{Promotions: &stubPromotions{}}
	if got := resolver.Resolve(context.Background(), onSaleView(), nil); got != nil {
		t.Errorf("got %v, want nil for a product without references", got)
	}
}

func TestResolveUnresolvableReferenceDegrades(t *testing.T) {
	resolver := &PromotionResolver{Promotions: &stubPromotions{err: errors.New("store down")}}
	if got := resolver.Resolve(context.Background(), onSaleView(uuid.New()), nil); got != nil {
		t.Errorf("got %v, want nil when the promotion store fails", got)
	}
}

func TestListActivePromotionsKeepsOrderAndDropsExpired(t *testing.T) {
	live1 := models.Promotion{ID: uuid.New(), Name: "Clearance", Status: "Active"}
	expired := models.Promotion{ID: uuid.New(), Status: "Active", EndsAt: time.Now().Add(-time.Hour)}
	live2 := models.Promotion{ID: uuid.New(), Name: "Bundle", Status: "Active"}

	view := onSaleView(live1.ID, expired.ID, live2.ID)
	resolver := &PromotionResolver{Promotions: &stubPromotions{
		byProduct: map[uuid.UUID][]models.Promotion{
			view.ProductID: {live1, expired, live2},
		},
	}}

	got := resolver.ListActivePromotions(context.Background(), view)
	if len(got) != 2 {
		t.Fatalf("listed %d promotions, want the 2 live ones", len(got))
	}
	if got[0].ID != live1.ID || got[1].ID != live2.ID {
		t.Error("live promotions must keep reference-list order")
	}
}

func TestListActivePromotionsOffSaleProduct(t *testing.T) {
	live := models.Promotion{ID: uuid.New(), Status: "Active"}
	view := &models.GroupedProductView{
		ProductID:    uuid.New(),
		OnSale:       false,
		PromotionIDs: models.UUIDList{live.ID},
	}
	resolver := &PromotionResolver{Promotions: &stubPromotions{
		byProduct: map[uuid.UUID][]models.Promotion{view.ProductID: {live}},
	}}

	if got := resolver.ListActivePromotions(context.Background(), view); len(got) != 0 {
		t.Errorf("off-sale product listed %d promotions, want none", len(got))
	}
}

func TestListActivePromotionsStoreFailureDegrades(t *testing.T) {
	resolver := &PromotionResolver{Promotions: &stubPromotions{err: errors.New("store down")}}
	if got := resolver.ListActivePromotions(context.Background(), onSaleView(uuid.New())); len(got) != 0 {
		t.Errorf("got %d promotions, want none when the store fails", len(got))
	}
}
