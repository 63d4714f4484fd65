package catalog

import (
	"testing"

	"github.com/DeaforK/electronics-store-sub002/models"
	"github.com/google/uuid"
)

func TestGroupScenarioDerivedPricing(t *testing.T) {
	p := activeProduct(uuid.New(), 4)
	items := []models.Variation{
		variation(p, 100, 0, nil),
		variation(p, 80, 20, nil),
	}

	grouped := Group(items)
	if len(grouped) != 1 {
		t.Fatalf("expected 1 group, got %d", len(grouped))
	}
	g := grouped[0]
	if g.MinPrice != 80 {
		t.Errorf("minPrice = %v, want 80", g.MinPrice)
	}
	if g.MaxDiscount != 20 {
		t.Errorf("maxDiscount = %v, want 20", g.MaxDiscount)
	}
	if g.FinalPrice != 64.00 {
		t.Errorf("finalPrice = %v, want 64.00", g.FinalPrice)
	}
	if len(g.Variations) != 2 {
		t.Errorf("group must carry all its variations, got %d", len(g.Variations))
	}
}

func TestGroupMinPriceAndMaxDiscountAreIndependent(t *testing.T) {
	p := activeProduct(uuid.New(), 4)
	// cheapest variation has no discount; best discount sits on the expensive one
	items := []models.Variation{
		variation(p, 200, 50, nil),
		variation(p, 100, 0, nil),
	}

	g := Group(items)[0]
	if g.MinPrice != 100 || g.MaxDiscount != 50 {
		t.Fatalf("got min=%v max=%v, want min=100 max=50 (independent aggregates)", g.MinPrice, g.MaxDiscount)
	}
	if g.FinalPrice != 50.00 {
		t.Errorf("finalPrice = %v, want 50.00", g.FinalPrice)
	}
}

func TestGroupFinalPriceEqualsMinPriceWithoutDiscount(t *testing.T) {
	p := activeProduct(uuid.New(), 4)
	g := Group([]models.Variation{
		variation(p, 129.99, 0, nil),
		variation(p, 149.99, 0, nil),
	})[0]

	if g.MaxDiscount != 0 {
		t.Fatalf("maxDiscount = %v, want 0", g.MaxDiscount)
	}
	if g.FinalPrice != g.MinPrice {
		t.Errorf("finalPrice %v must equal minPrice %v when no discount applies", g.FinalPrice, g.MinPrice)
	}
}

func TestGroupFinalPriceRounding(t *testing.T) {
	p := activeProduct(uuid.New(), 4)
	// 99.99 * (1 - 1/3... ) pick values with a long fraction: 59.99 * 0.85 = 50.9915
	g := Group([]models.Variation{variation(p, 59.99, 15, nil)})[0]
	if g.FinalPrice != 50.99 {
		t.Errorf("finalPrice = %v, want 50.99 (rounded to 2 decimals)", g.FinalPrice)
	}
}

func TestGroupPreservesFirstSeenProductOrder(t *testing.T) {
	catID := uuid.New()
	a := activeProduct(catID, 4)
	b := activeProduct(catID, 5)
	c := activeProduct(catID, 3)

	items := []models.Variation{
		variation(b, 10, 0, nil),
		variation(a, 20, 0, nil),
		variation(b, 30, 0, nil),
		variation(c, 40, 0, nil),
		variation(a, 50, 0, nil),
	}

	grouped := Group(items)
	if len(grouped) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(grouped))
	}
	wantOrder := []uuid.UUID{b.ID, a.ID, c.ID}
	for i, want := range wantOrder {
		if grouped[i].ProductID != want {
			t.Errorf("group %d = %s, want %s (first-seen order)", i, grouped[i].ProductID, want)
		}
	}
}

func TestGroupPromotionIDsFromFirstVariation(t *testing.T) {
	promoA := uuid.New()
	promoB := uuid.New()
	catID := uuid.New()

	productSeenFirst := activeProduct(catID, 4)
	productSeenFirst.ApplicablePromotionIDs = models.UUIDList{promoA}
	// same product id but a different promotion list on the record attached
	// to the second variation; grouping must keep the first one
	productSeenSecond := *productSeenFirst
	productSeenSecond.ApplicablePromotionIDs = models.UUIDList{promoB}

	first := variation(productSeenFirst, 100, 0, nil)
	second := variation(&productSeenSecond, 90, 0, nil)
	second.ProductID = productSeenFirst.ID

	g := Group([]models.Variation{first, second})[0]
	if len(g.PromotionIDs) != 1 || g.PromotionIDs[0] != promoA {
		t.Errorf("promotion ids = %v, want [%s] carried from the first variation", g.PromotionIDs, promoA)
	}
}

func TestGroupEmptyInput(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Errorf("grouping nothing must yield an empty slice, got %d", len(got))
	}
}
