package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/events"
	"github.com/moktrading/tax-service/internal/models"
	"github.com/moktrading/tax-service/internal/repository"
	"github.com/moktrading/tax-service/internal/tax"
)

type stubRepo struct {
	products    map[string]*models.Product
	singleCalls int
	batchCalls  int
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.singleCalls++
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubRepo) GetByIDs(_ context.Context, ids []string) (map[string]*models.Product, error) {
	r.batchCalls++
	found := make(map[string]*models.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			found[id] = p
		}
	}
	return found, nil
}

type stubCache struct {
	entries map[string]*models.Product
	fail    bool
}

func (c *stubCache) Get(_ context.Context, id string) (*models.Product, error) {
	if c.fail {
		return nil, errors.New("redis down")
	}
	return c.entries[id], nil
}

func (c *stubCache) Set(_ context.Context, p *models.Product) error {
	if c.fail {
		return errors.New("redis down")
	}
	if c.entries == nil {
		c.entries = make(map[string]*models.Product)
	}
	c.entries[p.ID] = p
	return nil
}

func (c *stubCache) Delete(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}

func newTestService(repo repository.ProductRepository, cache repository.ProductCache) *QuoteService {
	return NewQuoteService(repo, cache, tax.New(), events.NopPublisher{}, zap.NewNop())
}

func TestQuoteCart(t *testing.T) {
	repo := &stubRepo{products: map[string]*models.Product{
		"prod_1": {
			ID:             "prod_1",
			Name:           "Marlboro Red",
			Category:       "Cigarettes",
			WholesalePrice: mustDecimal(t, "8.00"),
			IsActive:       true,
		},
	}}
	svc := newTestService(repo, &stubCache{})

	summary, err := svc.QuoteCart(context.Background(), "de", []QuoteItem{
		{ProductID: "prod_1", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}

	if summary.Jurisdiction != "DE" {
		t.Errorf("Expected jurisdiction DE, got %s", summary.Jurisdiction)
	}
	if len(summary.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(summary.Items))
	}

	// DE cigarettes: $2.10 per pack, no sales tax.
	if got := summary.TotalExciseTax; !got.Equal(mustDecimal(t, "4.20")) {
		t.Errorf("Expected excise 4.20, got %s", got)
	}
	if !summary.TotalSalesTax.IsZero() {
		t.Errorf("Expected no sales tax in DE, got %s", summary.TotalSalesTax)
	}
	if !summary.GrandTotal.Equal(summary.Subtotal.Add(summary.TotalTax)) {
		t.Errorf("grand_total != subtotal + total_tax")
	}
}

func TestQuoteCart_BatchFetchesProducts(t *testing.T) {
	repo := &stubRepo{products: map[string]*models.Product{
		"prod_1": {
			ID:             "prod_1",
			Name:           "Marlboro Red",
			Category:       "Cigarettes",
			WholesalePrice: mustDecimal(t, "8.00"),
			IsActive:       true,
		},
		"prod_2": {
			ID:             "prod_2",
			Name:           "Robusto cigar",
			WholesalePrice: mustDecimal(t, "10.00"),
			IsActive:       true,
		},
	}}
	svc := newTestService(repo, &stubCache{})

	summary, err := svc.QuoteCart(context.Background(), "WI", []QuoteItem{
		{ProductID: "prod_1", Quantity: 2},
		{ProductID: "prod_2", Quantity: 1},
		{ProductID: "prod_1", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}

	if repo.batchCalls != 1 {
		t.Errorf("Expected 1 batch fetch, got %d", repo.batchCalls)
	}
	if repo.singleCalls != 0 {
		t.Errorf("Expected no per-ID fetches, got %d", repo.singleCalls)
	}

	if len(summary.Items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(summary.Items))
	}
	want := []string{"prod_1", "prod_2", "prod_1"}
	for i, id := range want {
		if summary.Items[i].ProductID != id {
			t.Errorf("Item %d: expected %s, got %s", i, id, summary.Items[i].ProductID)
		}
	}
}

func TestQuoteCart_CachedProductsSkipRepository(t *testing.T) {
	cached := &models.Product{
		ID:             "prod_1",
		Name:           "Marlboro Red",
		Category:       "Cigarettes",
		WholesalePrice: mustDecimal(t, "8.00"),
		IsActive:       true,
	}
	repo := &stubRepo{}
	svc := newTestService(repo, &stubCache{entries: map[string]*models.Product{"prod_1": cached}})

	if _, err := svc.QuoteCart(context.Background(), "DE", []QuoteItem{{ProductID: "prod_1", Quantity: 1}}); err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}

	if repo.batchCalls != 0 || repo.singleCalls != 0 {
		t.Errorf("Expected no repository calls for a fully cached cart, got batch=%d single=%d",
			repo.batchCalls, repo.singleCalls)
	}
}

func TestQuoteCart_UnknownProduct(t *testing.T) {
	svc := newTestService(&stubRepo{}, &stubCache{})

	_, err := svc.QuoteCart(context.Background(), "DE", []QuoteItem{
		{ProductID: "prod_missing", Quantity: 1},
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestQuoteCart_PopulatesCache(t *testing.T) {
	repo := &stubRepo{products: map[string]*models.Product{
		"prod_1": {
			ID:             "prod_1",
			Name:           "Robusto cigar",
			WholesalePrice: mustDecimal(t, "10.00"),
			IsActive:       true,
		},
	}}
	cache := &stubCache{}
	svc := newTestService(repo, cache)

	if _, err := svc.QuoteCart(context.Background(), "TX", []QuoteItem{{ProductID: "prod_1", Quantity: 1}}); err != nil {
		t.Fatalf("QuoteCart failed: %v", err)
	}

	if cache.entries["prod_1"] == nil {
		t.Error("Expected product to be cached after repository fetch")
	}
}

func TestQuoteCart_CacheFailureDoesNotBlock(t *testing.T) {
	repo := &stubRepo{products: map[string]*models.Product{
		"prod_1": {
			ID:             "prod_1",
			Name:           "Marlboro Red",
			Category:       "Cigarettes",
			WholesalePrice: mustDecimal(t, "8.00"),
			IsActive:       true,
		},
	}}
	svc := newTestService(repo, &stubCache{fail: true})

	summary, err := svc.QuoteCart(context.Background(), "DE", []QuoteItem{
		{ProductID: "prod_1", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("QuoteCart should survive a broken cache: %v", err)
	}
	if len(summary.Items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(summary.Items))
	}
}

func TestQuoteItem(t *testing.T) {
	repo := &stubRepo{products: map[string]*models.Product{
		"prod_vape": {
			ID:             "prod_vape",
			Name:           "Berry e-liquid 30ml",
			Category:       "Vape",
			WholesalePrice: mustDecimal(t, "20.00"),
			IsActive:       true,
		},
	}}
	svc := newTestService(repo, &stubCache{})

	// DE: $0.05/mL on 30 mL.
	breakdown, err := svc.QuoteItem(context.Background(), "prod_vape", "DE", 2)
	if err != nil {
		t.Fatalf("QuoteItem failed: %v", err)
	}
	if !breakdown.ExciseTax.Equal(mustDecimal(t, "3.00")) {
		t.Errorf("Expected excise 3.00, got %s", breakdown.ExciseTax)
	}
	if breakdown.ProductClass != tax.ClassVapeOpen {
		t.Errorf("Expected vape_open, got %s", breakdown.ProductClass)
	}
}

func TestJurisdictionSummary(t *testing.T) {
	svc := newTestService(&stubRepo{}, &stubCache{})

	if _, ok := svc.JurisdictionSummary("ca"); !ok {
		t.Error("Expected CA summary")
	}
	if _, ok := svc.JurisdictionSummary("ZZ"); ok {
		t.Error("Expected no summary for ZZ")
	}
	if got := len(svc.AllJurisdictions()); got != 51 {
		t.Errorf("Expected 51 jurisdictions, got %d", got)
	}
}
