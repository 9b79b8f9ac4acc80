package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/events"
	"github.com/moktrading/tax-service/internal/metrics"
	"github.com/moktrading/tax-service/internal/models"
	"github.com/moktrading/tax-service/internal/repository"
	"github.com/moktrading/tax-service/internal/tax"
)

// QuoteItem identifies a requested cart line by catalog product.
type QuoteItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// QuoteService resolves catalog products and runs the tax calculator over
// them. The calculator itself never fails; errors here come from the
// catalog lookup only.
type QuoteService struct {
	products  repository.ProductRepository
	cache     repository.ProductCache
	calc      *tax.Calculator
	publisher events.QuotePublisher
	logger    *zap.Logger
}

// NewQuoteService creates a new quote service.
func NewQuoteService(
	products repository.ProductRepository,
	cache repository.ProductCache,
	calc *tax.Calculator,
	publisher events.QuotePublisher,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		products:  products,
		cache:     cache,
		calc:      calc,
		publisher: publisher,
		logger:    logger,
	}
}

// QuoteCart computes the tax summary for a cart shipped to a jurisdiction.
func (s *QuoteService) QuoteCart(ctx context.Context, jurisdiction string, items []QuoteItem) (*tax.CartTaxSummary, error) {
	start := time.Now()

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.getProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	lineItems := make([]tax.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, tax.LineItem{
			Product:  products[item.ProductID].Descriptor(),
			Quantity: item.Quantity,
		})
	}

	summary := s.calc.CartTax(lineItems, tax.Code(jurisdiction))

	metrics.QuotesTotal.WithLabelValues(string(summary.Jurisdiction)).Inc()
	metrics.QuoteDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("Cart quote computed",
		zap.String("jurisdiction", string(summary.Jurisdiction)),
		zap.Int("items", len(summary.Items)),
		zap.String("total_tax", summary.TotalTax.String()))

	// The quote stands whether or not downstream hears about it.
	if err := s.publisher.PublishQuoteCalculated(ctx, summary); err != nil {
		s.logger.Warn("Quote event not published", zap.Error(err))
	}

	return &summary, nil
}

// QuoteItem computes the tax breakdown for a single catalog product.
func (s *QuoteService) QuoteItem(ctx context.Context, productID, jurisdiction string, quantity int64) (*tax.TaxBreakdown, error) {
	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	breakdown := s.calc.ItemTax(product.Descriptor(), tax.Code(jurisdiction), quantity)
	return &breakdown, nil
}

// JurisdictionSummary returns the rate sheet for one jurisdiction.
func (s *QuoteService) JurisdictionSummary(code string) (tax.JurisdictionSummary, bool) {
	return s.calc.JurisdictionSummary(tax.Code(code))
}

// AllJurisdictions returns every supported jurisdiction's rate sheet.
func (s *QuoteService) AllJurisdictions() []tax.JurisdictionSummary {
	return s.calc.AllJurisdictionSummaries()
}

// getProducts resolves a cart's products cache-first, then batch-fetches
// whatever is left in a single catalog query.
func (s *QuoteService) getProducts(ctx context.Context, ids []string) (map[string]*models.Product, error) {
	resolved := make(map[string]*models.Product, len(ids))
	missing := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			// A broken cache must not block quoting.
			s.logger.Warn("Product cache unavailable", zap.String("product_id", id), zap.Error(err))
		}
		if cached != nil {
			resolved[id] = cached
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return resolved, nil
	}

	fetched, err := s.products.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}

	for _, id := range missing {
		product, ok := fetched[id]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
		}
		if err := s.cache.Set(ctx, product); err != nil {
			s.logger.Warn("Product not cached", zap.String("product_id", id), zap.Error(err))
		}
		resolved[id] = product
	}

	return resolved, nil
}

func (s *QuoteService) getProduct(ctx context.Context, id string) (*models.Product, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		// A broken cache must not block quoting.
		s.logger.Warn("Product cache unavailable", zap.String("product_id", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn("Product not cached", zap.String("product_id", id), zap.Error(err))
	}

	return product, nil
}
