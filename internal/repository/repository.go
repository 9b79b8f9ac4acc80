package repository

import (
	"context"
	"errors"

	"github.com/moktrading/tax-service/internal/models"
)

// ErrNotFound is returned when a product does not exist or is inactive.
var ErrNotFound = errors.New("not found")

// ProductRepository provides read access to the product catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*models.Product, error)
}

// ProductCache defines caching operations for catalog products.
type ProductCache interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Set(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// Ensure implementations satisfy the interfaces.
var (
	_ ProductRepository = (*PostgresProductRepository)(nil)
	_ ProductCache      = (*RedisProductCache)(nil)
)
