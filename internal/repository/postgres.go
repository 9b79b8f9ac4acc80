package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/models"
)

// PostgresProductRepository reads the product catalog from PostgreSQL.
type PostgresProductRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresProductRepository creates a new PostgreSQL product repository.
func NewPostgresProductRepository(db *sql.DB, logger *zap.Logger) *PostgresProductRepository {
	return &PostgresProductRepository{
		db:     db,
		logger: logger,
	}
}

const productColumns = `
	id, sku, name, description, category,
	wholesale_price, retail_price, volume_ml, is_active,
	created_at, updated_at
`

// GetByID retrieves an active product by its identifier.
func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.logger.Debug("Fetching product", zap.String("product_id", id))

	query := `SELECT` + productColumns + `FROM products WHERE id = $1 AND is_active = TRUE`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch product",
			zap.String("product_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}

	return product, nil
}

// GetByIDs retrieves the active products among ids, keyed by identifier.
// Missing products are simply absent from the result; the caller decides
// whether that is an error.
func (r *PostgresProductRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Product, error) {
	if len(ids) == 0 {
		return map[string]*models.Product{}, nil
	}

	query := `SELECT` + productColumns + `FROM products WHERE id = ANY($1) AND is_active = TRUE`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to fetch products", zap.Int("count", len(ids)), zap.Error(err))
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer rows.Close()

	products := make(map[string]*models.Product, len(ids))
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products[product.ID] = product
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	r.logger.Debug("Products fetched",
		zap.Int("requested", len(ids)),
		zap.Int("found", len(products)))

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	var description sql.NullString
	var volumeML decimal.NullDecimal

	err := row.Scan(
		&product.ID,
		&product.SKU,
		&product.Name,
		&description,
		&product.Category,
		&product.WholesalePrice,
		&product.RetailPrice,
		&volumeML,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		product.Description = description.String
	}
	if volumeML.Valid {
		product.VolumeML = &volumeML.Decimal
	}

	return &product, nil
}
