package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moktrading/tax-service/internal/tax"
)

// Product is a catalog row. The tax pipeline only reads it.
type Product struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	WholesalePrice decimal.Decimal  `json:"wholesale_price"`
	RetailPrice    decimal.Decimal  `json:"retail_price"`
	VolumeML       *decimal.Decimal `json:"volume_ml,omitempty"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Descriptor projects the catalog row onto the calculator's read-only view.
func (p *Product) Descriptor() tax.ProductDescriptor {
	return tax.ProductDescriptor{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Category:       p.Category,
		WholesalePrice: p.WholesalePrice,
		VolumeML:       p.VolumeML,
	}
}
