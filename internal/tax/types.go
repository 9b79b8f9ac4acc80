package tax

import "github.com/shopspring/decimal"

// ProductDescriptor is the read-only view of a catalog item the calculator
// needs. VolumeML is the declared liquid volume when the catalog knows it;
// when nil, the classifier tries to read a volume out of the product text.
type ProductDescriptor struct {
	ID          string
	Name        string
	Description string
	Category    string

	// WholesalePrice is the price basis for ad valorem excise.
	WholesalePrice decimal.Decimal

	VolumeML *decimal.Decimal
}

// LineItem pairs a product with a requested quantity.
type LineItem struct {
	Product  ProductDescriptor
	Quantity int64
}

// TaxBreakdown is the per-item calculation result.
type TaxBreakdown struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductClass ProductClass    `json:"product_type"`
	Jurisdiction Code            `json:"state"`
	BasePrice    decimal.Decimal `json:"base_price"`
	Quantity     int64           `json:"quantity"`
	ExciseTax    decimal.Decimal `json:"excise_tax"`
	SalesTax     decimal.Decimal `json:"sales_tax"`
	TotalTax     decimal.Decimal `json:"total_tax"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
}

// CartTaxSummary aggregates breakdowns over a whole cart. Items keep the
// input order. grand_total = subtotal + total_tax and
// total_tax = total_excise_tax + total_sales_tax hold exactly.
type CartTaxSummary struct {
	Jurisdiction   Code            `json:"state"`
	Items          []TaxBreakdown  `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TotalExciseTax decimal.Decimal `json:"total_excise_tax"`
	TotalSalesTax  decimal.Decimal `json:"total_sales_tax"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

// JurisdictionSummary is the human-readable rate sheet for one jurisdiction.
type JurisdictionSummary struct {
	Jurisdiction              Code               `json:"state"`
	CigaretteTaxPerPack       decimal.Decimal    `json:"cigarette_tax_per_pack"`
	CigarTax                  RateDescription    `json:"cigar_tax"`
	VapeTax                   RateDescription    `json:"vape_tax"`
	SalesTaxApplies           bool               `json:"sales_tax_applies"`
	SalesTaxRate              decimal.Decimal    `json:"sales_tax_rate"`
	WholesalerLicenseRequired bool               `json:"wholesaler_license_required"`
	FilingRequirements        FilingRequirements `json:"filing_requirements"`
}

// FilingRequirements describes a jurisdiction's reporting obligations.
// Most jurisdictions follow the monthly pattern; consult the jurisdiction's
// tobacco tax authority for specifics.
type FilingRequirements struct {
	Frequency            string `json:"frequency"`
	DueDate              string `json:"due_date"`
	RegistrationRequired bool   `json:"registration_required"`
	BondRequired         string `json:"bond_required"`
	Notes                string `json:"notes"`
}
