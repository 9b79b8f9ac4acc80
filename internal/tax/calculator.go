package tax

import "github.com/shopspring/decimal"

// Calculator computes tobacco excise and sales tax against the static rule
// table. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	table map[Code]Ruleset
}

// New returns a Calculator backed by the built-in rule table.
func New() *Calculator {
	return &Calculator{table: ruleTable}
}

// Lookup returns the ruleset for a jurisdiction. The second return value is
// false for unknown codes; callers treat that as "zero tax applies".
func (c *Calculator) Lookup(code Code) (Ruleset, bool) {
	rs, ok := c.table[Normalize(string(code))]
	return rs, ok
}

// ItemTax runs the full pipeline for one product: classify, excise, then
// sales tax on the excise-inclusive base. It never fails; unknown
// jurisdictions and missing inputs produce zero tax components.
func (c *Calculator) ItemTax(p ProductDescriptor, code Code, quantity int64) TaxBreakdown {
	code = Normalize(string(code))
	class := Classify(p)

	volume := p.VolumeML
	if volume == nil {
		volume = ExtractVolumeML(p)
	}

	excise := c.Excise(code, class, p.WholesalePrice, quantity, volume)

	// Sales tax applies to the excise-inclusive amount. Taxing tax is the
	// statutory treatment, not an accident.
	taxable := p.WholesalePrice.Add(excise)
	sales := c.SalesTax(code, taxable)
	total := excise.Add(sales)

	return TaxBreakdown{
		ProductID:    p.ID,
		ProductName:  p.Name,
		ProductClass: class,
		Jurisdiction: code,
		BasePrice:    p.WholesalePrice,
		Quantity:     quantity,
		ExciseTax:    excise,
		SalesTax:     sales,
		TotalTax:     total,
		PriceWithTax: p.WholesalePrice.Add(total),
	}
}

// CartTax computes per-item breakdowns in input order and the cart totals.
// An empty cart yields an all-zero summary with an empty item list.
func (c *Calculator) CartTax(items []LineItem, code Code) CartTaxSummary {
	summary := CartTaxSummary{
		Jurisdiction:   Normalize(string(code)),
		Items:          make([]TaxBreakdown, 0, len(items)),
		Subtotal:       decimal.Zero,
		TotalExciseTax: decimal.Zero,
		TotalSalesTax:  decimal.Zero,
		TotalTax:       decimal.Zero,
		GrandTotal:     decimal.Zero,
	}

	for _, item := range items {
		breakdown := c.ItemTax(item.Product, code, item.Quantity)
		summary.Items = append(summary.Items, breakdown)
		summary.Subtotal = summary.Subtotal.Add(breakdown.BasePrice)
		summary.TotalExciseTax = summary.TotalExciseTax.Add(breakdown.ExciseTax)
		summary.TotalSalesTax = summary.TotalSalesTax.Add(breakdown.SalesTax)
		summary.TotalTax = summary.TotalTax.Add(breakdown.TotalTax)
	}

	summary.GrandTotal = summary.Subtotal.Add(summary.TotalTax)
	return summary
}

// JurisdictionSummary renders the rate sheet for one jurisdiction. The
// second return value is false for unknown codes.
func (c *Calculator) JurisdictionSummary(code Code) (JurisdictionSummary, bool) {
	code = Normalize(string(code))
	rs, ok := c.table[code]
	if !ok {
		return JurisdictionSummary{}, false
	}

	salesRate := decimal.Zero
	if rs.SalesTaxApplies {
		salesRate = rs.SalesTaxRate
	}

	licensed := RequiresWholesalerLicense(code)

	return JurisdictionSummary{
		Jurisdiction:              code,
		CigaretteTaxPerPack:       rs.CigarettePerPack,
		CigarTax:                  rs.Cigar.Describe(),
		VapeTax:                   describeVape(rs.Vape),
		SalesTaxApplies:           rs.SalesTaxApplies,
		SalesTaxRate:              salesRate,
		WholesalerLicenseRequired: licensed,
		FilingRequirements: FilingRequirements{
			Frequency:            "Monthly",
			DueDate:              "20th of following month",
			RegistrationRequired: licensed,
			BondRequired:         "Varies by jurisdiction",
			Notes:                "Consult the jurisdiction's tobacco tax authority for specific requirements",
		},
	}, true
}

// AllJurisdictionSummaries renders every supported jurisdiction's rate
// sheet in the stable Codes order.
func (c *Calculator) AllJurisdictionSummaries() []JurisdictionSummary {
	summaries := make([]JurisdictionSummary, 0, len(Codes))
	for _, code := range Codes {
		if s, ok := c.JurisdictionSummary(code); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries
}
