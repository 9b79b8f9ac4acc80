package tax

import "github.com/shopspring/decimal"

// SalesTax computes flat-rate sales tax on an amount that already includes
// excise. Jurisdictions without a sales tax, and unknown jurisdictions,
// yield zero.
func (c *Calculator) SalesTax(code Code, taxableAmount decimal.Decimal) decimal.Decimal {
	rs, ok := c.table[Normalize(string(code))]
	if !ok || !rs.SalesTaxApplies {
		return decimal.Zero
	}
	return taxableAmount.Mul(rs.SalesTaxRate)
}
