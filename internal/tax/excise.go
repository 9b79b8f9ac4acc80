package tax

import "github.com/shopspring/decimal"

// tieredCapThreshold is the wholesale price at which a tiered cigar cap
// switches from its low cap to its high cap.
var tieredCapThreshold = decimal.NewFromInt(10)

// one separates the fraction-of-price and dollar-amount readings of a
// bifurcated vape sub-rate.
var one = decimal.NewFromInt(1)

// Excise computes the excise owed for quantity units of a classified
// product. Unknown jurisdictions, unknown classes and missing price or
// volume inputs all yield zero rather than an error: the calculator always
// answers a number so checkout can complete.
func (c *Calculator) Excise(code Code, class ProductClass, price decimal.Decimal, quantity int64, volumeML *decimal.Decimal) decimal.Decimal {
	rs, ok := c.table[Normalize(string(code))]
	if !ok {
		return decimal.Zero
	}

	switch class {
	case ClassCigarettes:
		return rs.CigarettePerPack.Mul(decimal.NewFromInt(quantity))
	case ClassCigars:
		return rs.Cigar.excise(price, quantity)
	case ClassVapeOpen, ClassVapeClosed:
		if rs.Vape == nil {
			return decimal.Zero
		}
		return rs.Vape.excise(class == ClassVapeClosed, price, volumeML, quantity)
	default:
		return decimal.Zero
	}
}

func (CigarNone) excise(decimal.Decimal, int64) decimal.Decimal {
	return decimal.Zero
}

func (r CigarPerUnit) excise(_ decimal.Decimal, quantity int64) decimal.Decimal {
	return r.Rate.Mul(decimal.NewFromInt(quantity))
}

func (r CigarPercentage) excise(wholesalePrice decimal.Decimal, quantity int64) decimal.Decimal {
	perUnit := wholesalePrice.Mul(r.Rate)
	switch {
	case r.Cap != nil:
		perUnit = decimal.Min(perUnit, *r.Cap)
	case r.CapLow != nil && r.CapHigh != nil:
		if wholesalePrice.LessThan(tieredCapThreshold) {
			perUnit = decimal.Min(perUnit, *r.CapLow)
		} else {
			perUnit = decimal.Min(perUnit, *r.CapHigh)
		}
	}
	return perUnit.Mul(decimal.NewFromInt(quantity))
}

func (r VapePercentage) excise(_ bool, price decimal.Decimal, _ *decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(r.Rate).Mul(decimal.NewFromInt(quantity))
}

func (r VapePerML) excise(_ bool, _ decimal.Decimal, volumeML *decimal.Decimal, quantity int64) decimal.Decimal {
	if volumeML == nil {
		return decimal.Zero
	}
	return volumeML.Mul(r.Rate).Mul(decimal.NewFromInt(quantity))
}

func (r VapeBifurcated) excise(closed bool, price decimal.Decimal, volumeML *decimal.Decimal, quantity int64) decimal.Decimal {
	qty := decimal.NewFromInt(quantity)

	if !closed {
		if r.Open.LessThan(one) {
			return price.Mul(r.Open).Mul(qty)
		}
		if volumeML == nil {
			return decimal.Zero
		}
		return volumeML.Mul(r.Open).Mul(qty)
	}

	if r.Closed.LessThan(one) {
		return price.Mul(r.Closed).Mul(qty)
	}
	if volumeML != nil {
		return volumeML.Mul(r.Closed).Mul(qty)
	}
	// Sealed products with no known volume are taxed per unit.
	return r.Closed.Mul(qty)
}

func (r VapeDual) excise(_ bool, price decimal.Decimal, _ *decimal.Decimal, quantity int64) decimal.Decimal {
	wholesale := price.Mul(r.Wholesale)
	retail := price.Mul(r.Retail)
	return wholesale.Add(retail).Mul(decimal.NewFromInt(quantity))
}
