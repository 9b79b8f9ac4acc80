package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ruleset holds every tax rule for a single jurisdiction. Rulesets live in
// the static rule table and are never mutated after process start.
type Ruleset struct {
	// CigarettePerPack is the excise per 20-cigarette pack.
	CigarettePerPack decimal.Decimal

	Cigar CigarRule

	// Vape is nil when the jurisdiction imposes no vape excise.
	Vape VapeRule

	SalesTaxApplies bool
	SalesTaxRate    decimal.Decimal
}

// CigarRule is the cigar excise variant for a jurisdiction. Implementations
// are CigarNone, CigarPerUnit and CigarPercentage.
type CigarRule interface {
	excise(wholesalePrice decimal.Decimal, quantity int64) decimal.Decimal
	Describe() RateDescription
}

// CigarNone means the jurisdiction levies no cigar excise.
type CigarNone struct{}

// CigarPerUnit taxes a fixed amount per cigar.
type CigarPerUnit struct {
	Rate decimal.Decimal
}

// CigarPercentage taxes a fraction of the wholesale price per cigar. At most
// one cap form is set: Cap alone, or the CapLow/CapHigh pair where CapLow
// applies below the $10 wholesale threshold and CapHigh at or above it.
type CigarPercentage struct {
	Rate    decimal.Decimal
	Cap     *decimal.Decimal
	CapLow  *decimal.Decimal
	CapHigh *decimal.Decimal
}

// VapeRule is the vape excise variant for a jurisdiction. Implementations
// are VapePercentage, VapePerML, VapeBifurcated and VapeDual.
type VapeRule interface {
	excise(closed bool, price decimal.Decimal, volumeML *decimal.Decimal, quantity int64) decimal.Decimal
	Describe() RateDescription
}

// VapePercentage taxes a fraction of the price.
type VapePercentage struct {
	Rate decimal.Decimal
}

// VapePerML taxes a fixed amount per milliliter of liquid.
type VapePerML struct {
	Rate decimal.Decimal
}

// VapeBifurcated carries distinct sub-rates for open and closed systems.
// A sub-rate below 1 is read as a fraction of price; at or above 1 it is a
// dollar amount per mL (or per unit for closed products with no volume).
// That encoding came from the upstream rate data and is kept for
// compatibility; it cannot express an ad valorem rate of 100% or more.
type VapeBifurcated struct {
	Open   decimal.Decimal
	Closed decimal.Decimal
}

// VapeDual applies two simultaneous price-based rates, a wholesale-stage
// and a retail-stage one, summed.
type VapeDual struct {
	Wholesale decimal.Decimal
	Retail    decimal.Decimal
}

// RateDescription is the human-readable form of a rule variant used in
// jurisdiction summaries.
type RateDescription struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (CigarNone) Describe() RateDescription {
	return RateDescription{Type: "none", Description: "No tax"}
}

func (r CigarPerUnit) Describe() RateDescription {
	return RateDescription{
		Type:        "per_unit",
		Description: fmt.Sprintf("$%s per unit", r.Rate.StringFixed(3)),
	}
}

func (r CigarPercentage) Describe() RateDescription {
	desc := fmt.Sprintf("%s%% of wholesale price", r.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
	switch {
	case r.Cap != nil:
		desc += fmt.Sprintf(" (capped at $%s)", r.Cap.StringFixed(2))
	case r.CapLow != nil && r.CapHigh != nil:
		desc += fmt.Sprintf(" (capped at $%s below $%s wholesale, $%s above)",
			r.CapLow.StringFixed(2), tieredCapThreshold.StringFixed(0), r.CapHigh.StringFixed(2))
	}
	return RateDescription{Type: "percentage", Description: desc}
}

func (r VapePercentage) Describe() RateDescription {
	return RateDescription{
		Type:        "percentage",
		Description: fmt.Sprintf("%s%% of price", r.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2)),
	}
}

func (r VapePerML) Describe() RateDescription {
	return RateDescription{
		Type:        "per_ml",
		Description: fmt.Sprintf("$%s per mL", r.Rate.StringFixed(3)),
	}
}

func (r VapeBifurcated) Describe() RateDescription {
	return RateDescription{
		Type:        "bifurcated",
		Description: "Different rates for open/closed systems",
	}
}

func (r VapeDual) Describe() RateDescription {
	return RateDescription{
		Type: "dual",
		Description: fmt.Sprintf("%s%% wholesale plus %s%% retail",
			r.Wholesale.Mul(decimal.NewFromInt(100)).StringFixed(2),
			r.Retail.Mul(decimal.NewFromInt(100)).StringFixed(2)),
	}
}

// describeVape handles the nil (no vape tax) case.
func describeVape(r VapeRule) RateDescription {
	if r == nil {
		return RateDescription{Type: "none", Description: "No tax"}
	}
	return r.Describe()
}
