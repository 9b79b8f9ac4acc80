package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// ruleTable maps every supported jurisdiction to its current ruleset.
// Rates are transcribed from the published state schedules; cigarette rates
// are per 20-stick pack with three decimal places of precision.
var ruleTable = map[Code]Ruleset{
	"AL": {
		CigarettePerPack: d("0.675"),
		Cigar:            CigarPerUnit{Rate: d("0.0405")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.04"),
	},
	"AK": {
		CigarettePerPack: d("2.000"),
		Cigar:            CigarPercentage{Rate: d("0.75")},
		SalesTaxRate:     d("0.00"),
	},
	"AZ": {
		CigarettePerPack: d("2.000"),
		Cigar:            CigarPerUnit{Rate: d("0.218")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.056"),
	},
	"AR": {
		CigarettePerPack: d("1.150"),
		Cigar:            CigarPercentage{Rate: d("0.68"), Cap: dp("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.065"),
	},
	"CA": {
		CigarettePerPack: d("2.870"),
		Cigar:            CigarPercentage{Rate: d("0.5427")},
		Vape:             VapeDual{Wholesale: d("0.5632"), Retail: d("0.125")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0725"),
	},
	"CO": {
		CigarettePerPack: d("1.940"),
		Cigar:            CigarPercentage{Rate: d("0.56")},
		Vape:             VapePercentage{Rate: d("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.029"),
	},
	"CT": {
		CigarettePerPack: d("4.350"),
		Cigar:            CigarPercentage{Rate: d("0.50"), Cap: dp("0.50")},
		Vape:             VapeBifurcated{Open: d("0.10"), Closed: d("0.40")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0635"),
	},
	"DE": {
		CigarettePerPack: d("2.100"),
		Cigar:            CigarPercentage{Rate: d("0.30")},
		Vape:             VapePerML{Rate: d("0.05")},
		SalesTaxRate:     d("0.00"),
	},
	"DC": {
		CigarettePerPack: d("4.500"),
		Cigar:            CigarNone{},
		Vape:             VapePercentage{Rate: d("0.79")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"FL": {
		CigarettePerPack: d("1.339"),
		Cigar:            CigarNone{},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"GA": {
		CigarettePerPack: d("0.370"),
		Cigar:            CigarPercentage{Rate: d("0.23")},
		Vape:             VapeBifurcated{Open: d("0.07"), Closed: d("0.05")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.04"),
	},
	"HI": {
		CigarettePerPack: d("3.200"),
		Cigar:            CigarPercentage{Rate: d("0.50")},
		Vape:             VapePercentage{Rate: d("0.70")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.04"),
	},
	"ID": {
		CigarettePerPack: d("0.570"),
		Cigar:            CigarPercentage{Rate: d("0.40"), Cap: dp("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"IL": {
		CigarettePerPack: d("2.980"),
		Cigar:            CigarPercentage{Rate: d("0.45")},
		Vape:             VapePercentage{Rate: d("0.15")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0625"),
	},
	"IN": {
		CigarettePerPack: d("0.995"),
		Cigar:            CigarPercentage{Rate: d("0.30"), Cap: dp("3.00")},
		Vape:             VapeBifurcated{Open: d("0.15"), Closed: d("0.15")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.07"),
	},
	"IA": {
		CigarettePerPack: d("1.360"),
		Cigar:            CigarPercentage{Rate: d("0.50"), Cap: dp("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"KS": {
		CigarettePerPack: d("1.290"),
		Cigar:            CigarPercentage{Rate: d("0.10")},
		Vape:             VapePerML{Rate: d("0.05")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.065"),
	},
	"KY": {
		CigarettePerPack: d("1.100"),
		Cigar:            CigarPercentage{Rate: d("0.15")},
		Vape:             VapeBifurcated{Open: d("0.15"), Closed: d("1.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"LA": {
		CigarettePerPack: d("1.080"),
		Cigar:            CigarPercentage{Rate: d("0.20")},
		Vape:             VapePerML{Rate: d("0.15")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0445"),
	},
	"ME": {
		CigarettePerPack: d("2.000"),
		Cigar:            CigarPercentage{Rate: d("0.43")},
		Vape:             VapePercentage{Rate: d("0.43")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.055"),
	},
	"MD": {
		CigarettePerPack: d("3.750"),
		Cigar:            CigarPercentage{Rate: d("0.15")},
		Vape:             VapeBifurcated{Open: d("0.12"), Closed: d("0.60")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"MA": {
		CigarettePerPack: d("3.510"),
		Cigar:            CigarPercentage{Rate: d("0.40")},
		Vape:             VapePercentage{Rate: d("0.75")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0625"),
	},
	"MI": {
		CigarettePerPack: d("2.000"),
		Cigar:            CigarPercentage{Rate: d("0.32"), Cap: dp("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"MN": {
		CigarettePerPack: d("3.040"),
		Cigar:            CigarPercentage{Rate: d("0.95"), Cap: dp("0.50")},
		Vape:             VapePercentage{Rate: d("0.95")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06875"),
	},
	"MS": {
		CigarettePerPack: d("0.680"),
		Cigar:            CigarPercentage{Rate: d("0.15")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.07"),
	},
	"MO": {
		CigarettePerPack: d("0.170"),
		Cigar:            CigarPercentage{Rate: d("0.10")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.04225"),
	},
	"MT": {
		CigarettePerPack: d("1.700"),
		Cigar:            CigarPercentage{Rate: d("0.50"), Cap: dp("0.35")},
		SalesTaxRate:     d("0.00"),
	},
	"NE": {
		CigarettePerPack: d("0.640"),
		Cigar:            CigarPercentage{Rate: d("0.20")},
		Vape:             VapeBifurcated{Open: d("0.05"), Closed: d("0.10")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.055"),
	},
	"NV": {
		CigarettePerPack: d("1.800"),
		Cigar:            CigarPercentage{Rate: d("0.30")},
		Vape:             VapePercentage{Rate: d("0.30")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0685"),
	},
	"NH": {
		CigarettePerPack: d("1.780"),
		Cigar:            CigarNone{},
		Vape:             VapeBifurcated{Open: d("0.08"), Closed: d("0.30")},
		SalesTaxRate:     d("0.00"),
	},
	"NJ": {
		CigarettePerPack: d("2.700"),
		Cigar:            CigarPercentage{Rate: d("0.30")},
		Vape:             VapeBifurcated{Open: d("0.10"), Closed: d("0.10")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06625"),
	},
	"NM": {
		CigarettePerPack: d("2.000"),
		Cigar:            CigarPercentage{Rate: d("0.25"), Cap: dp("0.50")},
		Vape:             VapeBifurcated{Open: d("0.125"), Closed: d("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.05125"),
	},
	"NY": {
		CigarettePerPack: d("5.350"),
		Cigar:            CigarPercentage{Rate: d("0.75")},
		Vape:             VapePercentage{Rate: d("0.20")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.08"),
	},
	"NC": {
		CigarettePerPack: d("0.450"),
		Cigar:            CigarPercentage{Rate: d("0.1285")},
		Vape:             VapePerML{Rate: d("0.05")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0475"),
	},
	"ND": {
		CigarettePerPack: d("0.440"),
		Cigar:            CigarPercentage{Rate: d("0.28")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.05"),
	},
	"OH": {
		CigarettePerPack: d("1.600"),
		Cigar:            CigarPercentage{Rate: d("0.17"), Cap: dp("0.65")},
		Vape:             VapePerML{Rate: d("0.10")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0575"),
	},
	"OK": {
		CigarettePerPack: d("2.030"),
		Cigar:            CigarPerUnit{Rate: d("0.12")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.045"),
	},
	"OR": {
		CigarettePerPack: d("3.330"),
		Cigar:            CigarPercentage{Rate: d("0.65"), Cap: dp("1.00")},
		Vape:             VapePercentage{Rate: d("0.65")},
		SalesTaxRate:     d("0.00"),
	},
	"PA": {
		CigarettePerPack: d("2.600"),
		Cigar:            CigarNone{},
		Vape:             VapePercentage{Rate: d("0.40")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"RI": {
		CigarettePerPack: d("4.250"),
		Cigar:            CigarPercentage{Rate: d("0.80"), Cap: dp("0.50")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.07"),
	},
	"SC": {
		CigarettePerPack: d("0.570"),
		Cigar:            CigarPercentage{Rate: d("0.055")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"SD": {
		CigarettePerPack: d("1.530"),
		Cigar:            CigarPercentage{Rate: d("0.35")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.045"),
	},
	"TN": {
		CigarettePerPack: d("0.620"),
		Cigar:            CigarPercentage{Rate: d("0.066")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.07"),
	},
	"TX": {
		CigarettePerPack: d("1.410"),
		Cigar:            CigarPerUnit{Rate: d("0.011")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0625"),
	},
	"UT": {
		CigarettePerPack: d("1.700"),
		Cigar:            CigarPercentage{Rate: d("0.86")},
		Vape:             VapePercentage{Rate: d("0.56")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.0485"),
	},
	"VT": {
		CigarettePerPack: d("3.080"),
		Cigar:            CigarPercentage{Rate: d("0.92"), CapLow: dp("2.00"), CapHigh: dp("4.00")},
		Vape:             VapePercentage{Rate: d("0.92")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"VA": {
		CigarettePerPack: d("0.600"),
		Cigar:            CigarPercentage{Rate: d("0.20")},
		Vape:             VapePerML{Rate: d("0.066")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.053"),
	},
	"WA": {
		CigarettePerPack: d("3.025"),
		Cigar:            CigarPercentage{Rate: d("0.95"), Cap: dp("0.65")},
		Vape:             VapeBifurcated{Open: d("0.09"), Closed: d("0.27")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.065"),
	},
	"WV": {
		CigarettePerPack: d("1.200"),
		Cigar:            CigarPercentage{Rate: d("0.12")},
		Vape:             VapePerML{Rate: d("0.075")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.06"),
	},
	"WI": {
		CigarettePerPack: d("2.520"),
		Cigar:            CigarPercentage{Rate: d("0.71"), Cap: dp("0.50")},
		Vape:             VapePerML{Rate: d("0.05")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.05"),
	},
	"WY": {
		CigarettePerPack: d("0.600"),
		Cigar:            CigarPercentage{Rate: d("0.20")},
		Vape:             VapePercentage{Rate: d("0.15")},
		SalesTaxApplies:  true,
		SalesTaxRate:     d("0.04"),
	},
}

func init() {
	if err := validateTable(ruleTable); err != nil {
		panic(err)
	}
}

// validateTable checks the static table covers every jurisdiction exactly.
// A gap here is a build defect, not a runtime condition.
func validateTable(table map[Code]Ruleset) error {
	for _, code := range Codes {
		rs, ok := table[code]
		if !ok {
			return fmt.Errorf("tax: rule table missing jurisdiction %s", code)
		}
		if rs.Cigar == nil {
			return fmt.Errorf("tax: jurisdiction %s has no cigar rule", code)
		}
	}
	if len(table) != len(Codes) {
		return fmt.Errorf("tax: rule table has %d entries, want %d", len(table), len(Codes))
	}
	return nil
}
