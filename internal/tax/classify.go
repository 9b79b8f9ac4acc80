package tax

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductClass is the taxable category the calculator works with.
type ProductClass string

const (
	ClassCigarettes ProductClass = "cigarettes"
	ClassCigars     ProductClass = "cigars"
	ClassVapeOpen   ProductClass = "vape_open"
	ClassVapeClosed ProductClass = "vape_closed"
)

var vapeKeywords = []string{"vape", "e-cig", "electronic", "vapor"}

// closedSystemKeywords mark sealed pre-filled products; matched against the
// product name only.
var closedSystemKeywords = []string{"cartridge", "pod", "disposable"}

// Classify infers the taxable category from a product's category and name.
// Anything unrecognized falls back to cigars, which stands in for the
// other-tobacco-products rate in every jurisdiction.
func Classify(p ProductDescriptor) ProductClass {
	category := strings.ToLower(p.Category)
	name := strings.ToLower(p.Name)

	if strings.Contains(category, "cigarette") || strings.Contains(name, "cigarette") {
		return ClassCigarettes
	}
	if strings.Contains(category, "cigar") || strings.Contains(name, "cigar") {
		return ClassCigars
	}
	for _, kw := range vapeKeywords {
		if strings.Contains(category, kw) || strings.Contains(name, kw) {
			for _, sealed := range closedSystemKeywords {
				if strings.Contains(name, sealed) {
					return ClassVapeClosed
				}
			}
			return ClassVapeOpen
		}
	}
	return ClassCigars
}

var volumePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:ml|milliliter)`)

var (
	cartridgeVolume  = d("1.0")
	disposableVolume = d("2.0")
)

// ExtractVolumeML reads a liquid volume out of the product name and
// description ("30ml", "3.5 milliliters", ...). The first match wins. When
// no volume is stated, sealed-product keywords supply a typical default;
// otherwise nil is returned and per-mL rules tax the item at zero.
func ExtractVolumeML(p ProductDescriptor) *decimal.Decimal {
	text := strings.ToLower(p.Name + " " + p.Description)

	if m := volumePattern.FindStringSubmatch(text); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return &v
		}
	}

	if strings.Contains(text, "cartridge") || strings.Contains(text, "pod") {
		v := cartridgeVolume
		return &v
	}
	if strings.Contains(text, "disposable") {
		v := disposableVolume
		return &v
	}

	return nil
}
