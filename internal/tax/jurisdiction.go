package tax

import "strings"

// Code identifies a US tax jurisdiction by its two-letter postal
// abbreviation. The 50 states plus DC are supported.
type Code string

// Normalize uppercases and trims a jurisdiction code received at the API
// boundary. It does not check that the code is known; unknown codes are a
// valid input that resolves to zero tax everywhere.
func Normalize(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

// Codes lists every supported jurisdiction in a stable order.
var Codes = []Code{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// licenseExempt lists jurisdictions that do not require a tobacco
// wholesaler license.
var licenseExempt = map[Code]bool{
	"DE": true,
	"MT": true,
	"NH": true,
	"OR": true,
}

// RequiresWholesalerLicense reports whether a jurisdiction requires tobacco
// wholesaler licensing.
func RequiresWholesalerLicense(code Code) bool {
	return !licenseExempt[Normalize(string(code))]
}
