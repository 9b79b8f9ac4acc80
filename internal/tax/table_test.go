package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTable_CoversAllJurisdictions(t *testing.T) {
	require.Len(t, Codes, 51)
	require.NoError(t, validateTable(ruleTable))

	for _, code := range Codes {
		rs, ok := ruleTable[code]
		require.True(t, ok, "missing jurisdiction %s", code)
		assert.True(t, rs.CigarettePerPack.GreaterThan(decimal.Zero),
			"%s cigarette rate must be positive", code)
		if rs.SalesTaxApplies {
			assert.True(t, rs.SalesTaxRate.GreaterThan(decimal.Zero),
				"%s applies sales tax but has no rate", code)
		} else {
			assert.True(t, rs.SalesTaxRate.IsZero(),
				"%s does not apply sales tax but has a rate", code)
		}
	}
}

func TestRuleTable_SpotRates(t *testing.T) {
	c := New()

	de, ok := c.Lookup("DE")
	require.True(t, ok)
	assert.True(t, de.CigarettePerPack.Equal(d("2.100")))
	assert.False(t, de.SalesTaxApplies)
	assert.IsType(t, VapePerML{}, de.Vape)

	ca, ok := c.Lookup("CA")
	require.True(t, ok)
	assert.IsType(t, VapeDual{}, ca.Vape)

	vt, ok := c.Lookup("VT")
	require.True(t, ok)
	pct, isPct := vt.Cigar.(CigarPercentage)
	require.True(t, isPct)
	require.NotNil(t, pct.CapLow)
	require.NotNil(t, pct.CapHigh)
	assert.Nil(t, pct.Cap)

	fl, ok := c.Lookup("FL")
	require.True(t, ok)
	assert.IsType(t, CigarNone{}, fl.Cigar)
	assert.Nil(t, fl.Vape)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	c := New()

	lower, ok := c.Lookup("ny")
	require.True(t, ok)
	upper, ok := c.Lookup("NY")
	require.True(t, ok)
	assert.Equal(t, upper, lower)

	padded, ok := c.Lookup(" wa ")
	require.True(t, ok)
	assert.True(t, padded.CigarettePerPack.Equal(d("3.025")))
}

func TestLookup_UnknownJurisdiction(t *testing.T) {
	c := New()

	_, ok := c.Lookup("ZZ")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestValidateTable_DetectsGaps(t *testing.T) {
	incomplete := map[Code]Ruleset{}
	for code, rs := range ruleTable {
		incomplete[code] = rs
	}
	delete(incomplete, "TX")

	assert.Error(t, validateTable(incomplete))
}
