package morpho

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func fromDec(t *testing.T, v string) *uint256.Int {
	t.Helper()
	r, err := uint256.FromDecimal(v)
	require.NoError(t, err)
	return r
}

func TestCompoundPriceScaler(t *testing.T) {
	// 100 units of an 8-decimal asset at 30,000e28 -> 3,000,000 USD wad
	amount := fromDec(t, "10000000000")
	price := fromDec(t, "300000000000000000000000000000000")

	usd, err := CompoundPriceScaler{}.ToUSD(amount, price, 8)
	require.NoError(t, err)
	require.Equal(t, "3000000000000000000000000", usd.Dec())
}

func TestAavePriceScaler(t *testing.T) {
	// same position against an 18-decimal oracle price
	amount := fromDec(t, "10000000000")
	price := fromDec(t, "30000000000000000000000") // 30,000e18

	usd, err := AavePriceScaler{}.ToUSD(amount, price, 8)
	require.NoError(t, err)
	require.Equal(t, "3000000000000000000000000", usd.Dec())
}
