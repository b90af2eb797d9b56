package fixedpoint

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func u(v string) *uint256.Int {
	r, err := uint256.FromDecimal(v)
	if err != nil {
		panic(err)
	}
	return r
}

func TestMulTruncates(t *testing.T) {
	data := map[string]struct {
		a, b, scale, want string
	}{
		"exact":        {"2000000000000000000", "3000000000000000000", "1000000000000000000", "6000000000000000000"},
		"floor":        {"1", "1500000000000000000", "1000000000000000000", "1"},
		"dust dropped": {"3", "500000000000000000", "1000000000000000000", "1"},
		"zero":         {"123456789", "0", "1000000000000000000", "0"},
	}

	for name, d := range data {
		t.Run(name, func(t *testing.T) {
			got, err := Mul(u(d.a), u(d.b), u(d.scale))
			require.NoError(t, err)
			assert.Equal(t, d.want, got.Dec())
		})
	}
}

func TestMulOverflow(t *testing.T) {
	max := new(uint256.Int).Not(uint256.NewInt(0))
	_, err := Mul(max, uint256.NewInt(2), Wad)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestDivByZero(t *testing.T) {
	for _, a := range []string{"0", "1", "1000000000000000000"} {
		_, err := Div(u(a), uint256.NewInt(0), Wad)
		require.ErrorIs(t, err, ErrDivideByZero)
	}
}

func TestWadRayRoundTrip(t *testing.T) {
	rate := u("42000000000000000") // 0.042 wad

	r, err := WadDiv(rate, Wad)
	require.NoError(t, err)
	assert.Equal(t, rate.Dec(), r.Dec())

	ray, err := Div(rate, Wad, Ray)
	require.NoError(t, err)
	assert.Equal(t, rate.Dec(), RayToWad(ray).Dec())
}

// Supplying 100 units of an 8-decimal asset priced at 30,000e28
// (Compound oracle convention, 36-8 decimals) is worth 3,000,000 USD
// at 18 decimals.
func TestCompoundOracleScaling(t *testing.T) {
	amount := u("10000000000")                      // 100e8
	price := u("300000000000000000000000000000000") // 30000e28

	usd, err := WadMul(amount, price)
	require.NoError(t, err)
	assert.Equal(t, "3000000000000000000000000", usd.Dec()) // 3,000,000e18
}

func TestRescale(t *testing.T) {
	v, err := Rescale(u("10000000000"), 8, 18)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000000", v.Dec())

	v, err = Rescale(v, 18, 8)
	require.NoError(t, err)
	assert.Equal(t, "10000000000", v.Dec())

	// truncation on the way down
	v, err = Rescale(u("199"), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", v.Dec())
}

func TestFromDecimal(t *testing.T) {
	v, err := FromDecimal(dec("1.5"), 8)
	require.NoError(t, err)
	assert.Equal(t, "150000000", v.Dec())

	_, err = FromDecimal(dec("0.000000001"), 8)
	require.Error(t, err)

	_, err = FromDecimal(dec("-1"), 8)
	require.Error(t, err)

	assert.Equal(t, "1.5", ToDecimal(v, 8).String())
}
