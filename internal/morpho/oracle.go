package morpho

import (
	"github.com/holiman/uint256"

	"morpho/pkg/fixedpoint"
)

// PriceScaler converts a native-decimal amount into an 18-decimal USD
// value given the raw oracle price. The two backends scale oracle prices
// differently, so the scaler is picked per deployment.
type PriceScaler interface {
	ToUSD(amount, price *uint256.Int, underlyingDecimals uint8) (*uint256.Int, error)
}

// CompoundPriceScaler Compound-style oracle: prices carry
// 36 - underlyingDecimals decimals, so amount * price / 1e18 lands on the
// 18-decimal USD scale directly.
type CompoundPriceScaler struct{}

func (CompoundPriceScaler) ToUSD(amount, price *uint256.Int, underlyingDecimals uint8) (*uint256.Int, error) {
	return fixedpoint.WadMul(amount, price)
}

// AavePriceScaler Aave-style oracle: prices are a fixed 18 decimals, so
// the native decimals divide out instead.
type AavePriceScaler struct{}

func (AavePriceScaler) ToUSD(amount, price *uint256.Int, underlyingDecimals uint8) (*uint256.Int, error) {
	return fixedpoint.Mul(amount, price, fixedpoint.Pow10(underlyingDecimals))
}
