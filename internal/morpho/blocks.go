package morpho

import (
	"errors"

	"github.com/holiman/uint256"

	"morpho/pkg/fixedpoint"
)

// SecondsPerYear civil-calendar approximation, 365.25 days
const SecondsPerYear = 31_557_600

// BlocksPerYear derives the annualization factor from the configured block
// cadence. The cadence is per target chain; there is no universal value.
func BlocksPerYear(secondsPerBlock int64) (uint64, error) {
	if secondsPerBlock <= 0 {
		return 0, errors.New("secondsPerBlock should not be less than or equal zero")
	}

	return uint64(SecondsPerYear / secondsPerBlock), nil
}

// AnnualizePerBlockRate APR = ratePerBlock * blocksPerYear, wad-scaled
func AnnualizePerBlockRate(ratePerBlock *uint256.Int, blocksPerYear uint64) (*uint256.Int, error) {
	return fixedpoint.MulUint64(ratePerBlock, blocksPerYear)
}

// PerBlockFromYearlyRay converts an Aave-style per-year ray rate into the
// wad per-block convention the rest of the code speaks.
func PerBlockFromYearlyRay(yearlyRay *uint256.Int, blocksPerYear uint64) (*uint256.Int, error) {
	if blocksPerYear == 0 {
		return nil, fixedpoint.ErrDivideByZero
	}

	wad := fixedpoint.RayToWad(yearlyRay)
	return wad.Div(wad, uint256.NewInt(blocksPerYear)), nil
}

// ExpectedInterest linear accrual estimate: total * ratePerBlock * nbBlocks
// on the wad scale. Real accrual compounds each block, so this is an
// approximation that undershoots over long horizons.
func ExpectedInterest(total, ratePerBlock *uint256.Int, nbBlocks uint64) (*uint256.Int, error) {
	rate, err := fixedpoint.MulUint64(ratePerBlock, nbBlocks)
	if err != nil {
		return nil, err
	}

	return fixedpoint.WadMul(total, rate)
}
