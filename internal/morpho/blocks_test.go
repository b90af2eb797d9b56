package morpho

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestBlocksPerYear(t *testing.T) {
	blocks, err := BlocksPerYear(15)
	require.NoError(t, err)
	require.Equal(t, uint64(2_103_840), blocks)

	_, err = BlocksPerYear(0)
	require.Error(t, err)

	_, err = BlocksPerYear(-12)
	require.Error(t, err)
}

func TestAnnualizePerBlockRate(t *testing.T) {
	// 1e10 wad per block over 2,103,840 blocks
	apr, err := AnnualizePerBlockRate(uint256.NewInt(1e10), 2_103_840)
	require.NoError(t, err)
	require.Equal(t, "21038400000000000", apr.Dec()) // ~2.1% wad
}

func TestPerBlockFromYearlyRay(t *testing.T) {
	// 4.2% per year, ray-scaled
	yearly, err := uint256.FromDecimal("42000000000000000000000000")
	require.NoError(t, err)

	perBlock, err := PerBlockFromYearlyRay(yearly, 2_103_840)
	require.NoError(t, err)
	require.Equal(t, "19963495322", perBlock.Dec())

	_, err = PerBlockFromYearlyRay(yearly, 0)
	require.Error(t, err)
}

func TestExpectedInterest(t *testing.T) {
	// 1000 units of an 8-decimal asset on pool, 1e10 per block, 100 blocks
	total := uint256.NewInt(100_000_000_000)
	rate := uint256.NewInt(1e10)

	got, err := ExpectedInterest(total, rate, 100)
	require.NoError(t, err)
	// 100_000_000_000 * 1e12 / 1e18 = 100_000 (0.001 of the asset)
	require.Equal(t, "100000", got.Dec())

	got, err = ExpectedInterest(total, rate, 0)
	require.NoError(t, err)
	require.True(t, got.IsZero())
}
