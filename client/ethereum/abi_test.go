package ethereum

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestABIMethodSets(t *testing.T) {
	for _, name := range []string{
		"getCurrentSupplyBalanceInOf",
		"getCurrentBorrowBalanceInOf",
		"getAverageSupplyRatePerBlock",
		"getAverageSupplyRatePerYear",
		"getNextUserBorrowRatePerBlock",
		"getNextUserBorrowRatePerYear",
		"getUserHealthFactor",
		"getUserUnclaimedRewards",
	} {
		_, ok := lensABI.Methods[name]
		require.True(t, ok, name)
	}

	for _, name := range []string{"supply", "withdraw", "borrow", "repay", "claimRewards"} {
		_, ok := routerABI.Methods[name]
		require.True(t, ok, name)
	}
}

func TestPackSupply(t *testing.T) {
	poolToken := common.HexToAddress("0xC11b1268C1A384e55C48c2391d8d480264A3A7F4")
	onBehalf := common.HexToAddress("0x000000000000000000000000000000000000dEaD")

	input, err := routerABI.Pack("supply", poolToken, onBehalf, big.NewInt(1))
	require.NoError(t, err)
	// 4-byte selector + three static words
	require.Len(t, input, 4+3*32)
}

func TestPackDeposit(t *testing.T) {
	input, err := wethABI.Pack("deposit")
	require.NoError(t, err)
	require.Len(t, input, 4)
}
