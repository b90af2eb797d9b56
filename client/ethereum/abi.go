package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

func mustABI(def string) abi.ABI {
	a, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return a
}

// The lens carries both naming conventions: the Compound deployment
// exposes per-block rates, the Aave one per-year ray rates. The client
// picks the method set for the configured backend.
var lensABI = mustABI(`[
	{"name":"getCurrentSupplyBalanceInOf","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"balanceOnPool","type":"uint256"},{"name":"balanceInP2P","type":"uint256"},{"name":"totalBalance","type":"uint256"}]},
	{"name":"getCurrentBorrowBalanceInOf","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"balanceOnPool","type":"uint256"},{"name":"balanceInP2P","type":"uint256"},{"name":"totalBalance","type":"uint256"}]},
	{"name":"getAverageSupplyRatePerBlock","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"}],
		"outputs":[{"name":"avgSupplyRatePerBlock","type":"uint256"},{"name":"p2pSupplyAmount","type":"uint256"},{"name":"poolSupplyAmount","type":"uint256"}]},
	{"name":"getAverageBorrowRatePerBlock","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"}],
		"outputs":[{"name":"avgBorrowRatePerBlock","type":"uint256"},{"name":"p2pBorrowAmount","type":"uint256"},{"name":"poolBorrowAmount","type":"uint256"}]},
	{"name":"getAverageSupplyRatePerYear","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"}],
		"outputs":[{"name":"avgSupplyRatePerYear","type":"uint256"},{"name":"p2pSupplyAmount","type":"uint256"},{"name":"poolSupplyAmount","type":"uint256"}]},
	{"name":"getAverageBorrowRatePerYear","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"}],
		"outputs":[{"name":"avgBorrowRatePerYear","type":"uint256"},{"name":"p2pBorrowAmount","type":"uint256"},{"name":"poolBorrowAmount","type":"uint256"}]},
	{"name":"getCurrentUserSupplyRatePerBlock","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getCurrentUserBorrowRatePerBlock","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getCurrentUserSupplyRatePerYear","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getCurrentUserBorrowRatePerYear","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getNextUserSupplyRatePerBlock","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[{"name":"nextRate","type":"uint256"},{"name":"balanceOnPool","type":"uint256"},{"name":"balanceInP2P","type":"uint256"},{"name":"totalBalance","type":"uint256"}]},
	{"name":"getNextUserBorrowRatePerBlock","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[{"name":"nextRate","type":"uint256"},{"name":"balanceOnPool","type":"uint256"},{"name":"balanceInP2P","type":"uint256"},{"name":"totalBalance","type":"uint256"}]},
	{"name":"getNextUserSupplyRatePerYear","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[{"name":"nextRate","type":"uint256"},{"name":"balanceOnPool","type":"uint256"},{"name":"balanceInP2P","type":"uint256"},{"name":"totalBalance","type":"uint256"}]},
	{"name":"getNextUserBorrowRatePerYear","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_user","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[{"name":"nextRate","type":"uint256"},{"name":"balanceOnPool","type":"uint256"},{"name":"balanceInP2P","type":"uint256"},{"name":"totalBalance","type":"uint256"}]},
	{"name":"getUserHealthFactor","type":"function","stateMutability":"view",
		"inputs":[{"name":"_user","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"name":"getUserUnclaimedRewards","type":"function","stateMutability":"view",
		"inputs":[{"name":"_poolTokens","type":"address[]"},{"name":"_user","type":"address"}],
		"outputs":[{"name":"unclaimedRewards","type":"uint256"}]}
]`)

var routerABI = mustABI(`[
	{"name":"supply","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_onBehalf","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[]},
	{"name":"withdraw","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[]},
	{"name":"borrow","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[]},
	{"name":"repay","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"_poolToken","type":"address"},{"name":"_onBehalf","type":"address"},{"name":"_amount","type":"uint256"}],
		"outputs":[]},
	{"name":"claimRewards","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"_poolTokens","type":"address[]"},{"name":"_tradeForMorphoToken","type":"bool"}],
		"outputs":[{"name":"claimedAmount","type":"uint256"}]}
]`)

var erc20ABI = mustABI(`[
	{"name":"approve","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"name":"allowance","type":"function","stateMutability":"view",
		"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view",
		"inputs":[{"name":"account","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]}
]`)

var wethABI = mustABI(`[
	{"name":"deposit","type":"function","stateMutability":"payable","inputs":[],"outputs":[]},
	{"name":"withdraw","type":"function","stateMutability":"nonpayable",
		"inputs":[{"name":"wad","type":"uint256"}],"outputs":[]}
]`)

var compoundOracleABI = mustABI(`[
	{"name":"getUnderlyingPrice","type":"function","stateMutability":"view",
		"inputs":[{"name":"cToken","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]}
]`)

var aaveOracleABI = mustABI(`[
	{"name":"getAssetPrice","type":"function","stateMutability":"view",
		"inputs":[{"name":"asset","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]}
]`)
