package cmd

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"morpho/pkg/fixedpoint"
)

var balanceCmd = &cobra.Command{
	Use:     "balance <symbol>",
	Aliases: []string{"b"},
	Short:   "supply and borrow balances in a market",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := provideEthereumClient(ctx)
		defer client.Close()

		market := findMarket(ctx, args[0])
		srv := providePositionService(client)

		account := client.Account()
		if raw, _ := cmd.Flags().GetString("account"); raw != "" {
			account = common.HexToAddress(raw)
		}

		supply, err := srv.SupplyBalance(ctx, market, account)
		if err != nil {
			panic(err)
		}
		supplyUSD, err := srv.SupplyBalanceUSD(ctx, market, account)
		if err != nil {
			panic(err)
		}
		borrow, err := srv.BorrowBalance(ctx, market, account)
		if err != nil {
			panic(err)
		}
		borrowUSD, err := srv.BorrowBalanceUSD(ctx, market, account)
		if err != nil {
			panic(err)
		}

		cmd.Println("supply on pool:", fixedpoint.ToDecimal(supply.OnPool, market.Decimals),
			"(", fixedpoint.ToDecimal(supplyUSD.OnPool, 18), "USD )")
		cmd.Println("supply p2p:    ", fixedpoint.ToDecimal(supply.P2P, market.Decimals),
			"(", fixedpoint.ToDecimal(supplyUSD.P2P, 18), "USD )")
		cmd.Println("borrow on pool:", fixedpoint.ToDecimal(borrow.OnPool, market.Decimals),
			"(", fixedpoint.ToDecimal(borrowUSD.OnPool, 18), "USD )")
		cmd.Println("borrow p2p:    ", fixedpoint.ToDecimal(borrow.P2P, market.Decimals),
			"(", fixedpoint.ToDecimal(borrowUSD.P2P, 18), "USD )")
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().String("account", "", "query another account instead of the signer")
}
