package cmd

import (
	"github.com/spf13/cobra"

	"morpho/pkg/fixedpoint"
)

var ratesCmd = &cobra.Command{
	Use:   "rates <symbol>",
	Short: "market average and user rates, per block and annualized",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := provideEthereumClient(ctx)
		defer client.Close()

		market := findMarket(ctx, args[0])
		srv := providePositionService(client)
		account := client.Account()

		supplyRate, err := srv.AverageSupplyRatePerBlock(ctx, market)
		if err != nil {
			panic(err)
		}
		borrowRate, err := srv.AverageBorrowRatePerBlock(ctx, market)
		if err != nil {
			panic(err)
		}
		supplyAPR, err := srv.AverageSupplyAPR(ctx, market)
		if err != nil {
			panic(err)
		}
		borrowAPR, err := srv.AverageBorrowAPR(ctx, market)
		if err != nil {
			panic(err)
		}

		cmd.Println("avg supply rate/block:", fixedpoint.ToDecimal(supplyRate, 18))
		cmd.Println("avg borrow rate/block:", fixedpoint.ToDecimal(borrowRate, 18))
		cmd.Println("avg supply apr:       ", fixedpoint.ToDecimal(supplyAPR, 18))
		cmd.Println("avg borrow apr:       ", fixedpoint.ToDecimal(borrowAPR, 18))

		userSupplyRate, err := srv.UserSupplyRatePerBlock(ctx, market, account)
		if err != nil {
			panic(err)
		}
		userBorrowRate, err := srv.UserBorrowRatePerBlock(ctx, market, account)
		if err != nil {
			panic(err)
		}

		cmd.Println("user supply rate/block:", fixedpoint.ToDecimal(userSupplyRate, 18))
		cmd.Println("user borrow rate/block:", fixedpoint.ToDecimal(userBorrowRate, 18))

		if raw, _ := cmd.Flags().GetString("next-amount"); raw != "" {
			amount := parseAmount(market, raw)

			nextSupply, err := srv.NextUserSupplyRatePerBlock(ctx, market, account, amount)
			if err != nil {
				panic(err)
			}
			nextBorrow, err := srv.NextUserBorrowRatePerBlock(ctx, market, account, amount)
			if err != nil {
				panic(err)
			}

			cmd.Println("next supply rate/block after", raw, ":", fixedpoint.ToDecimal(nextSupply, 18))
			cmd.Println("next borrow rate/block after", raw, ":", fixedpoint.ToDecimal(nextBorrow, 18))
		}

		if nbBlocks, _ := cmd.Flags().GetUint64("blocks"); nbBlocks > 0 {
			interest, err := srv.ExpectedSupplyInterest(ctx, market, account, nbBlocks)
			if err != nil {
				panic(err)
			}
			cmd.Println("expected supply interest over", nbBlocks, "blocks (linear estimate):",
				fixedpoint.ToDecimal(interest, market.Decimals))
		}
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
	ratesCmd.Flags().String("next-amount", "", "hypothetical extra amount for next-rate queries")
	ratesCmd.Flags().Uint64("blocks", 0, "estimate accrued supply interest over this many blocks")
}
