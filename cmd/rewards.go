package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"morpho/core"
	"morpho/pkg/fixedpoint"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "unclaimed incentive rewards across all configured markets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := provideEthereumClient(ctx)
		defer client.Close()

		database := provideDatabase()
		defer database.Close()

		srv := provideRewardsService(client, provideOperationStore(database))
		markets := allMarkets(ctx)

		unclaimed, err := srv.Unclaimed(ctx, client.Account(), markets)
		if err != nil {
			panic(err)
		}

		cmd.Println("unclaimed rewards:", fixedpoint.ToDecimal(unclaimed, 18))
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "claim accrued rewards for all configured markets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := provideEthereumClient(ctx)
		defer client.Close()

		database := provideDatabase()
		defer database.Close()

		srv := provideRewardsService(client, provideOperationStore(database))

		op, err := srv.Claim(ctx, allMarkets(ctx))
		if err != nil {
			cmd.PrintErrln("claim failed:", err)
			return
		}

		cmd.Println("claimed", op.Amount, "operation", op.TraceID)
	},
}

func allMarkets(ctx context.Context) []*core.Market {
	markets, err := provideMarketRegistry().All(ctx)
	if err != nil {
		panic(err)
	}
	return markets
}

func init() {
	rootCmd.AddCommand(rewardsCmd, claimCmd)
}
