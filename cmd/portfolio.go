package cmd

import (
	"github.com/spf13/cobra"

	"morpho/core"
	"morpho/pkg/fixedpoint"
)

func mutatorCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <symbol> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			database := provideDatabase()
			defer database.Close()

			client := provideEthereumClient(ctx)
			defer client.Close()

			market := findMarket(ctx, args[0])
			amount := parseAmount(market, args[1])
			srv := providePortfolioService(client, provideOperationStore(database))

			var (
				op  *core.Operation
				err error
			)

			switch action {
			case core.ActionSupply:
				op, err = srv.Supply(ctx, market, amount)
			case core.ActionWithdraw:
				op, err = srv.Withdraw(ctx, market, amount)
			case core.ActionBorrow:
				op, err = srv.Borrow(ctx, market, amount)
			case core.ActionRepay:
				op, err = srv.Repay(ctx, market, amount)
			}

			if err != nil {
				cmd.PrintErrln(action, "failed:", err)
				if op != nil {
					cmd.PrintErrln("operation", op.TraceID, "status:", op.Status)
				}
				return
			}

			cmd.Println(action, fixedpoint.ToDecimal(amount, market.Decimals), market.Symbol,
				"done, operation", op.TraceID)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		mutatorCmd("supply", "supply an asset to the protocol", core.ActionSupply),
		mutatorCmd("withdraw", "withdraw a supplied asset", core.ActionWithdraw),
		mutatorCmd("borrow", "borrow an asset against supplied collateral", core.ActionBorrow),
		mutatorCmd("repay", "repay a borrow", core.ActionRepay),
	)
}
