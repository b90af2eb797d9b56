package cmd

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"morpho/pkg/fixedpoint"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "health factor and liquidation proximity",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		client := provideEthereumClient(ctx)
		defer client.Close()

		srv := providePositionService(client)

		account := client.Account()
		if raw, _ := cmd.Flags().GetString("account"); raw != "" {
			account = common.HexToAddress(raw)
		}

		raw, _ := cmd.Flags().GetString("threshold")
		threshold, err := fixedpoint.FromDecimal(decimal.RequireFromString(raw), 18)
		if err != nil {
			panic(err)
		}

		hf, err := srv.HealthFactor(ctx, account)
		if err != nil {
			panic(err)
		}

		liquidatable, err := srv.IsApproxLiquidatable(ctx, account, threshold)
		if err != nil {
			panic(err)
		}

		cmd.Println("health factor:", fixedpoint.ToDecimal(hf, 18))
		cmd.Println("liquidatable below", raw, ":", liquidatable)
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	healthCmd.Flags().String("account", "", "query another account instead of the signer")
	healthCmd.Flags().String("threshold", "1.05", "safety threshold to compare the health factor against")
}
