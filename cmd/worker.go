package cmd

import (
	"sync"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"

	"morpho/worker"
	"morpho/worker/ratesync"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "morpho background workers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		client := provideEthereumClient(ctx)
		defer client.Close()

		workers := []worker.Worker{
			ratesync.New(
				provideMarketRegistry(),
				providePositionService(client),
				provideSnapshotStore(database),
				cfg.Ticker.EndPoint,
			),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(w worker.Worker) {
				defer wg.Done()
				if err := w.Run(ctx); err != nil {
					log.WithError(err).Errorln("worker exit")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
