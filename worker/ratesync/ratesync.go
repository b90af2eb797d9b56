package ratesync

import (
	"context"
	"fmt"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"morpho/core"
	"morpho/pkg/fixedpoint"
	"morpho/pkg/resthttp"
	"morpho/worker"
)

// Worker periodically records each market's rates and oracle price into
// the snapshot store. Observational only: API and CLI query paths always
// go straight to the protocol.
type Worker struct {
	registry       core.IMarketRegistry
	positions      core.IPositionService
	snapshots      core.IRateSnapshotStore
	tickerEndpoint string
	spec           string
}

// New new ratesync worker
func New(
	registry core.IMarketRegistry,
	positions core.IPositionService,
	snapshots core.IRateSnapshotStore,
	tickerEndpoint string,
) *Worker {
	return &Worker{
		registry:       registry,
		positions:      positions,
		snapshots:      snapshots,
		tickerEndpoint: tickerEndpoint,
		spec:           "@every 1m",
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(w.spec, func() {
		if err := w.onWork(ctx); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("ratesync")
		}
	}); err != nil {
		return err
	}

	return worker.StartCron(ctx, c)
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "ratesync")

	markets, err := w.registry.All(ctx)
	if err != nil {
		return err
	}

	for _, market := range markets {
		supplyAPR, err := w.positions.AverageSupplyAPR(ctx, market)
		if err != nil {
			log.WithError(err).Errorln("supply apr:", market.Symbol)
			continue
		}

		borrowAPR, err := w.positions.AverageBorrowAPR(ctx, market)
		if err != nil {
			log.WithError(err).Errorln("borrow apr:", market.Symbol)
			continue
		}

		price, err := w.unitPriceUSD(ctx, market)
		if err != nil {
			log.WithError(err).Errorln("price:", market.Symbol)
			continue
		}

		w.checkTicker(ctx, market, price)

		snapshot := &core.RateSnapshot{
			Symbol:    market.Symbol,
			SupplyAPR: fixedpoint.ToDecimal(supplyAPR, 18),
			BorrowAPR: fixedpoint.ToDecimal(borrowAPR, 18),
			PriceUSD:  price,
		}

		if err := w.snapshots.Create(ctx, snapshot); err != nil {
			log.WithError(err).Errorln("save snapshot:", market.Symbol)
			continue
		}

		log.Debugln("snapshot", market.Symbol, "supply", snapshot.SupplyAPR, "borrow", snapshot.BorrowAPR)
	}

	return nil
}

// unitPriceUSD value of one whole unit via the position service's USD
// conversion path
func (w *Worker) unitPriceUSD(ctx context.Context, market *core.Market) (decimal.Decimal, error) {
	one, err := fixedpoint.FromDecimal(decimal.New(1, 0), market.Decimals)
	if err != nil {
		return decimal.Zero, err
	}

	usd, err := w.positions.ValueUSD(ctx, market, one)
	if err != nil {
		return decimal.Zero, err
	}

	return fixedpoint.ToDecimal(usd, 18), nil
}

// checkTicker compares the oracle price against a secondary HTTP ticker
// and logs when they diverge more than 5%. Advisory only; queries never
// block on this.
func (w *Worker) checkTicker(ctx context.Context, market *core.Market, oraclePrice decimal.Decimal) {
	if w.tickerEndpoint == "" || oraclePrice.IsZero() {
		return
	}

	log := logger.FromContext(ctx).WithField("worker", "ratesync")

	var ticker struct {
		Price decimal.Decimal `json:"price"`
	}

	url := fmt.Sprintf("%s/api/v2/tickers/%s", w.tickerEndpoint, market.Symbol)
	resp, err := resthttp.Request(ctx).SetResult(&ticker).Get(url)
	if err != nil || !resp.IsSuccess() || ticker.Price.IsZero() {
		return
	}

	diff := oraclePrice.Sub(ticker.Price).Abs().Div(ticker.Price)
	if diff.GreaterThan(decimal.RequireFromString("0.05")) {
		log.Warningln("oracle price diverges from ticker:", market.Symbol, oraclePrice, ticker.Price)
	}
}
