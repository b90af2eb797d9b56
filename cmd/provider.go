package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"morpho/client/ethereum"
	"morpho/core"
	"morpho/internal/morpho"
	"morpho/pkg/fixedpoint"
)

func provideBackend() core.Backend {
	backend, err := core.ParseBackend(cfg.Chain.Backend)
	if err != nil {
		panic(err)
	}

	return backend
}

func provideBlocksPerYear() uint64 {
	blocks, err := morpho.BlocksPerYear(cfg.Chain.SecondsPerBlock)
	if err != nil {
		panic(err)
	}

	return blocks
}

func provideEthereumClient(ctx context.Context) *ethereum.Client {
	client, err := ethereum.Dial(ctx, ethereum.Config{
		Endpoint:      cfg.Chain.RPCEndpoint,
		ChainID:       cfg.Chain.ChainID,
		PrivateKey:    cfg.Chain.PrivateKey,
		Backend:       provideBackend(),
		BlocksPerYear: provideBlocksPerYear(),
		Router:        common.HexToAddress(cfg.Chain.Router),
		Lens:          common.HexToAddress(cfg.Chain.Lens),
		Oracle:        common.HexToAddress(cfg.Chain.Oracle),
		WrappedNative: common.HexToAddress(cfg.Chain.WrappedNative),
	})
	if err != nil {
		panic(err)
	}

	return client
}

func provideConfig() *core.Config {
	return &cfg
}

func findMarket(ctx context.Context, symbol string) *core.Market {
	registry := provideMarketRegistry()
	market, err := registry.Find(ctx, symbol)
	if err != nil {
		panic(fmt.Sprintf("no market configured for %s", symbol))
	}

	return market
}

func parseAmount(market *core.Market, raw string) *uint256.Int {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		panic(err)
	}

	amount, err := fixedpoint.FromDecimal(d, market.Decimals)
	if err != nil {
		panic(err)
	}

	return amount
}
