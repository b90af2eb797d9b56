package cmd

import (
	"morpho/client/ethereum"
	"morpho/core"
	positionservice "morpho/service/position"
	portfolioservice "morpho/service/portfolio"
	rewardsservice "morpho/service/rewards"

	"github.com/ethereum/go-ethereum/common"
)

func providePositionService(client *ethereum.Client) core.IPositionService {
	return positionservice.New(
		ethereum.Lens(client),
		ethereum.PriceOracle(client),
		provideBackend(),
		provideBlocksPerYear(),
	)
}

func providePortfolioService(client *ethereum.Client, operations core.IOperationStore) core.IPortfolioService {
	return portfolioservice.New(
		ethereum.Router(client),
		ethereum.ERC20(client),
		ethereum.WrappedNative(client),
		operations,
		common.HexToAddress(cfg.Chain.Router),
		client.Account(),
	)
}

func provideRewardsService(client *ethereum.Client, operations core.IOperationStore) core.IRewardsService {
	return rewardsservice.New(
		ethereum.RewardsLens(client),
		ethereum.Router(client),
		operations,
		client.Account(),
	)
}
