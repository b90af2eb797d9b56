package ethereum

import (
	"context"

	"github.com/holiman/uint256"

	"morpho/core"
)

type priceOracle struct {
	client *Client
}

// PriceOracle raw oracle prices in the backend's own scaling. The
// Compound oracle is keyed by pool token, the Aave one by underlying.
func PriceOracle(client *Client) core.IPriceOracle {
	return &priceOracle{client: client}
}

func (o *priceOracle) Price(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	var (
		values []interface{}
		err    error
	)

	if o.client.cfg.Backend == core.BackendAave {
		values, err = o.client.call(ctx, o.client.cfg.Oracle, aaveOracleABI, "getAssetPrice", market.Underlying)
	} else {
		values, err = o.client.call(ctx, o.client.cfg.Oracle, compoundOracleABI, "getUnderlyingPrice", market.PoolToken)
	}
	if err != nil {
		return nil, err
	}

	price, err := asUint256(values[0])
	if err != nil {
		return nil, err
	}

	if price.IsZero() {
		return nil, core.ErrInvalidPrice
	}

	return price, nil
}
