package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config morpho client config
type Config struct {
	Chain   Chain          `json:"chain"`
	DB      db.Config      `json:"db"`
	Markets []MarketConfig `json:"markets"`
	Ticker  Ticker         `json:"ticker"`
}

// Chain chain and protocol deployment config. Addresses are configuration,
// never compiled-in literals; block cadence is per target chain.
type Chain struct {
	RPCEndpoint string `json:"rpc_endpoint"`
	ChainID     int64  `json:"chain_id"`
	// SecondsPerBlock drives blocks-per-year; no universal constant exists
	// across chains.
	SecondsPerBlock int64  `json:"seconds_per_block"`
	PrivateKey      string `json:"private_key"`
	Backend         string `json:"backend"`
	Router          string `json:"router"`
	Lens            string `json:"lens"`
	Oracle          string `json:"oracle"`
	WrappedNative   string `json:"wrapped_native"`
}

// MarketConfig one configured market
type MarketConfig struct {
	Symbol     string `json:"symbol"`
	Underlying string `json:"underlying"`
	PoolToken  string `json:"pool_token"`
	Decimals   uint8  `json:"decimals"`
	Wrapped    bool   `json:"wrapped"`
}

// Ticker secondary price source used by the ratesync worker for
// divergence warnings
type Ticker struct {
	EndPoint string `json:"end_point"`
}
