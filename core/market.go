package core

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Backend identifies which lending optimizer a deployment targets. The two
// backends disagree on oracle price scaling and on rate units, so every
// consumer that touches prices or rates must go through the strategy
// selected for the configured backend.
type Backend uint8

const (
	// BackendCompound Morpho-Compound: per-block wad rates, oracle prices
	// at 36 - underlyingDecimals decimals
	BackendCompound Backend = iota
	// BackendAave Morpho-Aave-V2: per-year ray rates, oracle prices at a
	// fixed 18 decimals
	BackendAave
)

// ParseBackend parse backend name from config
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "compound":
		return BackendCompound, nil
	case "aave":
		return BackendAave, nil
	default:
		return 0, fmt.Errorf("unknown backend %q", s)
	}
}

func (b Backend) String() string {
	switch b {
	case BackendCompound:
		return "compound"
	case BackendAave:
		return "aave"
	default:
		return "unknown"
	}
}

// Market one lending market. Immutable, loaded from config at startup;
// markets are never created or destroyed at runtime.
type Market struct {
	Symbol     string         `json:"symbol"`
	Underlying common.Address `json:"underlying"`
	PoolToken  common.Address `json:"pool_token"`
	Decimals   uint8          `json:"decimals"`
	// Wrapped marks the native-asset market; supplies wrap the native
	// asset first and withdrawals unwrap afterwards.
	Wrapped bool `json:"wrapped"`
}

// IMarketRegistry market lookup
type IMarketRegistry interface {
	Find(ctx context.Context, symbol string) (*Market, error)
	FindByPoolToken(ctx context.Context, poolToken common.Address) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
}
