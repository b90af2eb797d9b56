package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"morpho/core"
)

type marketRegistry struct {
	bySymbol    map[string]*core.Market
	byPoolToken map[common.Address]*core.Market
	all         []*core.Market
}

// New registry from config. Markets are immutable once loaded; there is
// no runtime creation, so no database behind this store.
func New(configs []core.MarketConfig) (core.IMarketRegistry, error) {
	r := &marketRegistry{
		bySymbol:    make(map[string]*core.Market, len(configs)),
		byPoolToken: make(map[common.Address]*core.Market, len(configs)),
	}

	for _, c := range configs {
		if !common.IsHexAddress(c.Underlying) || !common.IsHexAddress(c.PoolToken) {
			return nil, fmt.Errorf("market %s: bad address", c.Symbol)
		}

		m := &core.Market{
			Symbol:     strings.ToUpper(c.Symbol),
			Underlying: common.HexToAddress(c.Underlying),
			PoolToken:  common.HexToAddress(c.PoolToken),
			Decimals:   c.Decimals,
			Wrapped:    c.Wrapped,
		}

		if _, ok := r.bySymbol[m.Symbol]; ok {
			return nil, fmt.Errorf("market %s: duplicate symbol", m.Symbol)
		}

		r.bySymbol[m.Symbol] = m
		r.byPoolToken[m.PoolToken] = m
		r.all = append(r.all, m)
	}

	return r, nil
}

func (r *marketRegistry) Find(ctx context.Context, symbol string) (*core.Market, error) {
	if m, ok := r.bySymbol[strings.ToUpper(symbol)]; ok {
		return m, nil
	}
	return nil, core.ErrMarketNotFound
}

func (r *marketRegistry) FindByPoolToken(ctx context.Context, poolToken common.Address) (*core.Market, error) {
	if m, ok := r.byPoolToken[poolToken]; ok {
		return m, nil
	}
	return nil, core.ErrMarketNotFound
}

func (r *marketRegistry) All(ctx context.Context) ([]*core.Market, error) {
	return r.all, nil
}
