package position

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"morpho/core"
	"morpho/internal/morpho"
)

type positionService struct {
	lens          core.ILens
	oracle        core.IPriceOracle
	scaler        morpho.PriceScaler
	blocksPerYear uint64
}

// New new position service. The scaler matches the deployment's backend:
// Compound-style oracles price at 36 - underlyingDecimals decimals,
// Aave-style at a fixed 18.
func New(lens core.ILens, oracle core.IPriceOracle, backend core.Backend, blocksPerYear uint64) core.IPositionService {
	var scaler morpho.PriceScaler = morpho.CompoundPriceScaler{}
	if backend == core.BackendAave {
		scaler = morpho.AavePriceScaler{}
	}

	return &positionService{
		lens:          lens,
		oracle:        oracle,
		scaler:        scaler,
		blocksPerYear: blocksPerYear,
	}
}

func (s *positionService) SupplyBalance(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	return s.lens.SupplyBalance(ctx, market, account)
}

func (s *positionService) BorrowBalance(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	return s.lens.BorrowBalance(ctx, market, account)
}

func (s *positionService) toUSD(ctx context.Context, market *core.Market, pos *core.Position) (*core.Position, error) {
	price, err := s.oracle.Price(ctx, market)
	if err != nil {
		return nil, err
	}

	onPool, err := s.scaler.ToUSD(pos.OnPool, price, market.Decimals)
	if err != nil {
		return nil, err
	}
	p2p, err := s.scaler.ToUSD(pos.P2P, price, market.Decimals)
	if err != nil {
		return nil, err
	}

	return &core.Position{OnPool: onPool, P2P: p2p}, nil
}

func (s *positionService) ValueUSD(ctx context.Context, market *core.Market, amount *uint256.Int) (*uint256.Int, error) {
	price, err := s.oracle.Price(ctx, market)
	if err != nil {
		return nil, err
	}

	return s.scaler.ToUSD(amount, price, market.Decimals)
}

func (s *positionService) SupplyBalanceUSD(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	pos, err := s.lens.SupplyBalance(ctx, market, account)
	if err != nil {
		return nil, err
	}

	return s.toUSD(ctx, market, pos)
}

func (s *positionService) BorrowBalanceUSD(ctx context.Context, market *core.Market, account common.Address) (*core.Position, error) {
	pos, err := s.lens.BorrowBalance(ctx, market, account)
	if err != nil {
		return nil, err
	}

	return s.toUSD(ctx, market, pos)
}

func (s *positionService) AverageSupplyRatePerBlock(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return s.lens.AverageSupplyRatePerBlock(ctx, market)
}

func (s *positionService) AverageBorrowRatePerBlock(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	return s.lens.AverageBorrowRatePerBlock(ctx, market)
}

func (s *positionService) AverageSupplyAPR(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	rate, err := s.lens.AverageSupplyRatePerBlock(ctx, market)
	if err != nil {
		return nil, err
	}

	return morpho.AnnualizePerBlockRate(rate, s.blocksPerYear)
}

func (s *positionService) AverageBorrowAPR(ctx context.Context, market *core.Market) (*uint256.Int, error) {
	rate, err := s.lens.AverageBorrowRatePerBlock(ctx, market)
	if err != nil {
		return nil, err
	}

	return morpho.AnnualizePerBlockRate(rate, s.blocksPerYear)
}

func (s *positionService) UserSupplyRatePerBlock(ctx context.Context, market *core.Market, account common.Address) (*uint256.Int, error) {
	return s.lens.UserSupplyRatePerBlock(ctx, market, account)
}

func (s *positionService) UserBorrowRatePerBlock(ctx context.Context, market *core.Market, account common.Address) (*uint256.Int, error) {
	return s.lens.UserBorrowRatePerBlock(ctx, market, account)
}

func (s *positionService) NextUserSupplyRatePerBlock(ctx context.Context, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return s.lens.NextUserSupplyRatePerBlock(ctx, market, account, amount)
}

func (s *positionService) NextUserBorrowRatePerBlock(ctx context.Context, market *core.Market, account common.Address, amount *uint256.Int) (*uint256.Int, error) {
	return s.lens.NextUserBorrowRatePerBlock(ctx, market, account, amount)
}

func (s *positionService) ExpectedSupplyInterest(ctx context.Context, market *core.Market, account common.Address, nbBlocks uint64) (*uint256.Int, error) {
	pos, err := s.lens.SupplyBalance(ctx, market, account)
	if err != nil {
		return nil, err
	}

	rate, err := s.lens.UserSupplyRatePerBlock(ctx, market, account)
	if err != nil {
		return nil, err
	}

	return morpho.ExpectedInterest(pos.Total(), rate, nbBlocks)
}

func (s *positionService) ExpectedBorrowInterest(ctx context.Context, market *core.Market, account common.Address, nbBlocks uint64) (*uint256.Int, error) {
	pos, err := s.lens.BorrowBalance(ctx, market, account)
	if err != nil {
		return nil, err
	}

	rate, err := s.lens.UserBorrowRatePerBlock(ctx, market, account)
	if err != nil {
		return nil, err
	}

	return morpho.ExpectedInterest(pos.Total(), rate, nbBlocks)
}

func (s *positionService) HealthFactor(ctx context.Context, account common.Address) (*uint256.Int, error) {
	return s.lens.HealthFactor(ctx, account)
}

// IsApproxLiquidatable the health factor is re-read on every call and can
// move between this read and any action taken on the answer.
func (s *positionService) IsApproxLiquidatable(ctx context.Context, account common.Address, threshold *uint256.Int) (bool, error) {
	hf, err := s.lens.HealthFactor(ctx, account)
	if err != nil {
		return false, err
	}

	return hf.Cmp(threshold) <= 0, nil
}
