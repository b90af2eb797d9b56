package rewards

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"

	"morpho/core"
)

type rewardsService struct {
	lens       core.IRewardsLens
	router     core.IRouter
	operations core.IOperationStore
	account    common.Address
}

// New new rewards service
func New(lens core.IRewardsLens, router core.IRouter, operations core.IOperationStore, account common.Address) core.IRewardsService {
	return &rewardsService{
		lens:       lens,
		router:     router,
		operations: operations,
		account:    account,
	}
}

func poolTokens(markets []*core.Market) []common.Address {
	tokens := make([]common.Address, 0, len(markets))
	for _, m := range markets {
		tokens = append(tokens, m.PoolToken)
	}
	return tokens
}

// Unclaimed recomputed by the protocol on every call
func (s *rewardsService) Unclaimed(ctx context.Context, account common.Address, markets []*core.Market) (*uint256.Int, error) {
	return s.lens.Unclaimed(ctx, account, poolTokens(markets))
}

func (s *rewardsService) Claim(ctx context.Context, markets []*core.Market) (*core.Operation, error) {
	log := logger.FromContext(ctx).WithField("action", core.ActionClaim)

	op := &core.Operation{
		TraceID: uuid.Must(uuid.NewV4()).String(),
		Action:  core.ActionClaim,
		Symbol:  "*",
		Amount:  "0",
		Status:  core.OperationStatusPending,
	}

	if err := s.operations.Create(ctx, op); err != nil {
		return nil, err
	}

	claimed, err := s.router.ClaimRewards(ctx, poolTokens(markets))
	if err != nil {
		op.Status = core.OperationStatusCompensated
		op.FailedAt = "claim"
		if uerr := s.operations.Update(ctx, op); uerr != nil {
			log.WithError(uerr).Errorln("update operation")
		}
		return op, err
	}

	op.Amount = claimed.Dec()
	op.Status = core.OperationStatusDone
	if err := s.operations.Update(ctx, op); err != nil {
		log.WithError(err).Errorln("update operation")
	}

	return op, nil
}
