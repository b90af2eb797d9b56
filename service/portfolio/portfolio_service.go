package portfolio

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fox-one/pkg/logger"
	"github.com/gofrs/uuid"
	"github.com/holiman/uint256"

	"morpho/core"
)

type portfolioService struct {
	router     core.IRouter
	tokens     core.IERC20
	wrapper    core.IWrappedNative
	operations core.IOperationStore
	routerAddr common.Address
	account    common.Address
}

// New new portfolio service acting for the given account. routerAddr is
// the spender granted allowances.
func New(
	router core.IRouter,
	tokens core.IERC20,
	wrapper core.IWrappedNative,
	operations core.IOperationStore,
	routerAddr common.Address,
	account common.Address,
) core.IPortfolioService {
	return &portfolioService{
		router:     router,
		tokens:     tokens,
		wrapper:    wrapper,
		operations: operations,
		routerAddr: routerAddr,
		account:    account,
	}
}

// step one side effect and how to undo it. Compensations run in reverse
// order when a later step fails, so a half-applied mutation is unwound
// rather than left dangling.
type step struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

func (s *portfolioService) execute(ctx context.Context, action string, market *core.Market, amount *uint256.Int, steps []step) (*core.Operation, error) {
	if amount == nil || amount.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	log := logger.FromContext(ctx).WithField("action", action).WithField("symbol", market.Symbol)

	op := &core.Operation{
		TraceID: uuid.Must(uuid.NewV4()).String(),
		Action:  action,
		Symbol:  market.Symbol,
		Amount:  amount.Dec(),
		Status:  core.OperationStatusPending,
	}

	if err := s.operations.Create(ctx, op); err != nil {
		return nil, err
	}

	for i, st := range steps {
		if err := st.run(ctx); err != nil {
			log.WithError(err).Errorln("step failed:", st.name)

			for j := i - 1; j >= 0; j-- {
				if steps[j].compensate == nil {
					continue
				}
				if cerr := steps[j].compensate(ctx); cerr != nil {
					log.WithError(cerr).Errorln("compensation failed:", steps[j].name)
				}
			}

			op.Status = core.OperationStatusCompensated
			op.FailedAt = st.name
			if uerr := s.operations.Update(ctx, op); uerr != nil {
				log.WithError(uerr).Errorln("update operation")
			}

			return op, fmt.Errorf("%s %s: %w", action, st.name, err)
		}
	}

	op.Status = core.OperationStatusDone
	if err := s.operations.Update(ctx, op); err != nil {
		log.WithError(err).Errorln("update operation")
	}

	return op, nil
}

// allowance for exactly amount; the compensation resets it to zero so a
// failed run leaves no spendable residue with the router
func (s *portfolioService) approveStep(market *core.Market, amount *uint256.Int) step {
	return step{
		name: "approve",
		run: func(ctx context.Context) error {
			return s.tokens.Approve(ctx, market.Underlying, s.routerAddr, amount)
		},
		compensate: func(ctx context.Context) error {
			return s.tokens.Approve(ctx, market.Underlying, s.routerAddr, uint256.NewInt(0))
		},
	}
}

func (s *portfolioService) wrapStep(amount *uint256.Int) step {
	return step{
		name: "wrap",
		run: func(ctx context.Context) error {
			return s.wrapper.Wrap(ctx, amount)
		},
		compensate: func(ctx context.Context) error {
			return s.wrapper.Unwrap(ctx, amount)
		},
	}
}

func (s *portfolioService) Supply(ctx context.Context, market *core.Market, amount *uint256.Int) (*core.Operation, error) {
	var steps []step
	if market.Wrapped {
		steps = append(steps, s.wrapStep(amount))
	}
	steps = append(steps,
		s.approveStep(market, amount),
		step{
			name: "supply",
			run: func(ctx context.Context) error {
				return s.router.Supply(ctx, market, s.account, amount)
			},
		},
	)

	return s.execute(ctx, core.ActionSupply, market, amount, steps)
}

func (s *portfolioService) Withdraw(ctx context.Context, market *core.Market, amount *uint256.Int) (*core.Operation, error) {
	steps := []step{
		{
			name: "withdraw",
			run: func(ctx context.Context) error {
				return s.router.Withdraw(ctx, market, amount)
			},
		},
	}
	if market.Wrapped {
		// the router hands back the wrapped token; a second step turns it
		// native again
		steps = append(steps, step{
			name: "unwrap",
			run: func(ctx context.Context) error {
				return s.wrapper.Unwrap(ctx, amount)
			},
		})
	}

	return s.execute(ctx, core.ActionWithdraw, market, amount, steps)
}

func (s *portfolioService) Borrow(ctx context.Context, market *core.Market, amount *uint256.Int) (*core.Operation, error) {
	steps := []step{
		{
			name: "borrow",
			run: func(ctx context.Context) error {
				return s.router.Borrow(ctx, market, amount)
			},
		},
	}
	if market.Wrapped {
		steps = append(steps, step{
			name: "unwrap",
			run: func(ctx context.Context) error {
				return s.wrapper.Unwrap(ctx, amount)
			},
		})
	}

	return s.execute(ctx, core.ActionBorrow, market, amount, steps)
}

func (s *portfolioService) Repay(ctx context.Context, market *core.Market, amount *uint256.Int) (*core.Operation, error) {
	var steps []step
	if market.Wrapped {
		steps = append(steps, s.wrapStep(amount))
	}
	steps = append(steps,
		s.approveStep(market, amount),
		step{
			name: "repay",
			run: func(ctx context.Context) error {
				return s.router.Repay(ctx, market, s.account, amount)
			},
		},
	)

	return s.execute(ctx, core.ActionRepay, market, amount, steps)
}
