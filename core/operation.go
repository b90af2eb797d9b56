package core

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// operation actions
const (
	ActionSupply   = "supply"
	ActionWithdraw = "withdraw"
	ActionBorrow   = "borrow"
	ActionRepay    = "repay"
	ActionClaim    = "claim"
)

// operation status
const (
	OperationStatusPending     = "pending"
	OperationStatusDone        = "done"
	OperationStatusCompensated = "compensated"
)

// Operation journal record of one mutator unit of work. Outside the
// chain's execution model nothing makes a multi-step mutation atomic, so
// each side effect records a compensation and a failed run is rolled back
// step by step; the journal keeps the outcome visible either way.
type Operation struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID   string    `sql:"size:36;unique_index:trace_idx" json:"trace_id"`
	Action    string    `sql:"size:16" json:"action"`
	Symbol    string    `sql:"size:20" json:"symbol"`
	Amount    string    `sql:"size:80" json:"amount"`
	Status    string    `sql:"size:16" json:"status"`
	FailedAt  string    `sql:"size:64" json:"failed_at,omitempty"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IOperationStore operation journal store
type IOperationStore interface {
	Create(ctx context.Context, op *Operation) error
	Update(ctx context.Context, op *Operation) error
	Find(ctx context.Context, traceID string) (*Operation, error)
	List(ctx context.Context, from uint64, limit int) ([]*Operation, error)
}

// IPortfolioService state-changing position management for the configured
// account. Each call is all-or-nothing: on failure every applied side
// effect is compensated and the journaled operation ends compensated.
type IPortfolioService interface {
	Supply(ctx context.Context, market *Market, amount *uint256.Int) (*Operation, error)
	Withdraw(ctx context.Context, market *Market, amount *uint256.Int) (*Operation, error)
	Borrow(ctx context.Context, market *Market, amount *uint256.Int) (*Operation, error)
	Repay(ctx context.Context, market *Market, amount *uint256.Int) (*Operation, error)
}

// IRewardsService incentive queries and claiming
type IRewardsService interface {
	Unclaimed(ctx context.Context, account common.Address, markets []*Market) (*uint256.Int, error)
	Claim(ctx context.Context, markets []*Market) (*Operation, error)
}
