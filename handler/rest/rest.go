package rest

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"

	"morpho/core"
)

// Services everything the api surface reads from
type Services struct {
	Registry   core.IMarketRegistry
	Positions  core.IPositionService
	Rewards    core.IRewardsService
	Operations core.IOperationStore
	Snapshots  core.IRateSnapshotStore
	// Account default account for position queries when the request does
	// not name one
	Account common.Address
}

// Handle mount the read-only api
func Handle(svc Services) http.Handler {
	r := chi.NewRouter()

	r.Get("/markets", marketsHandler(svc))
	r.Get("/markets/{symbol}", marketHandler(svc))
	r.Get("/markets/{symbol}/rates", ratesHandler(svc))
	r.Get("/markets/{symbol}/snapshots", snapshotsHandler(svc))
	r.Get("/positions/{symbol}", positionHandler(svc))
	r.Get("/health-factor", healthFactorHandler(svc))
	r.Get("/rewards", rewardsHandler(svc))
	r.Get("/operations", operationsHandler(svc))

	return r
}

func accountParam(svc Services, raw string) (common.Address, bool) {
	if raw == "" {
		return svc.Account, true
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}
