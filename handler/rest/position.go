package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"morpho/handler/param"
	"morpho/handler/render"
	"morpho/handler/views"
)

func positionHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Account string `json:"account"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		account, ok := accountParam(svc, params.Account)
		if !ok {
			render.BadRequest(w, errors.New("bad account address"))
			return
		}

		ctx := r.Context()
		market, err := svc.Registry.Find(ctx, chi.URLParam(r, "symbol"))
		if err != nil {
			render.NotFoundRequest(w, errors.New("market not found"))
			return
		}

		supply, err := svc.Positions.SupplyBalance(ctx, market, account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		supplyUSD, err := svc.Positions.SupplyBalanceUSD(ctx, market, account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		borrow, err := svc.Positions.BorrowBalance(ctx, market, account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		borrowUSD, err := svc.Positions.BorrowBalanceUSD(ctx, market, account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, &views.Position{
			Symbol: market.Symbol,
			Supply: views.NewBalance(market, supply, supplyUSD),
			Borrow: views.NewBalance(market, borrow, borrowUSD),
		})
	}
}
