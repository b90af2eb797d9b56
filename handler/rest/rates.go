package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"

	"morpho/handler/render"
	"morpho/handler/views"
	"morpho/pkg/fixedpoint"
)

func ratesHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		market, err := svc.Registry.Find(ctx, chi.URLParam(r, "symbol"))
		if err != nil {
			render.NotFoundRequest(w, errors.New("market not found"))
			return
		}

		supplyRate, err := svc.Positions.AverageSupplyRatePerBlock(ctx, market)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		borrowRate, err := svc.Positions.AverageBorrowRatePerBlock(ctx, market)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		supplyAPR, err := svc.Positions.AverageSupplyAPR(ctx, market)
		if err != nil {
			render.BadRequest(w, err)
			return
		}
		borrowAPR, err := svc.Positions.AverageBorrowAPR(ctx, market)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, &views.Rates{
			Symbol:             market.Symbol,
			SupplyRatePerBlock: fixedpoint.ToDecimal(supplyRate, 18),
			BorrowRatePerBlock: fixedpoint.ToDecimal(borrowRate, 18),
			SupplyAPR:          fixedpoint.ToDecimal(supplyAPR, 18),
			BorrowAPR:          fixedpoint.ToDecimal(borrowAPR, 18),
		})
	}
}

func snapshotsHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		market, err := svc.Registry.Find(ctx, chi.URLParam(r, "symbol"))
		if err != nil {
			render.NotFoundRequest(w, errors.New("market not found"))
			return
		}

		snapshots, err := svc.Snapshots.List(ctx, market.Symbol, 100)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, snapshots)
	}
}
