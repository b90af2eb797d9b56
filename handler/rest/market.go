package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"golang.org/x/sync/errgroup"

	"morpho/core"
	"morpho/handler/render"
	"morpho/handler/views"
	"morpho/pkg/fixedpoint"
)

func marketView(r *http.Request, svc Services, market *core.Market) (*views.Market, error) {
	ctx := r.Context()

	supplyAPR, err := svc.Positions.AverageSupplyAPR(ctx, market)
	if err != nil {
		return nil, err
	}

	borrowAPR, err := svc.Positions.AverageBorrowAPR(ctx, market)
	if err != nil {
		return nil, err
	}

	return &views.Market{
		Market:    market,
		SupplyAPR: fixedpoint.ToDecimal(supplyAPR, 18),
		BorrowAPR: fixedpoint.ToDecimal(borrowAPR, 18),
	}, nil
}

func marketsHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		markets, err := svc.Registry.All(r.Context())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		marketViews := make([]*views.Market, len(markets))

		g, _ := errgroup.WithContext(r.Context())
		for idx, market := range markets {
			idx, market := idx, market
			g.Go(func() error {
				v, err := marketView(r, svc, market)
				if err != nil {
					return err
				}
				marketViews[idx] = v
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, marketViews)
	}
}

func marketHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		market, err := svc.Registry.Find(r.Context(), chi.URLParam(r, "symbol"))
		if err != nil {
			render.NotFoundRequest(w, errors.New("market not found"))
			return
		}

		v, err := marketView(r, svc, market)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, v)
	}
}
