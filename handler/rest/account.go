package rest

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"morpho/handler/param"
	"morpho/handler/render"
	"morpho/pkg/fixedpoint"
)

func healthFactorHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Account   string          `json:"account"`
			Threshold decimal.Decimal `json:"threshold"`
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

		if params.Threshold.IsZero() {
			params.Threshold = decimal.RequireFromString("1.05")
		}

		threshold, err := fixedpoint.FromDecimal(params.Threshold, 18)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		ctx := r.Context()
		hf, err := svc.Positions.HealthFactor(ctx, account)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		liquidatable, err := svc.Positions.IsApproxLiquidatable(ctx, account, threshold)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"health_factor": fixedpoint.ToDecimal(hf, 18),
			"threshold":     params.Threshold,
			"liquidatable":  liquidatable,
		})
	}
}

func rewardsHandler(svc Services) http.HandlerFunc {
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
		markets, err := svc.Registry.All(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		unclaimed, err := svc.Rewards.Unclaimed(ctx, account, markets)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"unclaimed": fixedpoint.ToDecimal(unclaimed, 18),
		})
	}
}

func operationsHandler(svc Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			From  uint64 `json:"from"`
			Limit int    `json:"limit"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Limit <= 0 || params.Limit > 500 {
			params.Limit = 100
		}

		ops, err := svc.Operations.List(r.Context(), params.From, params.Limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, ops)
	}
}
