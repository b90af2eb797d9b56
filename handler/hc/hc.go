package hc

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"morpho/handler/render"
)

// Handle handle hc request
func Handle(ver string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver))
	return r
}

func handle(version string) http.HandlerFunc {
	b := time.Now()

	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{
			"version": version,
			"uptime":  time.Since(b).String(),
		})
	}
}
