// Package api serves projections over HTTP.
package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"DealProjector/internal/recorder"
	"DealProjector/internal/service"
)

// NewRouter wires the projection endpoints. A nil limiter disables rate
// limiting.
func NewRouter(p *service.Projector, rec recorder.Recorder, limiter *rate.Limiter) http.Handler {
	h := &Handler{projector: p, recorder: rec}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if limiter != nil {
		r.Use(rateLimit(limiter))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/projections", h.HandleProject)
		r.Get("/projections/defaults", h.HandleDefaults)
		r.Get("/rehab/catalog", h.HandleRehabCatalog)
		r.Post("/rehab/estimate", h.HandleRehabEstimate)
		r.Get("/runs", h.HandleRecentRuns)
	})

	return r
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Printf("[WARN] rate limit exceeded: %s", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
