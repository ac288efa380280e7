// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/culturepassau/discover/internal/config"
	"github.com/culturepassau/discover/internal/middleware"
)

// NewRouter assembles the chi router: global middleware, rate-limited
// route groups and the metrics endpoint.
func NewRouter(cfg *config.Config, handler *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.Prometheus)

	r.Get("/api/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/discover", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.Server.RateLimit, time.Minute))
		r.Get("/{userID}", handler.Discover)
		r.Get("/{userID}/section/{sectionType}", handler.DiscoverSection)
	})

	r.Route("/api/search", func(r chi.Router) {
		// Typeahead fires per keystroke, so search gets a larger
		// per-IP budget than the feed.
		r.Use(httprate.LimitByIP(cfg.Server.RateLimit*2, time.Minute))
		r.Get("/", handler.Search)
		r.Get("/suggest", handler.Suggest)
	})

	r.Route("/api/rollout", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.Server.RateLimit, time.Minute))
		r.Get("/config", handler.RolloutConfig)
	})

	return r
}
