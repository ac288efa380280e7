// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Command server runs the CulturePass Discover HTTP service: the
// personalised feed, weighted search and typeahead, and the staged
// rollout configuration endpoint.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/culturepassau/discover/internal/api"
	"github.com/culturepassau/discover/internal/catalog"
	"github.com/culturepassau/discover/internal/config"
	"github.com/culturepassau/discover/internal/feed"
	"github.com/culturepassau/discover/internal/logging"
	"github.com/culturepassau/discover/internal/rollout"
	"github.com/culturepassau/discover/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("configuration load failed")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	store := catalog.NewSeedStore()
	engine := feed.NewEngine(store)
	roll := rollout.New(cfg.Rollout.Phase)
	cache := search.NewCache(cfg.Search.CacheTTL)

	handler, err := api.NewHandler(store, engine, roll, cache, cfg.Search.CacheTTL, cfg.Search.SuggestCacheTTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("handler initialisation failed")
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      api.NewRouter(cfg, handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logging.Info().
			Str("addr", cfg.Addr()).
			Str("rollout_phase", cfg.Rollout.Phase).
			Msg("discover service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logging.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
	logging.Info().Msg("stopped")
}
