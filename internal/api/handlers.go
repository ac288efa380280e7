// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package api wires the discover service's HTTP surface: the feed and
// per-section endpoints, weighted search and typeahead suggest, the
// rollout config endpoint, health and prometheus metrics.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/culturepassau/discover/internal/catalog"
	"github.com/culturepassau/discover/internal/feed"
	"github.com/culturepassau/discover/internal/metrics"
	"github.com/culturepassau/discover/internal/models"
	"github.com/culturepassau/discover/internal/rollout"
	"github.com/culturepassau/discover/internal/search"
)

// Handler holds the services behind the HTTP endpoints. All
// dependencies are injected at construction; there are no package
// singletons.
type Handler struct {
	engine  *feed.Engine
	rollout *rollout.Service
	cache   *search.Cache
	corpus  []search.Item

	searchTTL  time.Duration
	suggestTTL time.Duration

	started time.Time
}

// NewHandler builds the handler and assembles the search corpus from
// the catalog once; the in-memory catalog is immutable for the process
// lifetime.
func NewHandler(
	store catalog.Store,
	engine *feed.Engine,
	roll *rollout.Service,
	cache *search.Cache,
	searchTTL, suggestTTL time.Duration,
) (*Handler, error) {
	corpus, err := search.BuildCorpus(context.Background(), store)
	if err != nil {
		return nil, fmt.Errorf("build search corpus: %w", err)
	}
	return &Handler{
		engine:     engine,
		rollout:    roll,
		cache:      cache,
		corpus:     corpus,
		searchTTL:  searchTTL,
		suggestTTL: suggestTTL,
		started:    time.Now(),
	}, nil
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.started).String(),
	}, time.Now(), false)
}

// Discover serves GET /api/discover/{userID}. Optional city/country
// query parameters personalise guests and profiles without a location.
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")

	df, err := h.engine.BuildFeed(r.Context(), userID, city, country)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to build discover feed", err)
		return
	}

	metrics.FeedBuildDuration.Observe(time.Since(started).Seconds())
	for _, s := range df.Sections {
		metrics.FeedSectionItems.With(prometheus.Labels{"section": s.Title}).Observe(float64(len(s.Items)))
	}

	respondSuccess(w, df, started, false)
}

// DiscoverSection serves GET /api/discover/{userID}/section/{sectionType}.
// The section is built with the same dedup state it would have in the
// full feed; an unknown section type is a 400 listing the valid keys.
func (h *Handler) DiscoverSection(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := chi.URLParam(r, "userID")
	key := chi.URLParam(r, "sectionType")
	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")

	section, err := h.engine.BuildSection(r.Context(), userID, key, city, country)
	if errors.Is(err, feed.ErrUnknownSection) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("unknown section type %q, valid types: %s", key, strings.Join(feed.SectionKeys(), ", ")), nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to build section", err)
		return
	}

	respondSuccess(w, map[string]any{
		"section": section,
		"meta": map[string]any{
			"userId":      userID,
			"sectionType": key,
			"generatedAt": time.Now().UTC(),
		},
	}, started, false)
}

// searchRequest carries the validated search parameters. A type of
// "all" (or absent) means no kind filter; "profile" is accepted even
// though the current catalog carries no profile records.
type searchRequest struct {
	Type     string `validate:"omitempty,oneof=all event community business profile activity spotlight"`
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=50"`
}

// Search serves GET /api/search. An empty query short-circuits to an
// empty page without touching the cache.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	page := getIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := getIntParam(r, "pageSize", search.DefaultPageSize)
	if pageSize < 1 {
		pageSize = search.DefaultPageSize
	}
	if pageSize > search.MaxPageSize {
		pageSize = search.MaxPageSize
	}

	req := searchRequest{
		Type:     r.URL.Query().Get("type"),
		Page:     page,
		PageSize: pageSize,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Type == "all" {
		req.Type = ""
	}

	if q == "" {
		respondSuccess(w, search.Results{Page: page, PageSize: pageSize, Results: []search.Result{}}, started, false)
		return
	}

	query := search.Query{
		Q:         q,
		Type:      models.ContentKind(req.Type),
		City:      r.URL.Query().Get("city"),
		Country:   r.URL.Query().Get("country"),
		Tags:      getListParam(r, "tags"),
		StartDate: getDateParam(r, "startDate"),
		EndDate:   getDateParam(r, "endDate"),
		Page:      page,
		PageSize:  pageSize,
	}

	key := search.BuildCacheKey("search", query)
	if cached, ok := h.cache.Get(key); ok {
		metrics.SearchCacheHits.With(prometheus.Labels{"method": "search"}).Inc()
		respondSuccess(w, cached, started, true)
		return
	}
	metrics.SearchCacheMisses.With(prometheus.Labels{"method": "search"}).Inc()

	results := search.Run(h.corpus, query)
	metrics.SearchResults.Observe(float64(results.Total))
	h.cache.SetWithTTL(key, results, h.searchTTL)

	respondSuccess(w, results, started, false)
}

// Suggest serves GET /api/search/suggest. An empty query returns an
// empty suggestion list without touching the cache.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondSuccess(w, map[string]any{"suggestions": []string{}}, started, false)
		return
	}
	limit := getIntParam(r, "limit", search.DefaultSuggestLimit)
	if limit < 1 {
		limit = search.DefaultSuggestLimit
	}

	query := search.Query{Q: q, PageSize: limit}
	key := search.BuildCacheKey("suggest", query)
	if cached, ok := h.cache.Get(key); ok {
		metrics.SearchCacheHits.With(prometheus.Labels{"method": "suggest"}).Inc()
		respondSuccess(w, cached, started, true)
		return
	}
	metrics.SearchCacheMisses.With(prometheus.Labels{"method": "suggest"}).Inc()

	suggestions := search.Suggest(h.corpus, q, limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	payload := map[string]any{"suggestions": suggestions}
	h.cache.SetWithTTL(key, payload, h.suggestTTL)

	respondSuccess(w, payload, started, false)
}

// RolloutConfig serves GET /api/rollout/config?userId=.
func (h *Handler) RolloutConfig(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "userId query parameter is required", nil)
		return
	}

	respondSuccess(w, h.rollout.ConfigFor(userID), started, false)
}
