// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/culturepassau/discover/internal/catalog"
	"github.com/culturepassau/discover/internal/config"
	"github.com/culturepassau/discover/internal/feed"
	"github.com/culturepassau/discover/internal/models"
	"github.com/culturepassau/discover/internal/rollout"
	"github.com/culturepassau/discover/internal/search"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := catalog.NewSeedStore()
	engine := feed.NewEngine(store)
	cache := search.NewCacheWithClock(45*time.Second, time.Now)
	handler, err := NewHandler(store, engine, rollout.New(rollout.PhaseFull), cache, 45*time.Second, 30*time.Second)
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.RateLimit = 1000
	cfg.Server.CORSOrigins = []string{"*"}
	return NewRouter(cfg, handler)
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var envelope models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, envelope
}

func TestDiscover_ReturnsFeed(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/discover/user-priya")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Status != "success" {
		t.Fatalf("envelope status = %s", envelope.Status)
	}

	data, _ := json.Marshal(envelope.Data)
	var df models.DiscoverFeed
	if err := json.Unmarshal(data, &df); err != nil {
		t.Fatalf("data is not a DiscoverFeed: %v", err)
	}
	if len(df.Sections) == 0 {
		t.Error("expected sections for seeded user")
	}
	if df.Meta.UserID != "user-priya" {
		t.Errorf("meta user = %s", df.Meta.UserID)
	}
}

func TestDiscover_GuestUserSucceeds(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/discover/stranger?city=Sydney&country=Australia")
	if rec.Code != http.StatusOK {
		t.Fatalf("guest request failed: %d %s", rec.Code, rec.Body.String())
	}
	if envelope.Status != "success" {
		t.Errorf("envelope status = %s", envelope.Status)
	}
}

func TestDiscoverSection_UnknownTypeIs400(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/discover/user-priya/section/bogus")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %+v", envelope.Error)
	}
	for _, key := range feed.SectionKeys() {
		if !strings.Contains(envelope.Error.Message, key) {
			t.Errorf("error message missing valid key %s: %s", key, envelope.Error.Message)
		}
	}
}

func TestDiscoverSection_ValidType(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/discover/user-priya/section/trending")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if envelope.Status != "success" {
		t.Errorf("envelope status = %s", envelope.Status)
	}
}

func TestSearch_EmptyQueryShortCircuits(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search?q=")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var results search.Results
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("data is not Results: %v", err)
	}
	if results.Total != 0 || len(results.Results) != 0 {
		t.Errorf("expected empty results, got %+v", results)
	}
}

func TestSearch_FindsSeedContent(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search?q=onam")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var results search.Results
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("data is not Results: %v", err)
	}
	if results.Total == 0 {
		t.Fatal("expected matches for onam in seed corpus")
	}
	if !strings.HasPrefix(strings.ToLower(results.Results[0].Item.Title), "onam") {
		t.Errorf("expected an Onam title ranked first, got %q", results.Results[0].Item.Title)
	}
	found := false
	for _, r := range results.Results {
		if r.Item.ID == "evt-onam-2026" {
			found = true
		}
	}
	if !found {
		t.Error("expected evt-onam-2026 among the matches")
	}
}

func TestSearch_SecondCallIsCached(t *testing.T) {
	h := newTestServer(t)

	_, first := doGet(t, h, "/api/search?q=diwali")
	if first.Metadata.Cached {
		t.Error("first call must not be cached")
	}
	_, second := doGet(t, h, "/api/search?q=diwali")
	if !second.Metadata.Cached {
		t.Error("second identical call should be served from cache")
	}
}

func TestSearch_TypeAllIsUnfiltered(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search?q=onam&type=all")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var all search.Results
	if err := json.Unmarshal(data, &all); err != nil {
		t.Fatalf("data is not Results: %v", err)
	}
	if all.Total == 0 {
		t.Fatal("expected matches for type=all")
	}

	_, envelope = doGet(t, h, "/api/search?q=onam")
	data, _ = json.Marshal(envelope.Data)
	var bare search.Results
	if err := json.Unmarshal(data, &bare); err != nil {
		t.Fatalf("data is not Results: %v", err)
	}
	if all.Total != bare.Total {
		t.Errorf("type=all returned %d results, no type %d", all.Total, bare.Total)
	}
}

func TestSearch_TypeProfileIsAcceptedEmpty(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search?q=onam&type=profile")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var results search.Results
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("data is not Results: %v", err)
	}
	if results.Total != 0 {
		t.Errorf("catalog has no profiles yet, got %d results", results.Total)
	}
}

func TestSearch_BadTypeIs400(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search?q=onam&type=banana")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Error == nil || envelope.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %+v", envelope.Error)
	}
}

func TestSuggest_EmptyQuery(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search/suggest?q=")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("data shape wrong: %v", err)
	}
	if len(payload.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %v", payload.Suggestions)
	}
}

func TestSuggest_ReturnsTitles(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/search/suggest?q=onam")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("data shape wrong: %v", err)
	}
	if len(payload.Suggestions) == 0 {
		t.Fatal("expected suggestions for onam")
	}
	if !strings.HasPrefix(strings.ToLower(payload.Suggestions[0]), "onam") {
		t.Errorf("expected prefix match first, got %v", payload.Suggestions)
	}
}

func TestRolloutConfig_RequiresUserID(t *testing.T) {
	h := newTestServer(t)

	rec, _ := doGet(t, h, "/api/rollout/config")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestRolloutConfig_ReturnsFlags(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/rollout/config?userId=user-priya")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := json.Marshal(envelope.Data)
	var cfg rollout.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("data is not a rollout config: %v", err)
	}
	if cfg.Phase != rollout.PhaseFull || cfg.Percentage != 100 {
		t.Errorf("unexpected rollout config: %+v", cfg)
	}
	if len(cfg.Features) == 0 {
		t.Error("expected named feature flags")
	}
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	rec, envelope := doGet(t, h, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if envelope.Status != "success" {
		t.Errorf("envelope status = %s", envelope.Status)
	}
}
