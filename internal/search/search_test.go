// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"context"
	"testing"
	"time"

	"github.com/culturepassau/discover/internal/catalog"
	"github.com/culturepassau/discover/internal/models"
)

func testCorpus() []Item {
	d1 := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, time.November, 7, 0, 0, 0, 0, time.UTC)
	return []Item{
		{ID: "e1", Kind: models.KindEvent, Title: "Onam Grand Celebration 2026", Subtitle: "Sadhya feast", Description: "Kerala harvest festival", City: "Sydney", Country: "Australia", Tags: []string{"Malayalee"}, Date: &d1},
		{ID: "e2", Kind: models.KindEvent, Title: "Diwali Festival of Lights", Description: "Festival of lights", City: "Parramatta", Country: "Australia", Tags: []string{"Indian"}, Date: &d2},
		{ID: "c1", Kind: models.KindCommunity, Title: "Sydney Malayalee Association", Description: "Kerala culture in Sydney", City: "Sydney", Country: "Australia", Tags: []string{"Malayalee", "Indian"}},
		{ID: "b1", Kind: models.KindBusiness, Title: "Kerala Kitchen Homebush", Description: "Sadhya meals", City: "Sydney", Country: "Australia", Tags: []string{"Malayalee", "Restaurant"}},
	}
}

func TestRun_ExactTitleRanksFirst(t *testing.T) {
	res := Run(testCorpus(), Query{Q: "Onam Grand Celebration 2026"})
	if res.Total == 0 {
		t.Fatal("expected matches")
	}
	if res.Results[0].Item.ID != "e1" {
		t.Errorf("expected exact title match first, got %s", res.Results[0].Item.ID)
	}
	if res.Results[0].Score < weightTitleExact {
		t.Errorf("exact match score too low: %d", res.Results[0].Score)
	}
}

func TestRun_ZeroScoreExcluded(t *testing.T) {
	res := Run(testCorpus(), Query{Q: "zzzzqqqq"})
	if res.Total != 0 {
		t.Errorf("expected no matches for gibberish, got %d", res.Total)
	}
}

func TestRun_TypeFilter(t *testing.T) {
	res := Run(testCorpus(), Query{Q: "kerala", Type: models.KindBusiness})
	for _, r := range res.Results {
		if r.Item.Kind != models.KindBusiness {
			t.Errorf("type filter leaked kind %s", r.Item.Kind)
		}
	}
	if res.Total == 0 {
		t.Error("expected business match for kerala")
	}
}

func TestRun_CityFilter(t *testing.T) {
	res := Run(testCorpus(), Query{Q: "festival", City: "parramatta"})
	if res.Total != 1 || res.Results[0].Item.ID != "e2" {
		t.Errorf("expected only Parramatta event, got %+v", res.Results)
	}
}

func TestRun_DateWindow(t *testing.T) {
	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	res := Run(testCorpus(), Query{Q: "festival", StartDate: &start})
	for _, r := range res.Results {
		if r.Item.Date != nil && r.Item.Date.Before(start) {
			t.Errorf("date filter leaked %s dated %v", r.Item.ID, r.Item.Date)
		}
	}
}

func TestRun_DatelessItemsPassDateFilter(t *testing.T) {
	start := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	res := Run(testCorpus(), Query{Q: "malayalee", StartDate: &start})
	for _, r := range res.Results {
		if r.Item.Date != nil {
			t.Errorf("dated item %s should be filtered out", r.Item.ID)
		}
	}
	if res.Total == 0 {
		t.Error("expected dateless community/business matches to pass")
	}
}

func TestRun_PaginationRoundTrip(t *testing.T) {
	// Build a corpus with many similar items so pagination spans pages.
	var items []Item
	for i := 0; i < 25; i++ {
		items = append(items, Item{
			ID:    string(rune('a'+i/5)) + string(rune('0'+i%5)),
			Kind:  models.KindEvent,
			Title: "Festival Night " + string(rune('A'+i)),
		})
	}

	page1 := Run(items, Query{Q: "festival", Page: 1, PageSize: 10})
	page2 := Run(items, Query{Q: "festival", Page: 2, PageSize: 10})

	seen := map[string]bool{}
	for _, r := range page1.Results {
		seen[r.Item.ID] = true
	}
	for _, r := range page2.Results {
		if seen[r.Item.ID] {
			t.Errorf("item %s appears on both pages", r.Item.ID)
		}
	}
	if len(page1.Results) > 0 && len(page2.Results) > 0 {
		lastFirst := page1.Results[len(page1.Results)-1].Score
		firstSecond := page2.Results[0].Score
		if firstSecond > lastFirst {
			t.Errorf("score order broken across page boundary: %d then %d", lastFirst, firstSecond)
		}
	}
	if page1.Total != page2.Total {
		t.Errorf("total differs between pages: %d vs %d", page1.Total, page2.Total)
	}
}

func TestRun_PageSizeCap(t *testing.T) {
	res := Run(testCorpus(), Query{Q: "kerala", PageSize: 500})
	if res.PageSize != MaxPageSize {
		t.Errorf("expected page size capped at %d, got %d", MaxPageSize, res.PageSize)
	}
}

func TestRun_StableTieOrder(t *testing.T) {
	items := []Item{
		{ID: "first", Kind: models.KindEvent, Title: "Harmony Day"},
		{ID: "second", Kind: models.KindEvent, Title: "Harmony Day"},
	}
	res := Run(items, Query{Q: "harmony"})
	if len(res.Results) != 2 || res.Results[0].Item.ID != "first" {
		t.Errorf("tie order not stable: %+v", res.Results)
	}
}

func TestSuggest_PrefixBeatsSubstring(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "Best Startup Podcast"},
		{ID: "b", Title: "Startup Night Sydney"},
	}
	got := Suggest(items, "start", 8)
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0] != "Startup Night Sydney" {
		t.Errorf("expected prefix match first, got %v", got)
	}
}

func TestSuggest_DistinctTitles(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "Diwali Festival"},
		{ID: "b", Title: "Diwali Festival"},
	}
	got := Suggest(items, "diwali", 8)
	if len(got) != 1 {
		t.Errorf("expected distinct titles, got %v", got)
	}
}

func TestSuggest_EmptyPrefix(t *testing.T) {
	if got := Suggest(testCorpus(), "   ", 8); got != nil {
		t.Errorf("expected nil for blank prefix, got %v", got)
	}
}

func TestSuggest_LimitApplied(t *testing.T) {
	var items []Item
	for i := 0; i < 20; i++ {
		items = append(items, Item{ID: string(rune('a' + i)), Title: "Festival " + string(rune('A'+i))})
	}
	got := Suggest(items, "festival", 0)
	if len(got) != DefaultSuggestLimit {
		t.Errorf("expected default limit %d, got %d", DefaultSuggestLimit, len(got))
	}
}

func TestTrigramSimilarity_IdenticalStrings(t *testing.T) {
	if sim := trigramSimilarity("onam", "onam"); sim != 1 {
		t.Errorf("identical strings should score 1, got %f", sim)
	}
}

func TestTrigramSimilarity_Typo(t *testing.T) {
	sim := trigramSimilarity("celebration", "celebratoin")
	if sim <= 0 || sim >= 1 {
		t.Errorf("typo similarity should be in (0,1), got %f", sim)
	}
}

func TestBuildCorpus_CoversAllKinds(t *testing.T) {
	store := catalog.NewSeedStore()
	corpus, err := BuildCorpus(context.Background(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kinds := map[models.ContentKind]bool{}
	for _, item := range corpus {
		kinds[item.Kind] = true
	}
	for _, k := range []models.ContentKind{models.KindEvent, models.KindCommunity, models.KindBusiness, models.KindActivity, models.KindSpotlight} {
		if !kinds[k] {
			t.Errorf("corpus missing kind %s", k)
		}
	}
}
