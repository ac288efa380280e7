// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"math"
	"sort"
	"strings"
)

const (
	// MaxPageSize caps results per page regardless of the request.
	MaxPageSize = 50

	// DefaultPageSize applies when the request gives no page size.
	DefaultPageSize = 20

	// DefaultSuggestLimit is the typeahead result count when the
	// request gives none.
	DefaultSuggestLimit = 8

	weightSuggestPrefix = 100
	weightSuggestScale  = 60
)

// Run filters, scores, ranks and paginates items for the query.
// Zero-score items are dropped. Ties keep the original item order, so
// output is deterministic for a stable corpus.
func Run(items []Item, q Query) Results {
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	var matched []Result
	for _, item := range items {
		if !passesFilters(item, q) {
			continue
		}
		if s := score(item, q); s > 0 {
			matched = append(matched, Result{Item: item, Score: s})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return Results{
		Total:    len(matched),
		Page:     page,
		PageSize: pageSize,
		Results:  matched[start:end],
	}
}

func passesFilters(item Item, q Query) bool {
	if q.Type != "" && item.Kind != q.Type {
		return false
	}
	if q.City != "" && !strings.EqualFold(item.City, q.City) {
		return false
	}
	if q.Country != "" && !strings.EqualFold(item.Country, q.Country) {
		return false
	}
	if len(q.Tags) > 0 && !hasAnyTag(item.Tags, q.Tags) {
		return false
	}
	if item.Date != nil {
		if q.StartDate != nil && item.Date.Before(*q.StartDate) {
			return false
		}
		if q.EndDate != nil && item.Date.After(*q.EndDate) {
			return false
		}
	}
	return true
}

func hasAnyTag(itemTags, queryTags []string) bool {
	for _, qt := range queryTags {
		for _, it := range itemTags {
			if strings.EqualFold(it, qt) {
				return true
			}
		}
	}
	return false
}

// Suggest ranks distinct item titles for typeahead completion. A title
// starting with the trimmed prefix scores 100; otherwise it scores its
// trigram similarity scaled to 60. Zero scores are dropped and the top
// limit titles are returned highest first.
func Suggest(items []Item, prefix string, limit int) []string {
	trimmed := strings.ToLower(strings.TrimSpace(prefix))
	if trimmed == "" {
		return nil
	}
	if limit < 1 {
		limit = DefaultSuggestLimit
	}

	type scored struct {
		title string
		score int
	}

	seen := make(map[string]bool)
	var candidates []scored
	for _, item := range items {
		lower := strings.ToLower(item.Title)
		if item.Title == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		s := 0
		if strings.HasPrefix(lower, trimmed) {
			s = weightSuggestPrefix
		} else {
			s = int(math.Round(trigramSimilarity(lower, trimmed) * weightSuggestScale))
		}
		if s > 0 {
			candidates = append(candidates, scored{title: item.Title, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	titles := make([]string, len(candidates))
	for i, c := range candidates {
		titles[i] = c.title
	}
	return titles
}
