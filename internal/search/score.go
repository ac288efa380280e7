// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"math"
	"strings"
)

// Relevance weights. Title signals dominate, then per-token field hits,
// then fuzzy and location boosts.
const (
	weightTitleExact    = 200
	weightTitlePrefix   = 120
	weightTitleContains = 90
	weightTokenTitle    = 35
	weightTokenSubtitle = 15
	weightTokenDesc     = 8
	weightTagToken      = 20
	weightTrigramScale  = 80
	weightCityMatch     = 30
	weightCountryMatch  = 20
)

// score computes the integer relevance of item against query text q.
// All comparisons are case-insensitive. A zero score means no match.
func score(item Item, q Query) int {
	query := strings.ToLower(strings.TrimSpace(q.Q))
	if query == "" {
		return 0
	}

	title := strings.ToLower(item.Title)
	total := 0

	switch {
	case title == query:
		total += weightTitleExact
	case strings.HasPrefix(title, query):
		total += weightTitlePrefix
	case strings.Contains(title, query):
		total += weightTitleContains
	}

	titleTokens := tokenSet(title)
	subtitleTokens := tokenSet(strings.ToLower(item.Subtitle))
	descTokens := tokenSet(strings.ToLower(item.Description))

	for _, token := range strings.Fields(query) {
		if titleTokens[token] {
			total += weightTokenTitle
		}
		if subtitleTokens[token] {
			total += weightTokenSubtitle
		}
		if descTokens[token] {
			total += weightTokenDesc
		}
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), token) {
				total += weightTagToken
			}
		}
	}

	total += int(math.Round(trigramSimilarity(title, query) * weightTrigramScale))

	if q.City != "" && strings.EqualFold(item.City, q.City) {
		total += weightCityMatch
	}
	if q.Country != "" && strings.EqualFold(item.Country, q.Country) {
		total += weightCountryMatch
	}

	return total
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

// trigramSimilarity returns the Jaccard similarity of the padded
// 3-gram sets of a and b, in [0,1]. Each string is padded with two
// leading and trailing spaces so edge characters contribute trigrams.
func trigramSimilarity(a, b string) float64 {
	ta := trigrams(a)
	tb := trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	intersection := 0
	for g := range ta {
		if tb[g] {
			intersection++
		}
	}
	union := len(ta) + len(tb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func trigrams(s string) map[string]bool {
	padded := "  " + strings.ToLower(s) + "  "
	runes := []rune(padded)
	set := make(map[string]bool)
	for i := 0; i+3 <= len(runes); i++ {
		set[string(runes[i:i+3])] = true
	}
	return set
}
