// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// cacheKeyQuery is the canonical serialization of a Query for cache
// keying. Tags are sorted so differently-ordered but semantically
// identical tag lists produce the same key.
type cacheKeyQuery struct {
	Q         string   `json:"q"`
	Type      string   `json:"type,omitempty"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Page      int      `json:"page"`
	PageSize  int      `json:"pageSize"`
}

// BuildCacheKey returns a stable cache key for the query, prefixed by
// method ("search" or "suggest").
func BuildCacheKey(method string, q Query) string {
	canonical := cacheKeyQuery{
		Q:        strings.ToLower(strings.TrimSpace(q.Q)),
		Type:     string(q.Type),
		City:     strings.ToLower(q.City),
		Country:  strings.ToLower(q.Country),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if len(q.Tags) > 0 {
		canonical.Tags = make([]string, len(q.Tags))
		for i, t := range q.Tags {
			canonical.Tags[i] = strings.ToLower(t)
		}
		sort.Strings(canonical.Tags)
	}
	if q.StartDate != nil {
		canonical.StartDate = q.StartDate.UTC().Format("2006-01-02")
	}
	if q.EndDate != nil {
		canonical.EndDate = q.EndDate.UTC().Format("2006-01-02")
	}

	data, err := json.Marshal(canonical)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, canonical)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
