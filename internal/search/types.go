// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package search implements weighted full-text relevance ranking,
// typeahead suggestion and the TTL cache fronting both. Scoring is
// integer and additive over title/subtitle/description/tag fields, with
// trigram similarity providing fuzzy tolerance for typos.
package search

import (
	"time"

	"github.com/culturepassau/discover/internal/models"
)

// Item is the flat searchable projection of any catalog content type.
type Item struct {
	ID          string             `json:"id"`
	Kind        models.ContentKind `json:"kind"`
	Title       string             `json:"title"`
	Subtitle    string             `json:"subtitle,omitempty"`
	Description string             `json:"description,omitempty"`
	City        string             `json:"city,omitempty"`
	Country     string             `json:"country,omitempty"`
	Tags        []string           `json:"tags,omitempty"`

	// Date is set only for dated content (events). Items without a
	// date always pass date-window filters.
	Date *time.Time `json:"date,omitempty"`
}

// Query carries the full set of search parameters. Zero values mean
// "no constraint" for every field except Q.
type Query struct {
	Q         string
	Type      models.ContentKind
	City      string
	Country   string
	Tags      []string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// Result pairs a matched item with its relevance score.
type Result struct {
	Item  Item `json:"item"`
	Score int  `json:"score"`
}

// Results is one page of ranked matches. Total counts every match, not
// just the returned page.
type Results struct {
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"pageSize"`
	Results  []Result `json:"results"`
}
