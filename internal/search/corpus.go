// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package search

import (
	"context"

	"github.com/culturepassau/discover/internal/catalog"
	"github.com/culturepassau/discover/internal/models"
)

// BuildCorpus projects the whole catalog into the flat searchable item
// list. Events contribute their community and indigenous tags so tag
// filters work uniformly across content kinds.
func BuildCorpus(ctx context.Context, store catalog.Store) ([]Item, error) {
	var corpus []Item

	for _, e := range store.Events() {
		tags := make([]string, 0, len(e.IndigenousTags)+1)
		if e.CommunityTag != "" {
			tags = append(tags, e.CommunityTag)
		}
		tags = append(tags, e.IndigenousTags...)
		d := e.Date
		corpus = append(corpus, Item{
			ID:          e.ID,
			Kind:        models.KindEvent,
			Title:       e.Title,
			Subtitle:    e.Subtitle,
			Description: e.Description,
			City:        e.City,
			Country:     e.Country,
			Tags:        tags,
			Date:        &d,
		})
	}

	communities, err := store.GetAllCommunities(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range communities {
		corpus = append(corpus, Item{
			ID:          c.ID,
			Kind:        models.KindCommunity,
			Title:       c.Name,
			Description: c.Description,
			City:        c.City,
			Country:     c.Country,
			Tags:        c.Tags,
		})
	}

	for _, b := range store.Businesses() {
		corpus = append(corpus, Item{
			ID:          b.ID,
			Kind:        models.KindBusiness,
			Title:       b.Name,
			Description: b.Description,
			City:        b.City,
			Country:     b.Country,
			Tags:        b.Tags,
		})
	}

	for _, a := range store.Activities() {
		corpus = append(corpus, Item{
			ID:          a.ID,
			Kind:        models.KindActivity,
			Title:       a.Title,
			Description: a.Description,
			City:        a.City,
			Country:     a.Country,
			Tags:        a.Tags,
		})
	}

	for _, s := range store.Spotlights() {
		corpus = append(corpus, Item{
			ID:          s.ID,
			Kind:        models.KindSpotlight,
			Title:       s.Title,
			Description: s.Description,
			Tags:        []string{"First Nations"},
		})
	}

	return corpus, nil
}
