// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/culturepassau/discover/internal/affinity"
	"github.com/culturepassau/discover/internal/geo"
	"github.com/culturepassau/discover/internal/models"
)

// Near You scoring weights. The proximity bonus decays by a point per
// ten kilometres from the user.
const (
	nearYouCityScore    = 10.0
	nearYouCountryScore = 5.0
	nearYouMaxProximity = 10.0

	nearYouLimit     = 10
	recommendedLimit = 15
	trendingLimit    = 10
	exploreLimit     = 10
)

// nearYou ranks events by city/country match plus coordinate proximity
// within the user's radius. Included events join the dedup set.
func (e *Engine) nearYou(fc *feedContext) *models.DiscoverSection {
	user := fc.user

	type scored struct {
		event models.Event
		score float64
	}
	var candidates []scored

	for _, evt := range e.store.Events() {
		score := 0.0
		if user.City != "" && strings.EqualFold(evt.City, user.City) {
			score = nearYouCityScore
		} else if user.Country != "" && strings.EqualFold(evt.Country, user.Country) {
			score = nearYouCountryScore
		}

		if user.Latitude != nil && user.Longitude != nil {
			if coords, ok := geo.LookupCity(evt.City, evt.Country); ok {
				d := geo.DistanceKm(*user.Latitude, *user.Longitude, coords.Latitude, coords.Longitude)
				if d <= user.RadiusKm {
					if bonus := nearYouMaxProximity - d/10; bonus > 0 {
						score += bonus
					}
				}
			}
		}

		if score > 0 {
			candidates = append(candidates, scored{event: evt, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > nearYouLimit {
		candidates = candidates[:nearYouLimit]
	}

	items := make([]models.ContentItem, 0, len(candidates))
	for _, c := range candidates {
		fc.shown[c.event.ID] = true
		items = append(items, models.EventItem(c.event))
	}

	return &models.DiscoverSection{
		Title:    titleNearYou,
		Subtitle: "Happening around " + firstNonEmpty(user.City, "you"),
		Type:     models.SectionEvents,
		Items:    items,
		Priority: priorityNearYou,
	}
}

// communityAffinityTags flattens the user's joined community names
// through the affinity mapper into a lower-cased tag set.
func communityAffinityTags(joined []models.Community) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range joined {
		for _, tag := range affinity.TagsForCommunity(c.Name) {
			lower := strings.ToLower(tag)
			if !seen[lower] {
				seen[lower] = true
				tags = append(tags, lower)
			}
		}
	}
	return tags
}

// tagOverlaps reports whether a (lower-cased) candidate string overlaps
// any affinity tag in either containment direction.
func tagOverlaps(candidate string, tags []string) bool {
	if candidate == "" {
		return false
	}
	for _, tag := range tags {
		if strings.Contains(candidate, tag) || strings.Contains(tag, candidate) {
			return true
		}
	}
	return false
}

// yourCommunities mixes events and communities matching the user's
// joined-community affinity tags, events first. Included events join
// the dedup set.
func (e *Engine) yourCommunities(fc *feedContext) *models.DiscoverSection {
	if len(fc.joined) == 0 {
		return nil
	}
	tags := communityAffinityTags(fc.joined)

	var items []models.ContentItem
	for _, evt := range e.store.Events() {
		if tagOverlaps(strings.ToLower(evt.CommunityTag), tags) {
			fc.shown[evt.ID] = true
			items = append(items, models.EventItem(evt))
		}
	}
	for _, com := range fc.joined {
		if tagOverlaps(strings.ToLower(com.Name), tags) {
			items = append(items, models.CommunityItem(com))
		}
	}

	return &models.DiscoverSection{
		Title:    titleCommunities,
		Subtitle: "From the communities you belong to",
		Type:     models.SectionMixed,
		Items:    items,
		Priority: priorityCommunities,
	}
}

// firstNationsSpotlight unions indigenous-tagged events, spotlight
// records, indigenous-owned businesses and indigenous activities.
// Gated by the user's visibility preference.
func (e *Engine) firstNationsSpotlight(fc *feedContext) *models.DiscoverSection {
	if !fc.user.IndigenousVisibilityEnabled {
		return nil
	}

	var items []models.ContentItem
	for _, evt := range e.store.Events() {
		if len(evt.IndigenousTags) == 0 {
			continue
		}
		fc.shown[evt.ID] = true
		items = append(items, models.EventItem(evt))
	}
	for _, s := range e.store.Spotlights() {
		items = append(items, models.SpotlightItem(s))
	}
	for _, b := range e.store.Businesses() {
		if b.IndigenousOwned {
			items = append(items, models.BusinessItem(b))
		}
	}
	for _, a := range e.store.Activities() {
		if a.Indigenous {
			items = append(items, models.ActivityItem(a))
		}
	}

	return &models.DiscoverSection{
		Title:    titleFirstNations,
		Subtitle: "Celebrating the world's oldest living cultures",
		Type:     models.SectionSpotlight,
		Items:    items,
		Priority: priorityFirstNations,
	}
}

// fromYourHomeland surfaces events tagged with the user's origin
// country affinity tags. Gated by the homeland preference and an
// origin country that maps to tags.
func (e *Engine) fromYourHomeland(fc *feedContext) *models.DiscoverSection {
	user := fc.user
	if !user.HomelandContentEnabled || user.OriginCountry == "" {
		return nil
	}
	tags := affinity.TagsForCountry(user.OriginCountry)
	if len(tags) == 0 {
		return nil
	}

	var items []models.ContentItem
	for _, evt := range e.store.Events() {
		if evt.CommunityTag == "" {
			continue
		}
		for _, tag := range tags {
			if strings.EqualFold(evt.CommunityTag, tag) {
				fc.shown[evt.ID] = true
				items = append(items, models.EventItem(evt))
				break
			}
		}
	}

	return &models.DiscoverSection{
		Title:    titleHomeland,
		Subtitle: fmt.Sprintf("Events connected to %s", user.OriginCountry),
		Type:     models.SectionEvents,
		Items:    items,
		Priority: priorityHomeland,
	}
}

// Recommended scoring weights.
const (
	recScoreCity       = 5
	recScoreCountry    = 3
	recScoreAffinity   = 2
	recScoreIndigenous = 1
	recScoreFeatured   = 1
)

// recommended scores the events not already shown. Unlike the earlier
// sections its picks do not join the dedup set, so Trending may repeat
// them.
func (e *Engine) recommended(fc *feedContext) *models.DiscoverSection {
	user := fc.user
	tags := communityAffinityTags(fc.joined)

	type scored struct {
		event models.Event
		score int
	}
	var candidates []scored

	for _, evt := range e.store.Events() {
		if fc.shown[evt.ID] {
			continue
		}
		score := 0
		if user.City != "" && strings.EqualFold(evt.City, user.City) {
			score += recScoreCity
		}
		if user.Country != "" && strings.EqualFold(evt.Country, user.Country) {
			score += recScoreCountry
		}
		if tagOverlaps(strings.ToLower(evt.CommunityTag), tags) {
			score += recScoreAffinity
		}
		if user.IndigenousVisibilityEnabled && len(evt.IndigenousTags) > 0 {
			score += recScoreIndigenous
		}
		if evt.Featured {
			score += recScoreFeatured
		}
		if score > 0 {
			candidates = append(candidates, scored{event: evt, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > recommendedLimit {
		candidates = candidates[:recommendedLimit]
	}

	items := make([]models.ContentItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, models.EventItem(c.event))
	}

	return &models.DiscoverSection{
		Title:    titleRecommended,
		Subtitle: "Picked for your interests",
		Type:     models.SectionEvents,
		Items:    items,
		Priority: priorityRecommended,
	}
}

// trending ranks all events by attendance, ignoring the dedup set.
func (e *Engine) trending() *models.DiscoverSection {
	events := e.store.Events()
	ranked := make([]models.Event, len(events))
	copy(ranked, events)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Attending > ranked[j].Attending
	})
	if len(ranked) > trendingLimit {
		ranked = ranked[:trendingLimit]
	}

	items := make([]models.ContentItem, 0, len(ranked))
	for _, evt := range ranked {
		items = append(items, models.EventItem(evt))
	}

	return &models.DiscoverSection{
		Title:    titleTrending,
		Subtitle: "What everyone is attending",
		Type:     models.SectionEvents,
		Items:    items,
		Priority: priorityTrending,
	}
}

// explore lists communities the user has not joined, in catalog order.
// A listing failure is returned to the orchestrator, which logs and
// omits the section rather than failing the feed.
func (e *Engine) explore(ctx context.Context, fc *feedContext) (*models.DiscoverSection, error) {
	all, err := e.store.GetAllCommunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}

	joined := make(map[string]bool, len(fc.joined))
	for _, c := range fc.joined {
		joined[c.ID] = true
	}

	var items []models.ContentItem
	for _, c := range all {
		if joined[c.ID] {
			continue
		}
		items = append(items, models.CommunityItem(c))
		if len(items) == exploreLimit {
			break
		}
	}

	return &models.DiscoverSection{
		Title:    titleExplore,
		Subtitle: "Find your people",
		Type:     models.SectionCommunities,
		Items:    items,
		Priority: priorityExplore,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
