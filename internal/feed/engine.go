// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package feed builds the personalised Discover feed: seven ranked
// content sections assembled per user from the catalog, with events
// deduplicated across the personalised sections.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/culturepassau/discover/internal/catalog"
	"github.com/culturepassau/discover/internal/logging"
	"github.com/culturepassau/discover/internal/metrics"
	"github.com/culturepassau/discover/internal/models"
)

// Section priorities. Lower is shown first.
const (
	priorityNearYou      = 1
	priorityCommunities  = 2
	priorityFirstNations = 3
	priorityHomeland     = 4
	priorityRecommended  = 5
	priorityTrending     = 6
	priorityExplore      = 7
)

// Section display titles, also the stable section identifiers.
const (
	titleNearYou      = "Near You"
	titleCommunities  = "Your Communities"
	titleFirstNations = "First Nations Spotlight"
	titleHomeland     = "From Your Homeland"
	titleRecommended  = "Recommended For You"
	titleTrending     = "Trending Events"
	titleExplore      = "Communities to Explore"
)

// Section keys accepted by the per-section endpoint, in build order.
var sectionKeys = []string{
	"nearYou",
	"yourCommunities",
	"firstNationsSpotlight",
	"fromYourHomeland",
	"recommended",
	"trending",
	"explore",
}

// ErrUnknownSection is returned by BuildSection for an unrecognised
// section key. Routes translate it to HTTP 400.
var ErrUnknownSection = errors.New("feed: unknown section type")

// SectionKeys returns the valid per-section endpoint keys.
func SectionKeys() []string {
	keys := make([]string, len(sectionKeys))
	copy(keys, sectionKeys)
	return keys
}

// Engine produces Discover feeds. Stateless per call; all content is
// read from the injected catalog at request time.
type Engine struct {
	store catalog.Store
	now   func() time.Time
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(store catalog.Store) *Engine {
	return NewEngineWithClock(store, time.Now)
}

// NewEngineWithClock creates an Engine with an explicit clock, used by
// tests that need a frozen generatedAt.
func NewEngineWithClock(store catalog.Store, now func() time.Time) *Engine {
	return &Engine{store: store, now: now}
}

// feedContext is the per-request state shared by section builders.
type feedContext struct {
	user   *models.UserProfile
	joined []models.Community

	// shown collects the event IDs included by the four personalised
	// sections. Builders only record into it; Recommended is the one
	// reader, so an event may legitimately appear in several
	// personalised sections (and in Trending) within one feed.
	shown map[string]bool
}

// loadContext fetches the user profile and joined communities. A
// missing user becomes a guest profile built from the optional
// city/country parameters; any other user-lookup failure is fatal to
// the request. A failed memberships lookup degrades to no communities.
func (e *Engine) loadContext(ctx context.Context, userID, city, country string) (*feedContext, error) {
	user, err := e.store.GetUser(ctx, userID)
	switch {
	case errors.Is(err, catalog.ErrUserNotFound):
		user = models.GuestProfile(userID, city, country)
	case err != nil:
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	default:
		if user.City == "" {
			user.City = city
		}
		if user.Country == "" {
			user.Country = country
		}
	}

	joined, err := e.store.GetUserCommunities(ctx, userID)
	if err != nil {
		logging.Warn().Err(err).Str("user_id", userID).Msg("memberships lookup failed, personalising without communities")
		joined = nil
	}

	return &feedContext{
		user:   user,
		joined: joined,
		shown:  make(map[string]bool),
	}, nil
}

// BuildFeed assembles the full Discover feed for one user. Optional
// city/country fill in when the profile has no location. Failures in
// individual sections are logged and the section omitted; only the
// mandatory user lookup can fail the request.
func (e *Engine) BuildFeed(ctx context.Context, userID, city, country string) (*models.DiscoverFeed, error) {
	fc, err := e.loadContext(ctx, userID, city, country)
	if err != nil {
		return nil, err
	}

	var sections []models.DiscoverSection
	for _, key := range sectionKeys {
		section, err := e.buildSection(ctx, fc, key)
		if err != nil {
			logging.Error().Err(err).Str("user_id", userID).Str("section", key).Msg("section build failed, omitting")
			metrics.FeedSectionErrors.With(prometheus.Labels{"section": key}).Inc()
			continue
		}
		if section == nil || len(section.Items) == 0 {
			continue
		}
		sections = append(sections, *section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Priority < sections[j].Priority
	})

	total := 0
	for _, s := range sections {
		total += len(s.Items)
	}

	return &models.DiscoverFeed{
		Sections: sections,
		Meta: models.FeedMeta{
			UserID:      userID,
			City:        fc.user.City,
			Country:     fc.user.Country,
			GeneratedAt: e.now(),
			TotalItems:  total,
		},
	}, nil
}

// BuildSection builds one named section for a user. Earlier sections
// are computed first so the deduplication state matches a full feed:
// a section fetched alone contains exactly the items it would contain
// in the complete feed. Returns ErrUnknownSection for a bad key; a
// valid key with no content yields (nil, nil).
func (e *Engine) BuildSection(ctx context.Context, userID, key, city, country string) (*models.DiscoverSection, error) {
	target := -1
	for i, k := range sectionKeys {
		if k == key {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, ErrUnknownSection
	}

	fc, err := e.loadContext(ctx, userID, city, country)
	if err != nil {
		return nil, err
	}

	for i := 0; i < target; i++ {
		// Run earlier builders only to populate the dedup set.
		if _, err := e.buildSection(ctx, fc, sectionKeys[i]); err != nil {
			logging.Warn().Err(err).Str("section", sectionKeys[i]).Msg("prior section failed while computing dedup state")
		}
	}

	section, err := e.buildSection(ctx, fc, key)
	if err != nil {
		return nil, err
	}
	if section != nil && len(section.Items) == 0 {
		section = nil
	}
	return section, nil
}

func (e *Engine) buildSection(ctx context.Context, fc *feedContext, key string) (*models.DiscoverSection, error) {
	switch key {
	case "nearYou":
		return e.nearYou(fc), nil
	case "yourCommunities":
		return e.yourCommunities(fc), nil
	case "firstNationsSpotlight":
		return e.firstNationsSpotlight(fc), nil
	case "fromYourHomeland":
		return e.fromYourHomeland(fc), nil
	case "recommended":
		return e.recommended(fc), nil
	case "trending":
		return e.trending(), nil
	case "explore":
		return e.explore(ctx, fc)
	default:
		return nil, ErrUnknownSection
	}
}
