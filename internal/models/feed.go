// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package models

import "time"

// SectionType describes what a feed section contains.
type SectionType string

// The constants below form the full wire enum for Section.Type. The
// current builders emit only a subset; SectionBusinesses and
// SectionActivities are reserved for single-kind sections clients must
// already be able to render.
const (
	// SectionEvents holds only events.
	SectionEvents SectionType = "events"
	// SectionCommunities holds only communities.
	SectionCommunities SectionType = "communities"
	// SectionBusinesses holds only businesses.
	SectionBusinesses SectionType = "businesses"
	// SectionActivities holds only activities.
	SectionActivities SectionType = "activities"
	// SectionSpotlight holds First Nations spotlight content.
	SectionSpotlight SectionType = "spotlight"
	// SectionMixed holds a mix of content kinds.
	SectionMixed SectionType = "mixed"
)

// DiscoverSection is one ranked block of the Discover feed.
// Title doubles as the section's stable identifier; no two sections
// with the same title are returned in one feed.
type DiscoverSection struct {
	// Title is the display name and stable identifier.
	Title string `json:"title"`

	// Subtitle is an optional secondary line.
	Subtitle string `json:"subtitle,omitempty"`

	// Type describes the content mix of Items.
	Type SectionType `json:"type"`

	// Items is the relevance-ranked content, best first.
	Items []ContentItem `json:"items"`

	// Priority orders sections in the feed, lower shown first.
	Priority int `json:"priority"`
}

// FeedMeta carries request-level metadata alongside the sections.
type FeedMeta struct {
	// UserID is the user the feed was generated for.
	UserID string `json:"user_id"`

	// City and Country are the location the feed was personalised to.
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	// GeneratedAt is when the feed was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalItems is the sum of item counts across all sections.
	TotalItems int `json:"total_items"`
}

// DiscoverFeed is the full personalised feed for one user.
// Sections are ordered ascending by Priority; empty sections are
// omitted rather than returned with zero items.
type DiscoverFeed struct {
	Sections []DiscoverSection `json:"sections"`
	Meta     FeedMeta          `json:"meta"`
}
