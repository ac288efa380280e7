// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package models

import "time"

// ContentKind discriminates the variants of a ContentItem.
type ContentKind string

const (
	// KindEvent is a dated cultural event (festival, performance, meetup).
	KindEvent ContentKind = "event"
	// KindCommunity is a cultural community or association.
	KindCommunity ContentKind = "community"
	// KindBusiness is a community-owned business listing.
	KindBusiness ContentKind = "business"
	// KindActivity is a recurring activity (class, workshop, tour).
	KindActivity ContentKind = "activity"
	// KindSpotlight is a First Nations spotlight record.
	KindSpotlight ContentKind = "spotlight"
)

// Event is a dated cultural event.
type Event struct {
	// ID is the unique event identifier.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Subtitle is an optional short tagline.
	Subtitle string `json:"subtitle,omitempty"`

	// Description is the long-form description.
	Description string `json:"description,omitempty"`

	// City and Country locate the event.
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	// CommunityTag is the canonical affinity tag of the hosting community.
	CommunityTag string `json:"community_tag,omitempty"`

	// IndigenousTags carries First Nations tags when the event is
	// indigenous-led or indigenous-themed.
	IndigenousTags []string `json:"indigenous_tags,omitempty"`

	// Featured marks editorially promoted events.
	Featured bool `json:"featured,omitempty"`

	// Attending is the current RSVP count.
	Attending int `json:"attending"`

	// Date is when the event takes place.
	Date time.Time `json:"date,omitempty"`
}

// Community is a cultural community or association.
type Community struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	MemberCount int      `json:"member_count,omitempty"`
}

// Business is a community-owned business listing.
type Business struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	City            string   `json:"city,omitempty"`
	Country         string   `json:"country,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	IndigenousOwned bool     `json:"indigenous_owned,omitempty"`
}

// Activity is a recurring activity such as a class, workshop or tour.
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Indigenous  bool     `json:"indigenous,omitempty"`
}

// Spotlight is a First Nations spotlight record.
type Spotlight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Community   string `json:"community,omitempty"`
	Region      string `json:"region,omitempty"`
}

// ContentItem is a tagged union over the content variants that can appear
// in a feed section. Exactly one of the variant pointers is non-nil,
// matching Kind.
type ContentItem struct {
	Kind      ContentKind `json:"kind"`
	Event     *Event      `json:"event,omitempty"`
	Community *Community  `json:"community,omitempty"`
	Business  *Business   `json:"business,omitempty"`
	Activity  *Activity   `json:"activity,omitempty"`
	Spotlight *Spotlight  `json:"spotlight,omitempty"`
}

// EventItem wraps an event as a ContentItem.
func EventItem(e Event) ContentItem {
	return ContentItem{Kind: KindEvent, Event: &e}
}

// CommunityItem wraps a community as a ContentItem.
func CommunityItem(c Community) ContentItem {
	return ContentItem{Kind: KindCommunity, Community: &c}
}

// BusinessItem wraps a business as a ContentItem.
func BusinessItem(b Business) ContentItem {
	return ContentItem{Kind: KindBusiness, Business: &b}
}

// ActivityItem wraps an activity as a ContentItem.
func ActivityItem(a Activity) ContentItem {
	return ContentItem{Kind: KindActivity, Activity: &a}
}

// SpotlightItem wraps a spotlight as a ContentItem.
func SpotlightItem(s Spotlight) ContentItem {
	return ContentItem{Kind: KindSpotlight, Spotlight: &s}
}

// ID returns the identifier of the wrapped variant.
func (i ContentItem) ID() string {
	switch i.Kind {
	case KindEvent:
		return i.Event.ID
	case KindCommunity:
		return i.Community.ID
	case KindBusiness:
		return i.Business.ID
	case KindActivity:
		return i.Activity.ID
	case KindSpotlight:
		return i.Spotlight.ID
	default:
		return ""
	}
}

// Title returns the display title of the wrapped variant.
func (i ContentItem) Title() string {
	switch i.Kind {
	case KindEvent:
		return i.Event.Title
	case KindCommunity:
		return i.Community.Name
	case KindBusiness:
		return i.Business.Name
	case KindActivity:
		return i.Activity.Title
	case KindSpotlight:
		return i.Spotlight.Title
	default:
		return ""
	}
}

// UserProfile is the read-only personalization snapshot for one user.
// It is fetched once per feed request and never mutated by the engine.
type UserProfile struct {
	// ID is the unique user identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name,omitempty"`

	// City and Country are the user's home location.
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	// OriginCountry drives the From Your Homeland section.
	OriginCountry string `json:"origin_country,omitempty"`

	// Latitude and Longitude are optional precise coordinates.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// RadiusKm bounds proximity scoring. Defaults to 50.
	RadiusKm float64 `json:"radius_km,omitempty"`

	// IndigenousVisibilityEnabled gates the First Nations Spotlight section.
	IndigenousVisibilityEnabled bool `json:"indigenous_visibility_enabled"`

	// HomelandContentEnabled gates the From Your Homeland section.
	HomelandContentEnabled bool `json:"homeland_content_enabled"`
}

// DefaultRadiusKm is applied when a profile has no radius configured.
const DefaultRadiusKm = 50.0

// GuestProfile returns the profile used when a user record cannot be
// found: all personalization flags at their defaults, location taken
// from the optional request parameters.
func GuestProfile(id, city, country string) *UserProfile {
	return &UserProfile{
		ID:                          id,
		City:                        city,
		Country:                     country,
		RadiusKm:                    DefaultRadiusKm,
		IndigenousVisibilityEnabled: true,
		HomelandContentEnabled:      true,
	}
}
