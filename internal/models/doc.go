// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package models defines the shared data structures of the Discover
// service: the content variants that can appear in a feed (events,
// communities, businesses, activities, First Nations spotlights), the
// feed and section shapes returned to clients, the user personalization
// snapshot, and the standard API response envelope.
//
// Content ownership stays with the persistence collaborator; this
// package only describes the projections the ranking and search paths
// read. ContentItem is a tagged union discriminated by Kind so that
// mixed sections stay type-safe without resorting to interface{} bags.
package models
