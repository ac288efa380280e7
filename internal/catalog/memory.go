// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package catalog

import (
	"context"

	"github.com/culturepassau/discover/internal/models"
)

// MemoryStore is an in-memory Store. All slices are treated as
// immutable after construction, so reads need no locking.
type MemoryStore struct {
	users       map[string]models.UserProfile
	memberships map[string][]string // userID -> community IDs
	communities []models.Community
	events      []models.Event
	businesses  []models.Business
	activities  []models.Activity
	spotlights  []models.Spotlight
}

// NewMemoryStore builds a store from explicit data. Used by tests that
// need a controlled corpus.
func NewMemoryStore(
	users []models.UserProfile,
	memberships map[string][]string,
	communities []models.Community,
	events []models.Event,
	businesses []models.Business,
	activities []models.Activity,
	spotlights []models.Spotlight,
) *MemoryStore {
	byID := make(map[string]models.UserProfile, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	if memberships == nil {
		memberships = map[string][]string{}
	}
	return &MemoryStore{
		users:       byID,
		memberships: memberships,
		communities: communities,
		events:      events,
		businesses:  businesses,
		activities:  activities,
		spotlights:  spotlights,
	}
}

// GetUser implements Store.
func (s *MemoryStore) GetUser(_ context.Context, id string) (*models.UserProfile, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	if u.RadiusKm <= 0 {
		u.RadiusKm = models.DefaultRadiusKm
	}
	return &u, nil
}

// GetUserCommunities implements Store.
func (s *MemoryStore) GetUserCommunities(_ context.Context, userID string) ([]models.Community, error) {
	ids := s.memberships[userID]
	if len(ids) == 0 {
		return nil, nil
	}
	joined := make(map[string]bool, len(ids))
	for _, id := range ids {
		joined[id] = true
	}
	var out []models.Community
	for _, c := range s.communities {
		if joined[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetAllCommunities implements Store.
func (s *MemoryStore) GetAllCommunities(_ context.Context) ([]models.Community, error) {
	return s.communities, nil
}

// Events implements Store.
func (s *MemoryStore) Events() []models.Event { return s.events }

// Businesses implements Store.
func (s *MemoryStore) Businesses() []models.Business { return s.businesses }

// Activities implements Store.
func (s *MemoryStore) Activities() []models.Activity { return s.activities }

// Spotlights implements Store.
func (s *MemoryStore) Spotlights() []models.Spotlight { return s.spotlights }
