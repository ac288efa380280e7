// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package catalog defines the repository contract the feed and search
// services read content through, plus an in-memory implementation
// seeded with the launch catalog. The engine never writes through this
// interface.
package catalog

import (
	"context"
	"errors"

	"github.com/culturepassau/discover/internal/models"
)

// ErrUserNotFound is returned by GetUser when no profile exists for the
// requested ID. The feed engine treats it as a guest-user signal, not a
// hard failure.
var ErrUserNotFound = errors.New("catalog: user not found")

// Store is the read-only content repository consumed by the feed engine
// and the search corpus builder.
type Store interface {
	// GetUser returns the profile for id, or ErrUserNotFound.
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)

	// GetUserCommunities returns the communities the user has joined.
	// An unknown user yields an empty slice, not an error.
	GetUserCommunities(ctx context.Context, userID string) ([]models.Community, error)

	// GetAllCommunities returns every community in the catalog.
	GetAllCommunities(ctx context.Context) ([]models.Community, error)

	// Events returns all events in stable catalog order.
	Events() []models.Event

	// Businesses returns all business listings.
	Businesses() []models.Business

	// Activities returns all recurring activities.
	Activities() []models.Activity

	// Spotlights returns all First Nations spotlight records.
	Spotlights() []models.Spotlight
}
