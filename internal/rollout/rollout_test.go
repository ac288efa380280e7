// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package rollout

import "testing"

func TestIsEnabled_Deterministic(t *testing.T) {
	s := New(PhaseHalf)
	first := s.IsEnabled("discover_feed", "user-priya")
	for i := 0; i < 10; i++ {
		if s.IsEnabled("discover_feed", "user-priya") != first {
			t.Fatal("enablement changed between calls for fixed inputs")
		}
	}
}

func TestIsEnabled_FullShortCircuits(t *testing.T) {
	s := New(PhaseFull)
	for _, user := range []string{"a", "b", "c", "anyone-at-all"} {
		if !s.IsEnabled("discover_feed", user) {
			t.Errorf("full rollout must enable every user, %s was off", user)
		}
	}
}

func TestIsEnabled_MonotonicAcrossPhases(t *testing.T) {
	phases := []string{PhaseInternal, PhasePilot, PhaseHalf, PhaseFull}
	users := []string{"user-priya", "user-dimitri", "user-linh", "u4", "u5", "u6", "u7", "u8"}

	for _, user := range users {
		enabledAt := -1
		for i, phase := range phases {
			if New(phase).IsEnabled("search_suggest", user) {
				if enabledAt == -1 {
					enabledAt = i
				}
			} else if enabledAt != -1 {
				t.Errorf("user %s lost the feature moving from %s to %s", user, phases[enabledAt], phase)
			}
		}
	}
}

func TestBucket_Stable(t *testing.T) {
	b := bucket("discover_feed", "user-priya")
	if b < 0 || b >= 100 {
		t.Fatalf("bucket out of range: %d", b)
	}
	if bucket("discover_feed", "user-priya") != b {
		t.Error("bucket not stable for fixed key")
	}
}

func TestNew_UnknownPhaseFallsBackToInternal(t *testing.T) {
	s := New("canary")
	if s.phase != PhaseInternal || s.percentage != 10 {
		t.Errorf("expected internal fallback, got %s/%d", s.phase, s.percentage)
	}
}

func TestConfigFor_ReportsAllFeatures(t *testing.T) {
	s := New(PhasePilot)
	cfg := s.ConfigFor("user-priya")
	if cfg.Phase != PhasePilot || cfg.Percentage != 25 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Features) != len(defaultFeatures) {
		t.Errorf("expected %d features, got %d", len(defaultFeatures), len(cfg.Features))
	}
}
