// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package rollout provides deterministic user bucketing for staged
// feature rollout. A user's bucket for a feature never changes, so
// enablement is monotonic as the rollout percentage grows.
package rollout

import "fmt"

// Phase names and their rollout percentages.
const (
	PhaseInternal = "internal"
	PhasePilot    = "pilot"
	PhaseHalf     = "half"
	PhaseFull     = "full"
)

var phasePercentages = map[string]int{
	PhaseInternal: 10,
	PhasePilot:    25,
	PhaseHalf:     50,
	PhaseFull:     100,
}

// Features currently behind staged rollout.
var defaultFeatures = []string{
	"discover_feed",
	"search_suggest",
	"homeland_section",
	"trending_section",
}

// Service evaluates feature flags for a fixed rollout phase.
type Service struct {
	phase      string
	percentage int
	features   []string
}

// New builds a Service for the named phase. Unknown phases fall back
// to internal (the most conservative percentage).
func New(phase string) *Service {
	pct, ok := phasePercentages[phase]
	if !ok {
		phase = PhaseInternal
		pct = phasePercentages[PhaseInternal]
	}
	return &Service{
		phase:      phase,
		percentage: pct,
		features:   defaultFeatures,
	}
}

// IsEnabled reports whether featureKey is on for userID at the current
// phase. Full rollout short-circuits without hashing. Otherwise the
// user's stable bucket in [0,100) is compared to the phase percentage.
func (s *Service) IsEnabled(featureKey, userID string) bool {
	if s.percentage >= 100 {
		return true
	}
	return bucket(featureKey, userID) < s.percentage
}

// bucket hashes "feature:userID" with a polynomial rolling hash
// (h = h*31 + byte, unsigned 32-bit wraparound) mod 100.
func bucket(featureKey, userID string) int {
	key := fmt.Sprintf("%s:%s", featureKey, userID)
	var h uint32
	for i := 0; i < len(key); i++ {
		h = h*31 + uint32(key[i])
	}
	return int(h % 100)
}

// Config is the rollout state reported for one user.
type Config struct {
	Phase      string          `json:"phase"`
	Percentage int             `json:"percentage"`
	Features   map[string]bool `json:"features"`
}

// ConfigFor evaluates every known feature for userID.
func (s *Service) ConfigFor(userID string) Config {
	flags := make(map[string]bool, len(s.features))
	for _, f := range s.features {
		flags[f] = s.IsEnabled(f, userID)
	}
	return Config{
		Phase:      s.phase,
		Percentage: s.percentage,
		Features:   flags,
	}
}
