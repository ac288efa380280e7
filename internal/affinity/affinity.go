// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package affinity maps user origin countries and joined-community names
// to canonical content tags. Both tables are static and looked up
// case-insensitively. Country lookups may miss (nil result); community
// lookups fall back to the community name itself so every joined
// community contributes at least one tag.
package affinity

import "strings"

// originCountryTags maps a lowercase country name to its canonical
// content tags. An unmapped country means the homeland section is
// simply omitted for that user.
var originCountryTags = map[string][]string{
	"india":       {"Indian", "Tamil", "Malayalee", "Punjabi", "Bengali", "Gujarati", "Telugu"},
	"china":       {"Chinese", "Cantonese", "Mandarin"},
	"vietnam":     {"Vietnamese"},
	"philippines": {"Filipino"},
	"greece":      {"Greek"},
	"italy":       {"Italian"},
	"lebanon":     {"Lebanese", "Arabic"},
	"south korea": {"Korean"},
	"korea":       {"Korean"},
	"nepal":       {"Nepali"},
	"sri lanka":   {"Sri Lankan", "Tamil", "Sinhalese"},
	"indonesia":   {"Indonesian"},
	"fiji":        {"Fijian", "Fijian Indian"},
	"samoa":       {"Samoan", "Pacific Islander"},
	"tonga":       {"Tongan", "Pacific Islander"},
	"new zealand": {"Kiwi", "Maori"},
	"ethiopia":    {"Ethiopian", "African"},
	"sudan":       {"Sudanese", "African"},
	"afghanistan": {"Afghan", "Hazara"},
	"iran":        {"Persian", "Iranian"},
	"turkey":      {"Turkish"},
}

// communityNameTags maps lowercase community display names to content
// tags. Communities without an explicit entry fall back to their own
// name as the single tag.
var communityNameTags = map[string][]string{
	"sydney malayalee association":      {"Malayalee", "Indian"},
	"melbourne tamil sangam":            {"Tamil", "Indian"},
	"greek community of melbourne":      {"Greek"},
	"vietnamese community in australia": {"Vietnamese"},
	"filipino australian society":       {"Filipino"},
	"korean society of sydney":          {"Korean"},
	"lebanese muslim association":       {"Lebanese", "Arabic"},
	"fiji senior citizens association":  {"Fijian", "Fijian Indian"},
	"punjabi council of australia":      {"Punjabi", "Indian"},
	"nepalese australian association":   {"Nepali"},
}

// TagsForCountry returns the canonical content tags for an origin
// country, or nil when the country has no mapping. The returned slice
// must not be mutated by callers.
func TagsForCountry(origin string) []string {
	return originCountryTags[strings.ToLower(strings.TrimSpace(origin))]
}

// TagsForCommunity returns the content tags for a community display
// name, falling back to the name itself when no explicit mapping
// exists. Empty input returns nil.
func TagsForCommunity(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	if tags, ok := communityNameTags[strings.ToLower(trimmed)]; ok {
		return tags
	}
	return []string{trimmed}
}
