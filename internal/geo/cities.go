// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package geo

import "strings"

// Coordinates is a decimal-degree latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// cityCoords maps "city,country" (lowercase, no space after the comma)
// to coordinates. Australian capitals plus the overseas cities seeded in
// the content catalog. Extend as coverage grows.
var cityCoords = map[string]Coordinates{
	"sydney,australia":     {-33.8688, 151.2093},
	"melbourne,australia":  {-37.8136, 144.9631},
	"brisbane,australia":   {-27.4698, 153.0251},
	"perth,australia":      {-31.9505, 115.8605},
	"adelaide,australia":   {-34.9285, 138.6007},
	"canberra,australia":   {-35.2809, 149.1300},
	"hobart,australia":     {-42.8821, 147.3272},
	"darwin,australia":     {-12.4634, 130.8456},
	"gold coast,australia": {-28.0167, 153.4000},
	"newcastle,australia":  {-32.9283, 151.7817},
	"wollongong,australia": {-34.4278, 150.8931},
	"parramatta,australia": {-33.8150, 151.0010},

	"auckland,new zealand":   {-36.8509, 174.7645},
	"wellington,new zealand": {-41.2924, 174.7787},
	"mumbai,india":           {19.0760, 72.8777},
	"chennai,india":          {13.0827, 80.2707},
	"kochi,india":            {9.9312, 76.2673},
	"colombo,sri lanka":      {6.9271, 79.8612},
	"manila,philippines":     {14.5995, 120.9842},
	"hanoi,vietnam":          {21.0278, 105.8342},
	"athens,greece":          {37.9838, 23.7275},
	"beirut,lebanon":         {33.8938, 35.5018},
	"seoul,south korea":      {37.5665, 126.9780},
	"suva,fiji":              {-18.1248, 178.4501},
	"apia,samoa":             {-13.8507, -171.7514},
}

// LookupCity returns the coordinates for a city/country pair. Matching is
// case-insensitive and tolerant of surrounding whitespace. The second
// return value reports whether the pair is known.
func LookupCity(city, country string) (Coordinates, bool) {
	key := strings.ToLower(strings.TrimSpace(city)) + "," + strings.ToLower(strings.TrimSpace(country))
	c, ok := cityCoords[key]
	return c, ok
}
