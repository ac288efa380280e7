// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package catalog

import (
	"time"

	"github.com/culturepassau/discover/internal/models"
)

func ptr(v float64) *float64 { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewSeedStore returns the launch catalog: a corpus of Australian
// multicultural events, communities, businesses, activities and First
// Nations spotlights, plus a handful of demo users. Replaced by real
// persistence collaborators in production deployments.
func NewSeedStore() *MemoryStore {
	users := []models.UserProfile{
		{
			ID:            "user-priya",
			Name:          "Priya Menon",
			City:          "Sydney",
			Country:       "Australia",
			OriginCountry: "India",
			Latitude:      ptr(-33.8688),
			Longitude:     ptr(151.2093),
			RadiusKm:      50,

			IndigenousVisibilityEnabled: true,
			HomelandContentEnabled:      true,
		},
		{
			ID:            "user-dimitri",
			Name:          "Dimitri Kostas",
			City:          "Melbourne",
			Country:       "Australia",
			OriginCountry: "Greece",
			RadiusKm:      30,

			IndigenousVisibilityEnabled: true,
			HomelandContentEnabled:      true,
		},
		{
			ID:            "user-linh",
			Name:          "Linh Tran",
			City:          "Brisbane",
			Country:       "Australia",
			OriginCountry: "Vietnam",
			RadiusKm:      50,

			IndigenousVisibilityEnabled: false,
			HomelandContentEnabled:      true,
		},
	}

	memberships := map[string][]string{
		"user-priya":   {"com-malayalee-syd", "com-punjabi-au"},
		"user-dimitri": {"com-greek-melb"},
		"user-linh":    {"com-viet-au"},
	}

	communities := []models.Community{
		{ID: "com-malayalee-syd", Name: "Sydney Malayalee Association", Description: "Kerala culture, language and festivals across greater Sydney.", City: "Sydney", Country: "Australia", Tags: []string{"Malayalee", "Indian"}, MemberCount: 2400},
		{ID: "com-tamil-melb", Name: "Melbourne Tamil Sangam", Description: "Tamil language schools, Pongal and cultural nights.", City: "Melbourne", Country: "Australia", Tags: []string{"Tamil", "Indian"}, MemberCount: 1800},
		{ID: "com-greek-melb", Name: "Greek Community of Melbourne", Description: "The largest Greek diaspora organisation in Australia.", City: "Melbourne", Country: "Australia", Tags: []string{"Greek"}, MemberCount: 5200},
		{ID: "com-viet-au", Name: "Vietnamese Community in Australia", Description: "Tet festivals, youth programs and settlement support.", City: "Sydney", Country: "Australia", Tags: []string{"Vietnamese"}, MemberCount: 3100},
		{ID: "com-filipino-au", Name: "Filipino Australian Society", Description: "Barrio fiestas, basketball leagues and kababayan support.", City: "Sydney", Country: "Australia", Tags: []string{"Filipino"}, MemberCount: 2700},
		{ID: "com-korean-syd", Name: "Korean Society of Sydney", Description: "Chuseok celebrations, K-culture nights and language exchange.", City: "Sydney", Country: "Australia", Tags: []string{"Korean"}, MemberCount: 1500},
		{ID: "com-punjabi-au", Name: "Punjabi Council of Australia", Description: "Vaisakhi melas, bhangra workshops and gurdwara outreach.", City: "Melbourne", Country: "Australia", Tags: []string{"Punjabi", "Indian"}, MemberCount: 2100},
		{ID: "com-nepali-au", Name: "Nepalese Australian Association", Description: "Dashain and Tihar gatherings for the Nepali diaspora.", City: "Sydney", Country: "Australia", Tags: []string{"Nepali"}, MemberCount: 900},
		{ID: "com-lebanese-syd", Name: "Lebanese Muslim Association", Description: "Community services and Eid festivals in south-west Sydney.", City: "Sydney", Country: "Australia", Tags: []string{"Lebanese", "Arabic"}, MemberCount: 4000},
		{ID: "com-fijian-syd", Name: "Fiji Senior Citizens Association", Description: "Pacific community gatherings and kava nights.", City: "Sydney", Country: "Australia", Tags: []string{"Fijian"}, MemberCount: 450},
		{ID: "com-ethiopian-melb", Name: "Ethiopian Community Melbourne", Description: "Enkutatash new year, coffee ceremonies and youth mentoring.", City: "Melbourne", Country: "Australia", Tags: []string{"Ethiopian", "African"}, MemberCount: 700},
		{ID: "com-samoan-bris", Name: "Samoan Community Brisbane", Description: "Fa'a Samoa culture, church fellowship and rugby.", City: "Brisbane", Country: "Australia", Tags: []string{"Samoan", "Pacific Islander"}, MemberCount: 1100},
	}

	events := []models.Event{
		{ID: "evt-onam-2026", Title: "Onam Grand Celebration 2026", Subtitle: "Sadhya feast, Thiruvathira and pookalam contest", Description: "The biggest Onam festival in New South Wales with a 26-dish sadhya, pulikali tiger dance and boat race screening.", City: "Sydney", Country: "Australia", CommunityTag: "Malayalee", Featured: true, Attending: 1456, Date: date(2026, time.September, 5)},
		{ID: "evt-diwali-syd", Title: "Diwali Festival of Lights Parramatta", Subtitle: "Fireworks over the river", Description: "Lamps, rangoli, bollywood stage and food stalls from every Indian state.", City: "Parramatta", Country: "Australia", CommunityTag: "Indian", Featured: true, Attending: 2100, Date: date(2026, time.November, 7)},
		{ID: "evt-lny-melb", Title: "Lunar New Year Night Market", Subtitle: "Year of the Horse", Description: "Lion dances, lanterns and hawker food along the Yarra.", City: "Melbourne", Country: "Australia", CommunityTag: "Chinese", Attending: 3500, Date: date(2026, time.February, 17)},
		{ID: "evt-naidoc-syd", Title: "NAIDOC Week Opening Ceremony", Subtitle: "Always Was, Always Will Be", Description: "Smoking ceremony, Welcome to Country and Koori dance performances at Barangaroo.", City: "Sydney", Country: "Australia", IndigenousTags: []string{"First Nations", "Gadigal"}, Attending: 1200, Date: date(2026, time.July, 6)},
		{ID: "evt-greek-fest", Title: "Antipodes Greek Festival", Subtitle: "Lonsdale Street comes alive", Description: "Two days of souvlaki, zeibekiko dancing and live bouzouki.", City: "Melbourne", Country: "Australia", CommunityTag: "Greek", Featured: true, Attending: 4200, Date: date(2026, time.February, 28)},
		{ID: "evt-tet-cabramatta", Title: "Tet Festival Cabramatta", Subtitle: "Vietnamese Lunar New Year", Description: "Firecrackers, ao dai parade and banh chung workshops.", City: "Sydney", Country: "Australia", CommunityTag: "Vietnamese", Attending: 2800, Date: date(2026, time.February, 14)},
		{ID: "evt-vaisakhi-melb", Title: "Vaisakhi Mela Melbourne", Subtitle: "Harvest festival of Punjab", Description: "Nagar kirtan, gatka martial arts and langar for all.", City: "Melbourne", Country: "Australia", CommunityTag: "Punjabi", Attending: 1600, Date: date(2026, time.April, 13)},
		{ID: "evt-pongal-syd", Title: "Thai Pongal Celebration", Subtitle: "Tamil harvest festival", Description: "Pongal cooking competition, kolam art and carnatic music.", City: "Sydney", Country: "Australia", CommunityTag: "Tamil", Attending: 650, Date: date(2026, time.January, 14)},
		{ID: "evt-chuseok-syd", Title: "Chuseok Harvest Moon Festival", Subtitle: "Korean thanksgiving", Description: "Songpyeon making, hanbok photo booth and samulnori drumming.", City: "Sydney", Country: "Australia", CommunityTag: "Korean", Attending: 480, Date: date(2026, time.September, 25)},
		{ID: "evt-eid-lakemba", Title: "Eid Festival Lakemba", Subtitle: "Street festival after Ramadan", Description: "Haldon Street night markets with food from 20 countries.", City: "Sydney", Country: "Australia", CommunityTag: "Lebanese", Attending: 5200, Date: date(2026, time.March, 21)},
		{ID: "evt-barunga", Title: "Barunga Festival", Subtitle: "Sport, music and culture", Description: "Remote community festival of First Nations music, spear throwing and bush tucker.", City: "Darwin", Country: "Australia", IndigenousTags: []string{"First Nations", "Yolngu"}, Attending: 900, Date: date(2026, time.June, 12)},
		{ID: "evt-pasifika-bris", Title: "Pasifika Vibes Festival", Subtitle: "Pacific Island showcase", Description: "Siva afi fire dancing, island kai and reggae stages.", City: "Brisbane", Country: "Australia", CommunityTag: "Pacific Islander", Attending: 1900, Date: date(2026, time.October, 10)},
		{ID: "evt-holi-gc", Title: "Holi Colour Splash Gold Coast", Subtitle: "Festival of colours on the beach", Description: "Organic colours, dhol drummers and rain dance.", City: "Gold Coast", Country: "Australia", CommunityTag: "Indian", Attending: 1400, Date: date(2026, time.March, 8)},
		{ID: "evt-onam-auk", Title: "Onam Celebration Auckland", Subtitle: "Kerala festival across the Tasman", Description: "Sadhya and thiruvathira for the Auckland Malayalee community.", City: "Auckland", Country: "New Zealand", CommunityTag: "Malayalee", Attending: 300, Date: date(2026, time.September, 12)},
		{ID: "evt-enkutatash", Title: "Enkutatash Ethiopian New Year", Subtitle: "Melkam Addis Amet", Description: "Coffee ceremony, injera feast and traditional eskista dancing.", City: "Melbourne", Country: "Australia", CommunityTag: "Ethiopian", Attending: 350, Date: date(2026, time.September, 11)},
	}

	businesses := []models.Business{
		{ID: "biz-kerala-kitchen", Name: "Kerala Kitchen Homebush", Description: "Authentic sadhya meals, appam and toddy shop curries.", City: "Sydney", Country: "Australia", Tags: []string{"Malayalee", "Indian", "Restaurant"}},
		{ID: "biz-gadigal-gallery", Name: "Gadigal Art Gallery", Description: "First Nations owned gallery for contemporary Aboriginal art.", City: "Sydney", Country: "Australia", Tags: []string{"First Nations", "Art"}, IndigenousOwned: true},
		{ID: "biz-pho-corner", Name: "Pho Corner Cabramatta", Description: "Family-run pho house since 1989.", City: "Sydney", Country: "Australia", Tags: []string{"Vietnamese", "Restaurant"}},
		{ID: "biz-oakleigh-bakery", Name: "Oakleigh Hellenic Bakery", Description: "Galaktoboureko and village bread baked daily.", City: "Melbourne", Country: "Australia", Tags: []string{"Greek", "Bakery"}},
		{ID: "biz-bush-tucker", Name: "Mabu Mabu Bush Tucker", Description: "Torres Strait Islander owned native food catering.", City: "Melbourne", Country: "Australia", Tags: []string{"First Nations", "Catering"}, IndigenousOwned: true},
		{ID: "biz-seoul-mart", Name: "Seoul Mart Strathfield", Description: "Korean grocery with house-made banchan.", City: "Sydney", Country: "Australia", Tags: []string{"Korean", "Grocery"}},
	}

	activities := []models.Activity{
		{ID: "act-kathakali", Title: "Kathakali Dance Classes", Description: "Classical Kerala dance training for all ages.", City: "Sydney", Country: "Australia", Tags: []string{"Malayalee", "Indian", "Dance"}},
		{ID: "act-didgeridoo", Title: "Didgeridoo Workshop", Description: "Learn circular breathing with a Yolngu master player.", City: "Sydney", Country: "Australia", Tags: []string{"First Nations", "Music"}, Indigenous: true},
		{ID: "act-bollywood-fit", Title: "Bollywood Fitness Bootcamp", Description: "High-energy dance workouts to the latest hits.", City: "Parramatta", Country: "Australia", Tags: []string{"Indian", "Fitness"}},
		{ID: "act-greek-lang", Title: "Greek Language Evening School", Description: "Conversational Greek from beginner to heritage speaker.", City: "Melbourne", Country: "Australia", Tags: []string{"Greek", "Language"}},
		{ID: "act-bush-walk", Title: "Aboriginal Heritage Walk", Description: "Guided walk through the Royal Botanic Garden with a First Nations guide.", City: "Sydney", Country: "Australia", Tags: []string{"First Nations", "Tour"}, Indigenous: true},
		{ID: "act-kava-circle", Title: "Pacific Kava Circle", Description: "Weekly talanoa and kava session for Pasifika men.", City: "Brisbane", Country: "Australia", Tags: []string{"Pacific Islander"}},
	}

	spotlights := []models.Spotlight{
		{ID: "spot-gadigal", Title: "Gadigal Country", Description: "The land of the Gadigal people of the Eora Nation, on which central Sydney stands.", Community: "Gadigal", Region: "Sydney"},
		{ID: "spot-wurundjeri", Title: "Wurundjeri Woi-wurrung", Description: "Traditional owners of the land where Melbourne sits, custodians of the Birrarung.", Community: "Wurundjeri", Region: "Melbourne"},
		{ID: "spot-larrakia", Title: "Larrakia Nation", Description: "Saltwater people of the Darwin region, known as custodians of the harbour.", Community: "Larrakia", Region: "Darwin"},
	}

	return NewMemoryStore(users, memberships, communities, events, businesses, activities, spotlights)
}
