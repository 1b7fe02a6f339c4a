package services

import (
	"strings"

	"safar/internal/models/db_models"
	"safar/internal/models/response_models"
	"safar/pkg/utils"

	"github.com/google/uuid"
)

// FallbackGenerator synthesizes three themed packages locally when the
// completion endpoint fails or returns unusable output. It never errors:
// when the fetched rows are empty it falls through to an embedded table of
// well-known UAE attractions.

type travelerKind int

const (
	travelerSolo travelerKind = iota
	travelerCouple
	travelerFamily
	travelerGroup
)

func classifyTraveler(sub *db_models.Submission) travelerKind {
	if sub.Kids > 0 || sub.Infants > 0 {
		return travelerFamily
	}
	switch {
	case sub.Adults <= 1:
		return travelerSolo
	case sub.Adults == 2:
		return travelerCouple
	default:
		return travelerGroup
	}
}

type themeTemplate struct {
	title       string
	theme       string
	description string
}

var themeSets = map[travelerKind][3]themeTemplate{
	travelerSolo: {
		{"City Explorer", "urban", "Dive into the UAE's skylines, souks and street life at your own pace."},
		{"Desert & Heritage", "heritage", "Old forts, dunes and the quieter side of the Emirates."},
		{"Coastal Escape", "beach", "Beaches, corniches and waterfront evenings."},
	},
	travelerCouple: {
		{"Romantic Getaway", "romance", "Sunset dhow cruises, rooftop dinners and quiet beaches for two."},
		{"Luxury & Leisure", "luxury", "Five-star stays and the Emirates' most photogenic spots."},
		{"Adventure for Two", "adventure", "Dunes, zip lines and mountain roads shared between two."},
	},
	travelerFamily: {
		{"Family Fun", "family", "Theme parks, aquariums and beaches the kids will talk about for years."},
		{"Discovery Trip", "education", "Museums, wildlife and hands-on attractions for curious families."},
		{"Easy Pace Family", "relaxed", "Short days, pools and parks, with plenty of downtime."},
	},
	travelerGroup: {
		{"Group Adventure", "adventure", "Desert safaris, water parks and big-table dinners for the whole crew."},
		{"Highlights Tour", "urban", "The UAE's must-see landmarks, packed into an efficient route."},
		{"Leisure & Nightlife", "leisure", "Beach clubs, marinas and late evenings out."},
	},
}

// Coarse budget-band price ceilings for attraction selection. Unknown bands
// apply no ceiling.
func budgetCeiling(band string) float64 {
	switch strings.ToLower(strings.TrimSpace(band)) {
	case "economy", "budget", "low":
		return 150
	case "standard", "mid", "medium", "moderate":
		return 350
	default:
		return 0
	}
}

var dayTitlePhrases = []string{
	"Arrival & First Impressions",
	"Icons & Landmarks",
	"Culture & Souks",
	"Desert Day",
	"Coast & Leisure",
	"Hidden Gems",
	"Farewell Highlights",
}

var dayDescPhrases = []string{
	"Settle in, then ease into the city with a relaxed first outing.",
	"A full day around the area's best-known sights.",
	"Markets, museums and a taste of local life.",
	"Head out of the city for sand, sun and wide horizons.",
	"Slow morning by the water, lively evening out.",
	"Off the main trail for the spots most visitors miss.",
	"One last round of favorites before the trip winds down.",
}

var dayTipPhrases = []string{
	"Book tickets online to skip the queues.",
	"Start early, the light and the temperatures are on your side.",
	"Carry cash for the souks, cards for everything else.",
	"Sunscreen and water, always.",
	"Taxis are cheap here, do not bother renting for a single day.",
	"Friday mornings are quiet, plan indoor stops then.",
	"Check closing times, many places pause in the afternoon.",
}

// Last-resort rows used when the database returns nothing.
var embeddedAttractions = []db_models.Attraction{
	{Name: "Burj Khalifa", Emirate: "dubai", Price: 170, Duration: "2 hours", Category: "landmark", Description: "The world's tallest building with observation decks at 124 and 148."},
	{Name: "Dubai Mall & Fountain", Emirate: "dubai", Price: 0, Duration: "3 hours", Category: "leisure", Description: "Shopping, the aquarium wall and the evening fountain shows."},
	{Name: "Sheikh Zayed Grand Mosque", Emirate: "abu dhabi", Price: 0, Duration: "2 hours", Category: "culture", Description: "Abu Dhabi's white-marble landmark, open to visitors most days."},
	{Name: "Louvre Abu Dhabi", Emirate: "abu dhabi", Price: 65, Duration: "3 hours", Category: "culture", Description: "Art and civilisation under the famous floating dome."},
	{Name: "Desert Safari", Emirate: "dubai", Price: 250, Duration: "6 hours", Category: "adventure", Description: "Dune bashing, camel rides and a barbecue camp dinner."},
	{Name: "Dubai Marina Walk", Emirate: "dubai", Price: 0, Duration: "2 hours", Category: "leisure", Description: "Waterfront promenade lined with cafes and yachts."},
	{Name: "Sharjah Museum of Islamic Civilization", Emirate: "sharjah", Price: 10, Duration: "2 hours", Category: "culture", Description: "Manuscripts, science and artistry across the Islamic world."},
	{Name: "Jebel Jais", Emirate: "ras al khaimah", Price: 0, Duration: "4 hours", Category: "adventure", Description: "The UAE's highest peak and its longest zipline."},
	{Name: "Al Ain Oasis", Emirate: "abu dhabi", Price: 0, Duration: "2 hours", Category: "heritage", Description: "Shaded falaj-irrigated palm groves, a UNESCO site."},
	{Name: "Fujairah Fort", Emirate: "fujairah", Price: 5, Duration: "1 hour", Category: "heritage", Description: "A restored 16th-century fort above the old town."},
}

type FallbackGenerator struct{}

func NewFallbackGenerator() FallbackGenerator {
	return FallbackGenerator{}
}

// Generate builds exactly 3 packages. A zero seed derives one from the clock;
// tests pass a fixed seed for reproducible selection indices.
func (g FallbackGenerator) Generate(sub *db_models.Submission, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport, seed int64) []response_models.ItineraryPackage {
	if len(attractions) == 0 {
		attractions = embeddedRowsFor(sub.Emirates)
	}
	if ceiling := budgetCeiling(sub.Budget); ceiling > 0 {
		attractions = filterByCeiling(attractions, ceiling)
	}

	nights := sub.Nights
	if nights < 1 {
		nights = 1
	}

	rng := utils.NewLCG(seed)
	templates := themeSets[classifyTraveler(sub)]

	packages := make([]response_models.ItineraryPackage, 0, 3)
	for p := 0; p < 3; p++ {
		tpl := templates[p]
		pkg := response_models.ItineraryPackage{
			ID:          uuid.NewString(),
			Title:       tpl.title,
			Description: tpl.description,
			Theme:       tpl.theme,
			Method:      "Random",
			Days:        make([]response_models.DayPlan, 0, nights),
		}

		// Each package rotates through its own shuffled copy of the pool so
		// the three packages do not share an ordering.
		pool := make([]db_models.Attraction, len(attractions))
		copy(pool, attractions)
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		cursor := 0

		for d := 0; d < nights; d++ {
			day := response_models.DayPlan{
				Day:         d + 1,
				Title:       dayTitlePhrases[d%len(dayTitlePhrases)],
				Description: dayDescPhrases[d%len(dayDescPhrases)],
			}

			count := 1 + rng.Intn(2)
			for i := 0; i < count && i < len(pool); i++ {
				row := pool[cursor%len(pool)]
				cursor++
				day.Attractions = append(day.Attractions, attractionEntryFromRow(row, i, d))
			}

			if len(hotels) > 0 {
				day.Hotel = hotels[(d/3)%len(hotels)].Name
			}
			if len(transports) > 0 {
				day.Transport = transports[d%len(transports)].Name
			}
			if len(day.Attractions) > 0 {
				day.Image = day.Attractions[0].Image
			}

			pkg.Days = append(pkg.Days, day)
		}

		packages = append(packages, pkg)
	}
	return packages
}

func attractionEntryFromRow(row db_models.Attraction, slotIdx, dayIdx int) response_models.AttractionEntry {
	slot := "Morning"
	if slotIdx > 0 {
		slot = "Afternoon"
	}
	duration := row.Duration
	if duration == "" {
		duration = defaultDuration
	}
	image := row.ImageURL
	if image == "" {
		image = placeholderImage
	}
	return response_models.AttractionEntry{
		Name:        row.Name,
		Emirate:     row.Emirate,
		Price:       row.Price,
		Duration:    duration,
		Description: row.Description,
		Image:       image,
		Slot:        slot,
		Tip:         dayTipPhrases[dayIdx%len(dayTipPhrases)],
	}
}

func filterByCeiling(rows []db_models.Attraction, ceiling float64) []db_models.Attraction {
	filtered := make([]db_models.Attraction, 0, len(rows))
	for _, r := range rows {
		if r.Price <= ceiling {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return rows
	}
	return filtered
}

// embeddedRowsFor narrows the embedded table to the requested emirates,
// keeping the whole table when nothing matches.
func embeddedRowsFor(emirates []string) []db_models.Attraction {
	if len(emirates) == 0 {
		return embeddedAttractions
	}
	wanted := make(map[string]bool, len(emirates))
	for _, e := range emirates {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "all" {
			return embeddedAttractions
		}
		wanted[e] = true
	}

	matched := make([]db_models.Attraction, 0, len(embeddedAttractions))
	for _, row := range embeddedAttractions {
		if wanted[strings.ToLower(row.Emirate)] {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return embeddedAttractions
	}
	return matched
}
