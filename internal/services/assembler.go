package services

import (
	"strings"

	"safar/internal/models/db_models"
	"safar/internal/models/response_models"
	"safar/pkg/utils"

	"github.com/google/uuid"
)

// Defaults for attraction entries the generation paths could not resolve
// against the fetched rows.
const (
	defaultDuration  = "2 hours"
	placeholderImage = "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800"
)

// Assembler turns parsed completion packages into display-ready itineraries:
// weekly blocks become days, missing slots are backfilled from the fetched
// rows, attraction names are reconciled against the database, and costs are
// recomputed. It never errors; absent data degrades to defaults.
type Assembler struct{}

func NewAssembler() Assembler {
	return Assembler{}
}

func (a Assembler) Assemble(raws []rawPackage, nights int, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport, seed int64) []response_models.ItineraryPackage {
	idx := NewResourceIndex(hotels, transports)
	rng := utils.NewLCG(seed)

	packages := make([]response_models.ItineraryPackage, 0, len(raws))
	for _, raw := range raws {
		pkg := response_models.ItineraryPackage{
			ID:          raw.ID,
			Title:       raw.Title,
			Description: raw.Description,
			Theme:       raw.Theme,
			Method:      "AI",
		}
		if pkg.ID == "" {
			pkg.ID = uuid.NewString()
		}
		if pkg.Title == "" {
			pkg.Title = "UAE Itinerary"
		}

		days := raw.Days
		if len(days) == 0 && len(raw.Weeks) > 0 {
			days = expandWeeks(raw.Weeks, nights)
		}

		for i, rd := range days {
			pkg.Days = append(pkg.Days, a.buildDay(rd, i, attractions, hotels, transports, rng))
		}
		a.padDays(&pkg, nights, attractions, hotels, transports, rng)

		RecomputePackage(&pkg, idx)
		packages = append(packages, pkg)
	}
	return packages
}

// expandWeeks flattens weekly-highlights blocks into per-day entries: each
// day in the span takes one highlight (cycling), the week's theme as its
// title, and an even share of the week's budget.
func expandWeeks(weeks []rawWeek, nights int) []rawDay {
	var days []rawDay
	nextDay := 1

	for wi, week := range weeks {
		start, end, ok := parseDaySpan(week.DaySpan)
		if !ok {
			start = wi*7 + 1
			end = start + 6
		}
		if start < nextDay {
			start = nextDay
		}
		if nights > 0 && end > nights {
			end = nights
		}
		if end < start {
			continue
		}

		span := end - start + 1
		perDayBudget := float64(week.Budget)
		if span > 0 {
			perDayBudget /= float64(span)
		}

		for d := start; d <= end; d++ {
			day := rawDay{
				Day:         flexInt(d),
				Title:       week.Theme,
				Description: week.Description,
				Hotel:       week.Hotel,
				Transport:   week.Transport,
			}
			if len(week.Highlights) > 0 {
				h := week.Highlights[(d-start)%len(week.Highlights)]
				if h.Price == 0 && perDayBudget > 0 {
					h.Price = perDayBudget
				}
				day.Attractions = []rawAttraction{h}
			}
			days = append(days, day)
		}
		nextDay = end + 1
	}
	return days
}

func (a Assembler) buildDay(rd rawDay, dayIdx int, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport, rng *utils.LCG) response_models.DayPlan {
	day := response_models.DayPlan{
		Day:         int(rd.Day),
		Title:       rd.Title,
		Description: rd.Description,
		Hotel:       strings.TrimSpace(rd.Hotel),
		Transport:   strings.TrimSpace(rd.Transport),
	}
	if day.Day == 0 {
		day.Day = dayIdx + 1
	}
	if day.Title == "" {
		day.Title = dayTitlePhrases[dayIdx%len(dayTitlePhrases)]
	}

	for _, ra := range rd.Attractions {
		if strings.TrimSpace(ra.Name) == "" {
			continue
		}
		day.Attractions = append(day.Attractions, reconcileAttraction(ra, attractions))
	}

	backfillDay(&day, dayIdx, attractions, hotels, transports, rng)

	if day.Image == "" && len(day.Attractions) > 0 {
		day.Image = day.Attractions[0].Image
	}
	return day
}

// backfillDay fills whatever the completion left out. Attractions come from a
// seeded pseudo-random index; hotel and transport follow fixed modulo rules so
// consecutive days share a hotel for three nights and rotate transport daily.
func backfillDay(day *response_models.DayPlan, dayIdx int, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport, rng *utils.LCG) {
	if len(day.Attractions) == 0 && len(attractions) > 0 {
		row := attractions[rng.Intn(len(attractions))]
		day.Attractions = append(day.Attractions, attractionEntryFromRow(row, 0, dayIdx))
	}
	if day.Hotel == "" && len(hotels) > 0 {
		day.Hotel = hotels[(dayIdx/3)%len(hotels)].Name
	}
	if day.Transport == "" && len(transports) > 0 {
		day.Transport = transports[dayIdx%len(transports)].Name
	}
}

// padDays extends a package that came back short so every package covers the
// full trip.
func (a Assembler) padDays(pkg *response_models.ItineraryPackage, nights int, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport, rng *utils.LCG) {
	for len(pkg.Days) < nights {
		i := len(pkg.Days)
		day := response_models.DayPlan{
			Day:         i + 1,
			Title:       dayTitlePhrases[i%len(dayTitlePhrases)],
			Description: dayDescPhrases[i%len(dayDescPhrases)],
		}
		backfillDay(&day, i, attractions, hotels, transports, rng)
		if len(day.Attractions) > 0 {
			day.Image = day.Attractions[0].Image
		}
		pkg.Days = append(pkg.Days, day)
	}
}

// reconcileAttraction matches a completion-supplied name against the fetched
// rows, case-insensitively, exact or substring in either direction. A match
// takes the row's authoritative price, emirate and image; a miss keeps the
// supplied values padded with defaults.
func reconcileAttraction(ra rawAttraction, rows []db_models.Attraction) response_models.AttractionEntry {
	entry := response_models.AttractionEntry{
		Name:     strings.TrimSpace(ra.Name),
		Price:    ra.Price,
		Duration: strings.TrimSpace(ra.Duration),
		Slot:     ra.Slot,
		Tip:      ra.Tip,
	}

	row := matchRow(entry.Name, rows)
	if row != nil {
		entry.Price = row.Price
		entry.Emirate = row.Emirate
		entry.Image = row.ImageURL
		if entry.Duration == "" {
			entry.Duration = row.Duration
		}
		entry.Description = row.Description
	}

	// Free attractions from the database keep their zero price; only
	// unresolved entries fall back to the default fee.
	if row == nil && entry.Price <= 0 {
		entry.Price = defaultAttractionFee
	}
	if entry.Duration == "" {
		entry.Duration = defaultDuration
	}
	if entry.Image == "" {
		entry.Image = placeholderImage
	}
	return entry
}

func matchRow(name string, rows []db_models.Attraction) *db_models.Attraction {
	lower := strings.ToLower(name)
	if lower == "" {
		return nil
	}
	// Exact match wins over substring.
	for i := range rows {
		if strings.ToLower(rows[i].Name) == lower {
			return &rows[i]
		}
	}
	for i := range rows {
		rowLower := strings.ToLower(rows[i].Name)
		if strings.Contains(rowLower, lower) || strings.Contains(lower, rowLower) {
			return &rows[i]
		}
	}
	return nil
}
