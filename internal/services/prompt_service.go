package services

import (
	"fmt"
	"strings"

	"safar/internal/models/db_models"
)

// Prompt construction is pure string work: cap the resource rows by trip
// length, render them as compact tables, and wrap them in a request for
// exactly three themed packages in a fixed JSON shape. Long trips (>10
// nights) switch to a compressed weekly-highlights shape so the completion
// stays within the output-token ceiling.

const (
	weeklyFormatThreshold = 10

	tokenCeilingLong  = 20000
	tokenCeilingShort = 25000

	hotelCap          = 6
	transportCap      = 5
	hotelCapLong      = 4
	transportCapLong  = 3
	reducedCapShort   = 8
	reducedCapLong    = 6
	shortTripNights   = 7
	mediumTripNights  = 15
)

// attractionCap picks the attraction-subset size by trip length.
func attractionCap(nights int) int {
	switch {
	case nights <= shortTripNights:
		return 15
	case nights <= mediumTripNights:
		return 12
	default:
		return 10
	}
}

type PromptBuilder struct{}

func NewPromptBuilder() PromptBuilder {
	return PromptBuilder{}
}

// Build assembles the generation prompt. It never fails: if the estimated
// token count blows the ceiling it rebuilds once with an ultra-reduced
// attraction list and returns that, oversized or not.
func (b PromptBuilder) Build(sub *db_models.Submission, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport) string {
	aCap := attractionCap(sub.Nights)
	hCap, tCap := hotelCap, transportCap
	if sub.Nights > weeklyFormatThreshold {
		hCap, tCap = hotelCapLong, transportCapLong
	}

	prompt := b.render(sub, capSlice(attractions, aCap), capSlice(hotels, hCap), capSlice(transports, tCap))

	ceiling := tokenCeilingShort
	if sub.Nights > weeklyFormatThreshold {
		ceiling = tokenCeilingLong
	}
	if estimateTokens(prompt) <= ceiling {
		return prompt
	}

	reduced := reducedCapShort
	if sub.Nights > shortTripNights {
		reduced = reducedCapLong
	}
	return b.render(sub, capSlice(attractions, reduced), capSlice(hotels, hCap), capSlice(transports, tCap))
}

// estimateTokens is the usual rough chars/4 heuristic.
func estimateTokens(s string) int {
	return len(s) / 4
}

func capSlice[T any](rows []T, n int) []T {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}

func (b PromptBuilder) render(sub *db_models.Submission, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a UAE travel planner. Create exactly 3 themed itinerary packages for this trip:\n")
	fmt.Fprintf(&sb, "- Travelers: %d adults, %d kids, %d infants\n", sub.Adults, sub.Kids, sub.Infants)
	fmt.Fprintf(&sb, "- Duration: %d nights\n", sub.Nights)
	fmt.Fprintf(&sb, "- Emirates: %s\n", strings.Join(sub.Emirates, ", "))
	if sub.Month != "" {
		fmt.Fprintf(&sb, "- Travel month: %s\n", sub.Month)
	}
	if sub.Budget != "" {
		fmt.Fprintf(&sb, "- Budget band: %s\n", sub.Budget)
	}
	if sub.DepartureCountry != "" {
		fmt.Fprintf(&sb, "- Departing from: %s\n", sub.DepartureCountry)
	}

	sb.WriteString("\nUse only these attractions (name | emirate | price AED | duration):\n")
	for _, a := range attractions {
		fmt.Fprintf(&sb, "%s | %s | %.0f | %s\n", a.Name, a.Emirate, a.Price, a.Duration)
	}

	sb.WriteString("\nHotels (name | stars | AED/night):\n")
	for _, h := range hotels {
		fmt.Fprintf(&sb, "%s | %d | %.0f\n", h.Name, h.Stars, h.CostPerNight)
	}

	sb.WriteString("\nTransport (name | AED/day):\n")
	for _, t := range transports {
		fmt.Fprintf(&sb, "%s | %.0f\n", t.Name, t.CostPerDay)
	}

	if sub.Nights > weeklyFormatThreshold {
		b.renderWeeklyShape(&sb, sub.Nights)
	} else {
		b.renderDailyShape(&sb, sub.Nights)
	}

	sb.WriteString("\nRespond with ONLY the JSON array, no prose, no code fences.\n")
	return sb.String()
}

func (b PromptBuilder) renderDailyShape(sb *strings.Builder, nights int) {
	fmt.Fprintf(sb, `
Return a JSON array of exactly 3 packages. Each package:
{
  "id": "string",
  "title": "string",
  "description": "string",
  "theme": "string",
  "total_cost": number,
  "days": [
    {
      "day": number,
      "title": "string",
      "description": "string",
      "attractions": [{"name": "string", "price": number, "duration": "string", "slot": "Morning|Afternoon|Evening", "tip": "string"}],
      "hotel": "hotel name from the list",
      "transport": "transport name from the list"
    }
  ]
}
Each package must contain exactly %d days numbered 1..%d.
`, nights, nights)
}

// Long trips ask for a week-block summary instead of per-day detail; the
// server expands the blocks into days afterwards.
func (b PromptBuilder) renderWeeklyShape(sb *strings.Builder, nights int) {
	weeks := (nights + 6) / 7
	fmt.Fprintf(sb, `
This is a long trip, so return a compressed weekly format. A JSON array of exactly 3 packages. Each package:
{
  "id": "string",
  "title": "string",
  "description": "string",
  "theme": "string",
  "total_cost": number,
  "weeks": [
    {
      "week": number,
      "days": "1-7",
      "theme": "string",
      "description": "string",
      "highlights": ["attraction name", "attraction name"],
      "hotel": "hotel name from the list",
      "transport": "transport name from the list",
      "budget": number
    }
  ]
}
Each package must cover all %d nights across %d weeks, with "days" giving each week's inclusive day range.
`, nights, weeks)
}
