package services

import (
	"testing"

	"safar/internal/models/db_models"
)

func assemblerFixtures() ([]db_models.Attraction, []db_models.Hotel, []db_models.Transport) {
	attractions := []db_models.Attraction{
		{Name: "Burj Khalifa", Emirate: "dubai", Price: 170, Duration: "2 hours", ImageURL: "https://example.com/burj.jpg"},
		{Name: "Louvre Abu Dhabi", Emirate: "abu dhabi", Price: 65, Duration: "3 hours", ImageURL: "https://example.com/louvre.jpg"},
		{Name: "Dubai Marina Walk", Emirate: "dubai", Price: 0, Duration: "2 hours", ImageURL: "https://example.com/marina.jpg"},
	}
	hotels := []db_models.Hotel{
		{Name: "Hotel A", CostPerNight: 300},
		{Name: "Hotel B", CostPerNight: 500},
	}
	transports := []db_models.Transport{
		{Name: "Car", CostPerDay: 200},
		{Name: "Metro", CostPerDay: 25},
		{Name: "Taxi", CostPerDay: 120},
	}
	return attractions, hotels, transports
}

func TestAssembleReconcilesNames(t *testing.T) {
	attractions, hotels, transports := assemblerFixtures()
	asm := NewAssembler()

	raws := []rawPackage{{
		ID:    "p1",
		Title: "Test",
		Days: []rawDay{{
			Day: 1,
			Attractions: []rawAttraction{
				{Name: "burj khalifa", Price: 999},           // exact, case-insensitive
				{Name: "Louvre", Price: 1},                   // substring of row name
				{Name: "The Dubai Marina Walk Experience"},   // row name is substring
				{Name: "Completely Unknown Place", Price: 0}, // no match
			},
			Hotel:     "Hotel A",
			Transport: "Car",
		}},
	}}

	pkgs := asm.Assemble(raws, 1, attractions, hotels, transports, 5)
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package, got %d", len(pkgs))
	}
	entries := pkgs[0].Days[0].Attractions
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	if entries[0].Price != 170 || entries[0].Emirate != "dubai" {
		t.Errorf("exact match not reconciled: %+v", entries[0])
	}
	if entries[1].Price != 65 {
		t.Errorf("substring match not reconciled: %+v", entries[1])
	}
	if entries[2].Price != 0 || entries[2].Image != "https://example.com/marina.jpg" {
		t.Errorf("reverse substring match not reconciled: %+v", entries[2])
	}
	if entries[3].Price != defaultAttractionFee {
		t.Errorf("unmatched entry price = %v, want default %v", entries[3].Price, defaultAttractionFee)
	}
	if entries[3].Duration != defaultDuration || entries[3].Image != placeholderImage {
		t.Errorf("unmatched entry missing defaults: %+v", entries[3])
	}
	if pkgs[0].Method != "AI" {
		t.Errorf("method = %q, want AI", pkgs[0].Method)
	}
}

func TestAssembleBackfillsMissingSlots(t *testing.T) {
	attractions, hotels, transports := assemblerFixtures()
	asm := NewAssembler()

	raws := []rawPackage{{
		ID: "p1",
		Days: []rawDay{
			{Day: 1}, {Day: 2}, {Day: 3}, {Day: 4},
		},
	}}

	pkgs := asm.Assemble(raws, 4, attractions, hotels, transports, 11)
	days := pkgs[0].Days

	// hotel: floor(i/3) mod 2, transport: i mod 3
	wantHotels := []string{"Hotel A", "Hotel A", "Hotel A", "Hotel B"}
	wantTransports := []string{"Car", "Metro", "Taxi", "Car"}
	for i, day := range days {
		if day.Hotel != wantHotels[i] {
			t.Errorf("day %d hotel = %q, want %q", i+1, day.Hotel, wantHotels[i])
		}
		if day.Transport != wantTransports[i] {
			t.Errorf("day %d transport = %q, want %q", i+1, day.Transport, wantTransports[i])
		}
		if len(day.Attractions) == 0 {
			t.Errorf("day %d not backfilled with an attraction", i+1)
		}
	}
}

func TestAssembleExpandsWeeks(t *testing.T) {
	attractions, hotels, transports := assemblerFixtures()
	asm := NewAssembler()

	raws := []rawPackage{{
		ID:    "p1",
		Title: "Long Trip",
		Weeks: []rawWeek{
			{Week: 1, DaySpan: "1-7", Theme: "City Week", Description: "Skylines", Highlights: []rawAttraction{{Name: "Burj Khalifa"}, {Name: "Louvre Abu Dhabi"}}, Hotel: "Hotel A", Transport: "Metro", Budget: 1400},
			{Week: 2, DaySpan: "8-14", Theme: "Desert Week", Description: "Dunes", Highlights: []rawAttraction{{Name: "Dubai Marina Walk"}}, Hotel: "Hotel B", Transport: "Car", Budget: 700},
		},
	}}

	pkgs := asm.Assemble(raws, 14, attractions, hotels, transports, 21)
	days := pkgs[0].Days

	if len(days) != 14 {
		t.Fatalf("expected 14 days, got %d", len(days))
	}
	if days[0].Title != "City Week" || days[6].Title != "City Week" {
		t.Errorf("week 1 theme not carried into day titles: %q / %q", days[0].Title, days[6].Title)
	}
	if days[7].Title != "Desert Week" {
		t.Errorf("week 2 theme not carried: %q", days[7].Title)
	}

	// Highlights cycle within the week.
	if days[0].Attractions[0].Name != "Burj Khalifa" {
		t.Errorf("day 1 highlight = %q", days[0].Attractions[0].Name)
	}
	if days[1].Attractions[0].Name != "Louvre Abu Dhabi" {
		t.Errorf("day 2 highlight = %q", days[1].Attractions[0].Name)
	}
	if days[2].Attractions[0].Name != "Burj Khalifa" {
		t.Errorf("day 3 highlight = %q", days[2].Attractions[0].Name)
	}

	for i, day := range days {
		if day.Day != i+1 {
			t.Errorf("day index %d = %d, want %d", i, day.Day, i+1)
		}
	}
	if days[0].Hotel != "Hotel A" || days[13].Hotel != "Hotel B" {
		t.Errorf("week hotels not carried: %q / %q", days[0].Hotel, days[13].Hotel)
	}
}

func TestAssembleWeeksWithBadSpanFallsBackToBlocks(t *testing.T) {
	attractions, hotels, transports := assemblerFixtures()
	asm := NewAssembler()

	raws := []rawPackage{{
		ID: "p1",
		Weeks: []rawWeek{
			{Week: 1, DaySpan: "first week", Theme: "W1", Highlights: []rawAttraction{{Name: "Burj Khalifa"}}},
			{Week: 2, DaySpan: "??", Theme: "W2", Highlights: []rawAttraction{{Name: "Louvre Abu Dhabi"}}},
		},
	}}

	pkgs := asm.Assemble(raws, 12, attractions, hotels, transports, 2)
	days := pkgs[0].Days
	if len(days) != 12 {
		t.Fatalf("expected 12 days, got %d", len(days))
	}
	if days[0].Title != "W1" || days[7].Title != "W2" {
		t.Errorf("positional 7-day blocks not applied: %q / %q", days[0].Title, days[7].Title)
	}
}

func TestAssemblePadsShortPackages(t *testing.T) {
	attractions, hotels, transports := assemblerFixtures()
	asm := NewAssembler()

	raws := []rawPackage{{
		ID:   "p1",
		Days: []rawDay{{Day: 1, Title: "Only Day"}},
	}}

	pkgs := asm.Assemble(raws, 3, attractions, hotels, transports, 17)
	if len(pkgs[0].Days) != 3 {
		t.Fatalf("expected 3 days after padding, got %d", len(pkgs[0].Days))
	}
	if pkgs[0].Days[2].Day != 3 {
		t.Errorf("padded day index = %d, want 3", pkgs[0].Days[2].Day)
	}
	if pkgs[0].Days[2].Hotel == "" || pkgs[0].Days[2].Transport == "" {
		t.Error("padded day missing hotel or transport")
	}
}

func TestAssembleRecomputesTotals(t *testing.T) {
	attractions, hotels, transports := assemblerFixtures()
	asm := NewAssembler()

	raws := []rawPackage{{
		ID:        "p1",
		TotalCost: 999999, // the model's own total is ignored
		Days: []rawDay{{
			Day:         1,
			Attractions: []rawAttraction{{Name: "Burj Khalifa"}},
			Hotel:       "Hotel A",
			Transport:   "Metro",
		}},
	}}

	pkgs := asm.Assemble(raws, 1, attractions, hotels, transports, 1)
	want := 170.0 + 300 + 25
	if pkgs[0].TotalCost != want {
		t.Errorf("total = %v, want %v", pkgs[0].TotalCost, want)
	}
	if pkgs[0].Days[0].Costs.Total != want {
		t.Errorf("day total = %v, want %v", pkgs[0].Days[0].Costs.Total, want)
	}
}
