package services

import (
	"testing"

	"safar/internal/models/db_models"
	"safar/internal/models/response_models"
)

func testIndex() ResourceIndex {
	hotels := []db_models.Hotel{
		{Name: "Atlantis The Palm", Stars: 5, CostPerNight: 1200},
		{Name: "Rove Downtown", Stars: 3, CostPerNight: 350},
	}
	transports := []db_models.Transport{
		{Name: "Private Car", CostPerDay: 400},
		{Name: "Metro Pass", CostPerDay: 25},
	}
	return NewResourceIndex(hotels, transports)
}

func TestResourceIndexLookup(t *testing.T) {
	idx := testIndex()

	if got := idx.HotelCost("rove downtown"); got != 350 {
		t.Errorf("case-insensitive hotel lookup = %v, want 350", got)
	}
	if got := idx.HotelCost("Unknown Hotel"); got != defaultHotelCost {
		t.Errorf("unknown hotel = %v, want default %v", got, defaultHotelCost)
	}
	if got := idx.TransportCost(" METRO PASS "); got != 25 {
		t.Errorf("trimmed transport lookup = %v, want 25", got)
	}
	if got := idx.TransportCost(""); got != defaultTransportCost {
		t.Errorf("empty transport = %v, want default %v", got, defaultTransportCost)
	}
}

func TestDayCost(t *testing.T) {
	idx := testIndex()
	day := response_models.DayPlan{
		Attractions: []response_models.AttractionEntry{
			{Name: "Burj Khalifa", Price: 170},
			{Name: "Free Beach", Price: 0},
			{Name: "Bad Row", Price: -5}, // malformed prices count as zero
		},
		Hotel:     "Rove Downtown",
		Transport: "Metro Pass",
	}

	costs := DayCost(day, idx)
	if costs.Attractions != 170 {
		t.Errorf("attractions = %v, want 170", costs.Attractions)
	}
	if costs.Hotel != 350 || costs.Transport != 25 {
		t.Errorf("hotel/transport = %v/%v, want 350/25", costs.Hotel, costs.Transport)
	}
	if costs.Total != 545 {
		t.Errorf("total = %v, want 545", costs.Total)
	}
}

// Round-trip property: after any mutation, recomputing yields the original
// total plus exactly the delta of the mutation.
func TestRecomputePackageRoundTrip(t *testing.T) {
	idx := testIndex()
	pkg := response_models.ItineraryPackage{
		Days: []response_models.DayPlan{
			{Day: 1, Attractions: []response_models.AttractionEntry{{Name: "A", Price: 100}}, Hotel: "Rove Downtown", Transport: "Metro Pass"},
			{Day: 2, Attractions: []response_models.AttractionEntry{{Name: "B", Price: 200}}, Hotel: "Rove Downtown", Transport: "Private Car"},
		},
	}

	RecomputePackage(&pkg, idx)
	before := pkg.TotalCost

	var manual float64
	for _, d := range pkg.Days {
		manual += d.Costs.Total
	}
	if before != manual {
		t.Fatalf("package total %v != sum of day totals %v", before, manual)
	}

	// Mutate: add a 60 AED attraction to day 1.
	pkg.Days[0].Attractions = append(pkg.Days[0].Attractions, response_models.AttractionEntry{Name: "C", Price: 60})
	RecomputePackage(&pkg, idx)

	if pkg.TotalCost != before+60 {
		t.Errorf("after mutation total = %v, want %v", pkg.TotalCost, before+60)
	}
}
