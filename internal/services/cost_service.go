package services

import (
	"strings"

	"safar/internal/models/db_models"
	"safar/internal/models/response_models"
)

// Cost defaults applied when a hotel or transport reference cannot be resolved
// against the fetched rows. Generated packages may carry names the database
// has never seen; costing still has to produce a number.
const (
	defaultHotelCost     = 300
	defaultTransportCost = 150
	defaultAttractionFee = 150
)

// ResourceIndex resolves bare hotel/transport name references to their current
// costs. Lookup is case-insensitive; misses fall back to the defaults above.
type ResourceIndex struct {
	hotelCosts     map[string]float64
	transportCosts map[string]float64
}

func NewResourceIndex(hotels []db_models.Hotel, transports []db_models.Transport) ResourceIndex {
	idx := ResourceIndex{
		hotelCosts:     make(map[string]float64, len(hotels)),
		transportCosts: make(map[string]float64, len(transports)),
	}
	for _, h := range hotels {
		idx.hotelCosts[strings.ToLower(h.Name)] = h.CostPerNight
	}
	for _, t := range transports {
		idx.transportCosts[strings.ToLower(t.Name)] = t.CostPerDay
	}
	return idx
}

func (idx ResourceIndex) HotelCost(name string) float64 {
	if cost, ok := idx.hotelCosts[strings.ToLower(strings.TrimSpace(name))]; ok && cost > 0 {
		return cost
	}
	return defaultHotelCost
}

func (idx ResourceIndex) TransportCost(name string) float64 {
	if cost, ok := idx.transportCosts[strings.ToLower(strings.TrimSpace(name))]; ok && cost > 0 {
		return cost
	}
	return defaultTransportCost
}

// DayCost derives the per-category breakdown for one day. Negative or missing
// attraction prices count as zero rather than propagating an error.
func DayCost(day response_models.DayPlan, idx ResourceIndex) response_models.CostBreakdown {
	var attractions float64
	for _, entry := range day.Attractions {
		if entry.Price > 0 {
			attractions += entry.Price
		}
	}

	hotel := idx.HotelCost(day.Hotel)
	transport := idx.TransportCost(day.Transport)

	return response_models.CostBreakdown{
		Attractions: attractions,
		Hotel:       hotel,
		Transport:   transport,
		Total:       attractions + hotel + transport,
	}
}

// RecomputePackage refreshes every day's breakdown and the package total.
// Called after assembly and after every mutation.
func RecomputePackage(pkg *response_models.ItineraryPackage, idx ResourceIndex) {
	var total float64
	for i := range pkg.Days {
		pkg.Days[i].Costs = DayCost(pkg.Days[i], idx)
		total += pkg.Days[i].Costs.Total
	}
	pkg.TotalCost = total
}
