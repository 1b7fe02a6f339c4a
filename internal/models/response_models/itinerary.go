package response_models

// AttractionEntry is a denormalized snapshot of an attraction row plus the
// entry-specific slot and tip. Snapshots keep a saved itinerary stable when
// admin later edits the row.
type AttractionEntry struct {
	Name        string  `json:"name"`
	Emirate     string  `json:"emirate"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Slot        string  `json:"slot,omitempty"`
	Tip         string  `json:"tip,omitempty"`
}

type CostBreakdown struct {
	Attractions float64 `json:"attractions"`
	Hotel       float64 `json:"hotel"`
	Transport   float64 `json:"transport"`
	Total       float64 `json:"total"`
}

type DayPlan struct {
	Day         int               `json:"day"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Attractions []AttractionEntry `json:"attractions"`
	Hotel       string            `json:"hotel"`
	Transport   string            `json:"transport"`
	Costs       CostBreakdown     `json:"costs"`
	Image       string            `json:"image,omitempty"`
}

type ItineraryPackage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	Method      string    `json:"method"`
	TotalCost   float64   `json:"total_cost"`
	Days        []DayPlan `json:"days"`
}

type SavedItineraryResponse struct {
	SubmissionID string           `json:"submission_id"`
	Method       string           `json:"method"`
	Package      ItineraryPackage `json:"package"`
}
