package request_models

// SubmitPreferencesRequest mirrors the preferences form. TripDuration arrives
// as free text from the form and is parsed into nights on submit.
type SubmitPreferencesRequest struct {
	Adults           int      `json:"adults" binding:"required,min=1"`
	Kids             int      `json:"kids"`
	Infants          int      `json:"infants"`
	TripDuration     string   `json:"trip_duration" binding:"required"`
	Emirates         []string `json:"emirates" binding:"required,min=1"`
	Month            string   `json:"month"`
	Budget           string   `json:"budget"`
	DepartureCountry string   `json:"departure_country"`
	ContactName      string   `json:"contact_name"`
	ContactEmail     string   `json:"contact_email"`
	ContactPhone     string   `json:"contact_phone"`
}

type GenerateItineraryRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
	// Seed 0 derives one from the clock.
	Seed int64 `json:"seed"`
}

type SelectPackageRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
	PackageID    string `json:"package_id" binding:"required"`
}

type CreateBookingRequest struct {
	SubmissionID string `json:"submission_id" binding:"required"`
}
