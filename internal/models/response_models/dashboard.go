package response_models

type EmirateCount struct {
	Emirate string `json:"emirate"`
	Count   int64  `json:"count"`
}

type RecentBooking struct {
	ID           string  `json:"id"`
	PackageTitle string  `json:"package_title"`
	TotalCost    float64 `json:"total_cost"`
	Status       string  `json:"status"`
	ContactName  string  `json:"contact_name"`
	CreatedAt    int64   `json:"created_at"`
}

type DashboardReport struct {
	TotalSubmissions     int64           `json:"total_submissions"`
	TotalBookings        int64           `json:"total_bookings"`
	TotalAttractions     int64           `json:"total_attractions"`
	TotalHotels          int64           `json:"total_hotels"`
	TotalTransports      int64           `json:"total_transports"`
	BookingRevenue       float64         `json:"booking_revenue"`
	SubmissionsByEmirate []EmirateCount  `json:"submissions_by_emirate"`
	RecentBookings       []RecentBooking `json:"recent_bookings"`
}
