package request_models

type SwapHotelRequest struct {
	Hotel string `json:"hotel" binding:"required"`
}

type SwapTransportRequest struct {
	Transport string `json:"transport" binding:"required"`
}

// ToggleAttractionRequest adds the attraction to the day if absent, removes it
// if present. Fields beyond the name are used only when adding.
type ToggleAttractionRequest struct {
	Name     string  `json:"name" binding:"required"`
	Emirate  string  `json:"emirate"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	Image    string  `json:"image"`
	Slot     string  `json:"slot"`
	Tip      string  `json:"tip"`
}

type UpdateDayRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
