package request_models

import "github.com/google/uuid"

type CreateAttractionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Emirate     string  `json:"emirate" binding:"required"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

type UpdateAttractionRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateAttractionRequest
}

type CreateHotelRequest struct {
	Name         string  `json:"name" binding:"required"`
	Stars        int     `json:"stars"`
	CostPerNight float64 `json:"cost_per_night"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
}

type UpdateHotelRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateHotelRequest
}

type CreateTransportRequest struct {
	Name        string  `json:"name" binding:"required"`
	CostPerDay  float64 `json:"cost_per_day"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

type UpdateTransportRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateTransportRequest
}
