package services

import (
	"context"
	"encoding/json"
	"strings"

	"safar/internal/models/request_models"
	"safar/internal/models/response_models"
	"safar/internal/repositories"
	"safar/pkg/utils"
)

const dayHourCap = 8.0

// CustomizeService edits the saved itinerary one synchronous mutation at a
// time. Every mutation recomputes the affected costs and writes the blob back
// before returning; a rejected mutation leaves the stored package untouched.
type CustomizeService interface {
	SwapHotel(ctx context.Context, submissionID string, day int, req request_models.SwapHotelRequest) (*response_models.SavedItineraryResponse, error)
	SwapTransport(ctx context.Context, submissionID string, day int, req request_models.SwapTransportRequest) (*response_models.SavedItineraryResponse, error)
	ToggleAttraction(ctx context.Context, submissionID string, day int, req request_models.ToggleAttractionRequest) (*response_models.SavedItineraryResponse, error)
	UpdateDay(ctx context.Context, submissionID string, day int, req request_models.UpdateDayRequest) (*response_models.SavedItineraryResponse, error)
}

type customizeService struct {
	itineraryRepo repositories.ItineraryRepository
	hotelRepo     repositories.HotelRepository
	transportRepo repositories.TransportRepository
}

func NewCustomizeService(itineraryRepo repositories.ItineraryRepository, hotelRepo repositories.HotelRepository, transportRepo repositories.TransportRepository) CustomizeService {
	return &customizeService{
		itineraryRepo: itineraryRepo,
		hotelRepo:     hotelRepo,
		transportRepo: transportRepo,
	}
}

func (s *customizeService) SwapHotel(ctx context.Context, submissionID string, day int, req request_models.SwapHotelRequest) (*response_models.SavedItineraryResponse, error) {
	hotel, err := s.hotelRepo.GetByName(ctx, req.Hotel)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hotel == nil {
		return nil, utils.ErrHotelNotFound
	}

	return s.mutate(ctx, submissionID, day, func(d *response_models.DayPlan) error {
		d.Hotel = hotel.Name
		return nil
	})
}

func (s *customizeService) SwapTransport(ctx context.Context, submissionID string, day int, req request_models.SwapTransportRequest) (*response_models.SavedItineraryResponse, error) {
	transport, err := s.transportRepo.GetByName(ctx, req.Transport)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if transport == nil {
		return nil, utils.ErrTransportNotFound
	}

	return s.mutate(ctx, submissionID, day, func(d *response_models.DayPlan) error {
		d.Transport = transport.Name
		return nil
	})
}

func (s *customizeService) ToggleAttraction(ctx context.Context, submissionID string, day int, req request_models.ToggleAttractionRequest) (*response_models.SavedItineraryResponse, error) {
	entry := response_models.AttractionEntry{
		Name:     req.Name,
		Emirate:  req.Emirate,
		Price:    req.Price,
		Duration: req.Duration,
		Image:    req.Image,
		Slot:     req.Slot,
		Tip:      req.Tip,
	}
	if entry.Duration == "" {
		entry.Duration = defaultDuration
	}
	if entry.Image == "" {
		entry.Image = placeholderImage
	}

	return s.mutate(ctx, submissionID, day, func(d *response_models.DayPlan) error {
		return toggleAttraction(d, entry)
	})
}

func (s *customizeService) UpdateDay(ctx context.Context, submissionID string, day int, req request_models.UpdateDayRequest) (*response_models.SavedItineraryResponse, error) {
	return s.mutate(ctx, submissionID, day, func(d *response_models.DayPlan) error {
		if req.Title != "" {
			d.Title = req.Title
		}
		if req.Description != "" {
			d.Description = req.Description
		}
		return nil
	})
}

// mutate is the shared read-modify-write cycle: load the blob, apply the edit
// to the addressed day, recompute costs, write back.
func (s *customizeService) mutate(ctx context.Context, submissionID string, day int, edit func(*response_models.DayPlan) error) (*response_models.SavedItineraryResponse, error) {
	saved, err := s.itineraryRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if saved == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var pkg response_models.ItineraryPackage
	if err := json.Unmarshal([]byte(saved.PackageJSON), &pkg); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	idx := -1
	for i := range pkg.Days {
		if pkg.Days[i].Day == day {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, utils.ErrDayNotFound
	}

	if err := edit(&pkg.Days[idx]); err != nil {
		return nil, err
	}

	hotels, _ := s.hotelRepo.List(ctx)
	transports, _ := s.transportRepo.List(ctx)
	RecomputePackage(&pkg, NewResourceIndex(hotels, transports))

	payload, err := json.Marshal(&pkg)
	if err != nil {
		return nil, err
	}
	saved.PackageJSON = string(payload)
	if err := s.itineraryRepo.Upsert(ctx, saved); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SavedItineraryResponse{
		SubmissionID: submissionID,
		Method:       saved.Method,
		Package:      pkg,
	}, nil
}

// toggleAttraction removes the named entry when present, otherwise adds it,
// rejecting the add when the day's total duration would strictly exceed the
// cap. Removal is never rejected.
func toggleAttraction(day *response_models.DayPlan, entry response_models.AttractionEntry) error {
	for i := range day.Attractions {
		if strings.EqualFold(day.Attractions[i].Name, entry.Name) {
			day.Attractions = append(day.Attractions[:i], day.Attractions[i+1:]...)
			return nil
		}
	}

	total := ParseDurationHours(entry.Duration)
	for _, a := range day.Attractions {
		total += ParseDurationHours(a.Duration)
	}
	if total > dayHourCap {
		return utils.ErrDayOverbooked
	}

	day.Attractions = append(day.Attractions, entry)
	return nil
}
