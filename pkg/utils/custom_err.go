package utils

import "errors"

var (
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrAttractionNotFound   = errors.New("attraction not found")
	ErrHotelNotFound        = errors.New("hotel not found")
	ErrTransportNotFound    = errors.New("transport option not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrDayNotFound          = errors.New("day not found in itinerary")
	ErrDayOverbooked        = errors.New("day schedule exceeds the 8 hour limit")
	ErrGenerationInFlight   = errors.New("a generation for this submission is already running")
	ErrCompletionFailed     = errors.New("text completion request failed")
	ErrUnparsableCompletion = errors.New("completion could not be parsed into packages")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAdminDisabled        = errors.New("admin access is disabled")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrDatabaseError        = errors.New("database error")
)
