package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	ErrCode string      `json:"error_code,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func respondCoded(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		ErrCode: errCode,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates sentinel errors into HTTP responses. Missing
// upstream state carries a machine-readable code so the client can redirect to
// the step that produces it instead of showing an error banner.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSubmissionNotFound):
		respondCoded(c, http.StatusNotFound, "submission_not_found", "Travel preferences not found, submit the form first")
	case errors.Is(err, ErrItineraryNotFound):
		respondCoded(c, http.StatusNotFound, "itinerary_not_found", "No saved itinerary, generate and select a package first")
	case errors.Is(err, ErrAttractionNotFound):
		RespondError(c, http.StatusNotFound, "Attraction not found")
	case errors.Is(err, ErrHotelNotFound):
		RespondError(c, http.StatusNotFound, "Hotel not found")
	case errors.Is(err, ErrTransportNotFound):
		RespondError(c, http.StatusNotFound, "Transport option not found")
	case errors.Is(err, ErrBookingNotFound):
		RespondError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrDayNotFound):
		RespondError(c, http.StatusNotFound, "Day not found in itinerary")
	case errors.Is(err, ErrDayOverbooked):
		RespondError(c, http.StatusUnprocessableEntity, "Adding this attraction would exceed the 8 hour day limit")
	case errors.Is(err, ErrGenerationInFlight):
		RespondError(c, http.StatusConflict, "Generation already in progress for this submission, try again shortly")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrAdminDisabled):
		RespondError(c, http.StatusForbidden, "Admin access is disabled")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
