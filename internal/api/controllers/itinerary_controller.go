package controllers

import (
	"strconv"

	"safar/internal/models/request_models"
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	itineraries services.ItineraryService
	customize   services.CustomizeService
}

func NewItineraryController(itineraries services.ItineraryService, customize services.CustomizeService) *ItineraryController {
	return &ItineraryController{itineraries: itineraries, customize: customize}
}

func (ctrl *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	packages, err := ctrl.itineraries.Generate(c.Request.Context(), req.SubmissionID, req.Seed)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, packages, "Itinerary packages generated")
}

// GetGenerated re-serves the cached packages between generation and selection.
func (ctrl *ItineraryController) GetGenerated(c *gin.Context) {
	packages, err := ctrl.itineraries.GetGenerated(c.Request.Context(), c.Param("submissionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, packages, "")
}

func (ctrl *ItineraryController) SelectPackage(c *gin.Context) {
	var req request_models.SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	saved, err := ctrl.itineraries.SelectPackage(c.Request.Context(), req.SubmissionID, req.PackageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Package selected")
}

func (ctrl *ItineraryController) GetSaved(c *gin.Context) {
	saved, err := ctrl.itineraries.GetSaved(c.Request.Context(), c.Param("submissionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "")
}

func (ctrl *ItineraryController) SwapHotel(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req request_models.SwapHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	saved, err := ctrl.customize.SwapHotel(c.Request.Context(), c.Param("submissionId"), day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Hotel updated")
}

func (ctrl *ItineraryController) SwapTransport(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req request_models.SwapTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	saved, err := ctrl.customize.SwapTransport(c.Request.Context(), c.Param("submissionId"), day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Transport updated")
}

func (ctrl *ItineraryController) ToggleAttraction(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req request_models.ToggleAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	saved, err := ctrl.customize.ToggleAttraction(c.Request.Context(), c.Param("submissionId"), day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Day attractions updated")
}

func (ctrl *ItineraryController) UpdateDay(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req request_models.UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	saved, err := ctrl.customize.UpdateDay(c.Request.Context(), c.Param("submissionId"), day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Day updated")
}

func dayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, 400, "Day must be a positive number")
		return 0, false
	}
	return day, true
}
