package controllers

import (
	"safar/internal/models/request_models"
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct {
	service services.BookingService
}

func NewBookingController(service services.BookingService) *BookingController {
	return &BookingController{service: service}
}

func (ctrl *BookingController) Create(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	id, err := ctrl.service.Create(c.Request.Context(), req.SubmissionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"booking_id": id}, "Booking created")
}

func (ctrl *BookingController) GetByID(c *gin.Context) {
	booking, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "")
}

func (ctrl *BookingController) List(c *gin.Context) {
	page, pageSize := pagination(c)
	bookings, err := ctrl.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "")
}

func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, 400, "Invalid id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	if err := ctrl.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Booking status updated")
}
