package controllers

import (
	"safar/internal/models/request_models"
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelController struct {
	service services.HotelService
}

func NewHotelController(service services.HotelService) *HotelController {
	return &HotelController{service: service}
}

func (ctrl *HotelController) List(c *gin.Context) {
	hotels, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "")
}

func (ctrl *HotelController) GetByID(c *gin.Context) {
	hotel, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotel, "")
}

func (ctrl *HotelController) Create(c *gin.Context) {
	var req request_models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	id, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Hotel created")
}

func (ctrl *HotelController) Update(c *gin.Context) {
	var req request_models.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	if err := ctrl.service.Update(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Hotel updated")
}

func (ctrl *HotelController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, 400, "Invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Hotel deleted")
}
