package controllers

import (
	"safar/internal/models/request_models"
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TransportController struct {
	service services.TransportService
}

func NewTransportController(service services.TransportService) *TransportController {
	return &TransportController{service: service}
}

func (ctrl *TransportController) List(c *gin.Context) {
	transports, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, transports, "")
}

func (ctrl *TransportController) GetByID(c *gin.Context) {
	transport, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, transport, "")
}

func (ctrl *TransportController) Create(c *gin.Context) {
	var req request_models.CreateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	id, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Transport option created")
}

func (ctrl *TransportController) Update(c *gin.Context) {
	var req request_models.UpdateTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	if err := ctrl.service.Update(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Transport option updated")
}

func (ctrl *TransportController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, 400, "Invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Transport option deleted")
}
