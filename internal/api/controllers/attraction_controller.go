package controllers

import (
	"strings"

	"safar/internal/models/request_models"
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttractionController struct {
	service services.AttractionService
}

func NewAttractionController(service services.AttractionService) *AttractionController {
	return &AttractionController{service: service}
}

// List serves the public browse surface; an emirates query param narrows the
// result ("?emirates=dubai,sharjah", or "all").
func (ctrl *AttractionController) List(c *gin.Context) {
	if raw := c.Query("emirates"); raw != "" {
		attractions, err := ctrl.service.ListByEmirates(c.Request.Context(), strings.Split(raw, ","))
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, attractions, "")
		return
	}

	page, pageSize := pagination(c)
	attractions, err := ctrl.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "")
}

func (ctrl *AttractionController) Search(c *gin.Context) {
	name := c.Query("q")
	if name == "" {
		utils.RespondError(c, 400, "Query parameter q is required")
		return
	}

	page, pageSize := pagination(c)
	attractions, err := ctrl.service.SearchByName(c.Request.Context(), name, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attractions, "")
}

func (ctrl *AttractionController) GetByID(c *gin.Context) {
	attraction, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attraction, "")
}

func (ctrl *AttractionController) Create(c *gin.Context) {
	var req request_models.CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	id, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Attraction created")
}

func (ctrl *AttractionController) Update(c *gin.Context) {
	var req request_models.UpdateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	if err := ctrl.service.Update(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Attraction updated")
}

func (ctrl *AttractionController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, 400, "Invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Attraction deleted")
}
