package controllers

import (
	"strconv"

	"safar/internal/models/request_models"
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	service services.SubmissionService
}

func NewSubmissionController(service services.SubmissionService) *SubmissionController {
	return &SubmissionController{service: service}
}

func (ctrl *SubmissionController) Submit(c *gin.Context) {
	var req request_models.SubmitPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, 400, "Invalid request body: "+err.Error())
		return
	}

	id, err := ctrl.service.Submit(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"submission_id": id}, "Preferences submitted")
}

func (ctrl *SubmissionController) GetByID(c *gin.Context) {
	sub, err := ctrl.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "")
}

func (ctrl *SubmissionController) List(c *gin.Context) {
	page, pageSize := pagination(c)
	subs, err := ctrl.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "")
}

// pagination reads page/page_size query params with the usual defaults.
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}
