package controllers

import (
	"safar/internal/services"
	"safar/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service services.DashboardService
}

func NewDashboardController(service services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (ctrl *DashboardController) Report(c *gin.Context) {
	report, err := ctrl.service.Report(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}
