package controllers

import (
	"net/http"

	"frontdesk-backend/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Stats: svc}
}

func (ctrl *StatsController) GetStatistics(c *gin.Context) {
	stats, err := ctrl.Stats.Collect()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
