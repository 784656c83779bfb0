// controllers/statistics_controller.go
package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	StatsSvc *services.StatisticsService
}

func NewStatisticsController(svc *services.StatisticsService) *StatisticsController {
	return &StatisticsController{StatsSvc: svc}
}

// IncomeByPeriod reports reservation/service/total income for
// ?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD.
func (sc *StatisticsController) IncomeByPeriod(c *gin.Context) {
	start, err := parseDate(c.Query("startDate"))
	if err != nil || start.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "startDate is required, expected YYYY-MM-DD")
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil || end.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "endDate is required, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "endDate must not be before startDate")
		return
	}

	income, err := sc.StatsSvc.IncomeByPeriod(start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, income)
}

func (sc *StatisticsController) TopServices(c *gin.Context) {
	top, err := sc.StatsSvc.TopServices()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, top)
}

func (sc *StatisticsController) TopEmployees(c *gin.Context) {
	top, err := sc.StatsSvc.TopEmployees()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, top)
}
