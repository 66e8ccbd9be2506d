package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodging-backend/services"
	"lodging-backend/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// FinancialReport renders per-group revenue and the grand total.
func (ctl *ReportController) FinancialReport(c *gin.Context) {
	report, total, err := ctl.Reports.FinancialReport()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
		"total":   total,
	})
}
