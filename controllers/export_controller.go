package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lodging-backend/services"
	"lodging-backend/utils"
)

type ExportController struct {
	Exporter *services.ExportService
}

func NewExportController(exporter *services.ExportService) *ExportController {
	return &ExportController{Exporter: exporter}
}

// ExportExcel regenerates the guest report workbook and streams it
// back as a download.
func (ctl *ExportController) ExportExcel(c *gin.Context) {
	path, err := ctl.Exporter.BuildGuestReport()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build export")
		return
	}
	c.FileAttachment(path, services.ExportFilename)
}
