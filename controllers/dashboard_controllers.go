package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/laundry-app/services"
	"github.com/yeremiapane/laundry-app/utils"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetOwnerStats never fails; broken counters come back as zero.
func (dc *DashboardController) GetOwnerStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Statistik owner", dc.Dashboard.OwnerStats(c.Request.Context()))
}

func (dc *DashboardController) GetOrderCounts(c *gin.Context) {
	counts, err := dc.Dashboard.StaffCounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Jumlah order", counts)
}

func (dc *DashboardController) GetReports(c *gin.Context) {
	rows, err := dc.Dashboard.Reports(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Laporan transaksi", rows)
}

// ExportReports streams the report as a file: ?format=xlsx (default) or pdf.
func (dc *DashboardController) ExportReports(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	if format != "xlsx" && format != "pdf" {
		utils.RespondMessage(c, http.StatusBadRequest, "Format tidak didukung, gunakan xlsx atau pdf")
		return
	}

	rows, err := dc.Dashboard.Reports(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	now := time.Now()
	var buf bytes.Buffer
	contentType := contentTypeXLSX
	if format == "pdf" {
		contentType = contentTypePDF
		err = services.WriteReportPDF(&buf, rows, now)
	} else {
		err = services.WriteReportXLSX(&buf, rows)
	}
	if err != nil {
		utils.ErrorLogger.WithField("format", format).Errorf("export report: %v", err)
		utils.RespondMessage(c, http.StatusInternalServerError, "Error exporting report")
		return
	}

	filename := fmt.Sprintf("laporan-%s.%s", now.Format("20060102-150405"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
