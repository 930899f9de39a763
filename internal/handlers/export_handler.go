package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/services"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/utils"
)

// ExportHandler serves assessment result downloads.
type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportResultsExcel handles GET /api/v1/exports/results.xlsx
// @Summary Download assessment results as an Excel workbook
func (h *ExportHandler) ExportResultsExcel(c *gin.Context) {
	filters := parseExportFilters(c)

	h.LogRequest(c, "Exporting results to Excel")

	data, err := h.exportService.ExportResultsToExcel(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("assessment_results_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportResultsCSV handles GET /api/v1/exports/results.csv
// @Summary Download assessment results as CSV
func (h *ExportHandler) ExportResultsCSV(c *gin.Context) {
	filters := parseExportFilters(c)

	h.LogRequest(c, "Exporting results to CSV")

	data, err := h.exportService.ExportResultsToCSV(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("assessment_results_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// parseExportFilters builds attempt filters from query parameters.
func parseExportFilters(c *gin.Context) repositories.AttemptFilters {
	filters := repositories.AttemptFilters{
		Status:      models.AttemptStatus(c.Query("status")),
		OverallPass: parseBoolQueryPtr(c, "overall_pass"),
		SortBy:      c.DefaultQuery("sort_by", "created_at"),
		SortOrder:   c.DefaultQuery("sort_order", "desc"),
	}

	if raw := c.Query("division"); raw != "" {
		d := models.DivisionType(raw)
		filters.Division = &d
	}
	if id := parseIntQuery(c, "crew_member_id", 0); id > 0 {
		crewID := uint(id)
		filters.CrewMemberID = &crewID
	}
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filters.DateFrom = &t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filters.DateTo = &t
		}
	}

	return filters
}
