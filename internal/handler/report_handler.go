package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geolife-backend-go/internal/service"
	"github.com/jengzang/geolife-backend-go/pkg/response"
)

// ReportHandler handles HTTP requests for the analytics reports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetRowCounts handles GET /api/v1/reports/counts
func (h *ReportHandler) GetRowCounts(c *gin.Context) {
	counts, err := h.reportService.RowCounts()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, counts)
}

// GetAverageActivities handles GET /api/v1/reports/average-activities
func (h *ReportHandler) GetAverageActivities(c *gin.Context) {
	summary, err := h.reportService.ActivityCountSummary()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{
		"averageActivitiesPerUser": summary.Mean,
		"distribution":             summary,
	})
}

// GetTopUsers handles GET /api/v1/reports/top-users
func (h *ReportHandler) GetTopUsers(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || n < 1 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	counts, err := h.reportService.TopUsersByActivityCount(n)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, counts)
}

// GetUsersByMode handles GET /api/v1/reports/users-by-mode
func (h *ReportHandler) GetUsersByMode(c *gin.Context) {
	mode := c.DefaultQuery("mode", "taxi")

	users, err := h.reportService.UsersByMode(mode)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"mode": mode, "users": users})
}

// GetModeCounts handles GET /api/v1/reports/mode-counts
func (h *ReportHandler) GetModeCounts(c *gin.Context) {
	counts, err := h.reportService.ActivityCountPerMode()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, counts)
}

// GetBusiestYear handles GET /api/v1/reports/busiest-year
func (h *ReportHandler) GetBusiestYear(c *gin.Context) {
	report, err := h.reportService.BusiestYear()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, report)
}

// GetUserModeDistance handles GET /api/v1/reports/distance
func (h *ReportHandler) GetUserModeDistance(c *gin.Context) {
	userID := c.DefaultQuery("userId", "112")
	mode := c.DefaultQuery("mode", "walk")
	year, err := strconv.Atoi(c.DefaultQuery("year", "2008"))
	if err != nil {
		response.BadRequest(c, "Invalid year parameter")
		return
	}

	distance, err := h.reportService.UserModeDistance(c.Request.Context(), userID, mode, year)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, distance)
}

// GetTopAltitudeGain handles GET /api/v1/reports/altitude-gain
func (h *ReportHandler) GetTopAltitudeGain(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || n < 1 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	ranked, err := h.reportService.TopAltitudeGain(c.Request.Context(), n)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, ranked)
}

// GetInvalidActivities handles GET /api/v1/reports/invalid-activities
func (h *ReportHandler) GetInvalidActivities(c *gin.Context) {
	report, err := h.reportService.InvalidActivityCounts(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, report)
}

// GetForbiddenCityUsers handles GET /api/v1/reports/forbidden-city
func (h *ReportHandler) GetForbiddenCityUsers(c *gin.Context) {
	users, err := h.reportService.UsersInForbiddenCity(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"users": users})
}

// GetModalModes handles GET /api/v1/reports/modal-modes
func (h *ReportHandler) GetModalModes(c *gin.Context) {
	report, err := h.reportService.ModalModes()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, report)
}
