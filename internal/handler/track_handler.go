package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geolife-backend-go/internal/models"
	"github.com/jengzang/geolife-backend-go/internal/service"
	"github.com/jengzang/geolife-backend-go/pkg/response"
)

// TrackHandler handles HTTP requests for the ingested model
type TrackHandler struct {
	trackService *service.TrackService
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(trackService *service.TrackService) *TrackHandler {
	return &TrackHandler{trackService: trackService}
}

// GetUsers handles GET /api/v1/users
func (h *TrackHandler) GetUsers(c *gin.Context) {
	var filter models.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	users, total, err := h.trackService.GetUsers(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, models.UsersResponse{
		Data:     users,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// GetActivities handles GET /api/v1/activities
func (h *TrackHandler) GetActivities(c *gin.Context) {
	var filter models.ActivityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	activities, err := h.trackService.GetActivities(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, activities)
}

// GetActivityTrackPoints handles GET /api/v1/activities/:id/trackpoints
func (h *TrackHandler) GetActivityTrackPoints(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid activity id")
		return
	}

	points, err := h.trackService.GetActivityTrackPoints(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, points)
}
