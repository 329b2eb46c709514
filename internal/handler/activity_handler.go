package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/service"
	"github.com/mpendle/fitstore/pkg/response"
)

// ActivityHandler handles HTTP requests for activities and their recorded
// sessions.
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Activities handles GET /api/v1/activities
func (h *ActivityHandler) Activities(c *gin.Context) {
	activities, err := h.activityService.Activities()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, activities)
}

// Journals handles GET /api/v1/activities/journals
func (h *ActivityHandler) Journals(c *gin.Context) {
	pattern := models.NamePattern(c.Query("name"))
	if err := pattern.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	journals, err := h.activityService.ActivityJournals(pattern)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, journals)
}

// Waypoints handles GET /api/v1/activities/waypoints
func (h *ActivityHandler) Waypoints(c *gin.Context) {
	pattern := models.NamePattern(c.Query("name"))
	if err := pattern.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	start, err := parseTime(c.Query("start"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	strict := c.Query("strict") == "true"
	series, err := h.activityService.ActivityWaypoints(pattern, start, strict)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, series)
}
