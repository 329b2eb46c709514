package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mpendle/fitstore/internal/service"
	"github.com/mpendle/fitstore/pkg/response"
)

// MonitorHandler handles HTTP requests for monitor recording sessions.
type MonitorHandler struct {
	monitorService *service.MonitorService
}

// NewMonitorHandler creates a new monitor handler
func NewMonitorHandler(monitorService *service.MonitorService) *MonitorHandler {
	return &MonitorHandler{monitorService: monitorService}
}

// Journals handles GET /api/v1/monitor/journals
func (h *MonitorHandler) Journals(c *gin.Context) {
	journals, err := h.monitorService.MonitorJournals()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, journals)
}

// Steps handles GET /api/v1/monitor/steps
func (h *MonitorHandler) Steps(c *gin.Context) {
	samples, err := h.monitorService.MonitorSteps(c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, samples)
}

// HeartRate handles GET /api/v1/monitor/heart-rate
func (h *MonitorHandler) HeartRate(c *gin.Context) {
	samples, err := h.monitorService.MonitorHeartRate(c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, samples)
}
