package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/service"
	"github.com/mpendle/fitstore/pkg/response"
)

// StatisticHandler handles HTTP requests for the statistic catalog, journal
// and quartile summaries.
type StatisticHandler struct {
	resolver *service.ResolverService
	journal  *service.JournalService
	quartile *service.QuartileService
}

// NewStatisticHandler creates a new statistic handler
func NewStatisticHandler(resolver *service.ResolverService, journal *service.JournalService, quartile *service.QuartileService) *StatisticHandler {
	return &StatisticHandler{
		resolver: resolver,
		journal:  journal,
		quartile: quartile,
	}
}

// Resolve handles GET /api/v1/statistics
func (h *StatisticHandler) Resolve(c *gin.Context) {
	pattern := models.NamePattern(c.Query("name"))
	if err := pattern.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	statistics, err := h.resolver.Resolve(pattern, c.Query("owner"), c.Query("constraint"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, statistics)
}

// Journal handles GET /api/v1/statistics/journal
func (h *StatisticHandler) Journal(c *gin.Context) {
	namesParam := c.Query("names")
	if namesParam == "" {
		response.BadRequest(c, "missing names parameter")
		return
	}
	var names []models.NamePattern
	for _, name := range strings.Split(namesParam, ",") {
		names = append(names, models.NamePattern(strings.TrimSpace(name)))
	}

	tr, err := parseTimeRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	table, err := h.journal.QueryByName(tr, c.Query("owner"), c.Query("constraint"), names...)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, table)
}

// Quartiles handles GET /api/v1/statistics/quartiles
func (h *StatisticHandler) Quartiles(c *gin.Context) {
	pattern := models.NamePattern(c.Query("name"))
	if err := pattern.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	period, err := models.ParsePeriod(c.DefaultQuery("period", string(models.PeriodDaily)))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tr, err := parseTimeRange(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	statistic, err := h.resolver.ResolveOne(pattern, c.Query("owner"), c.Query("constraint"))
	if err != nil {
		writeError(c, err)
		return
	}

	force := c.Query("force") == "true"
	result, err := h.quartile.Quartiles(statistic.Ref(), period, tr, force)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}
