package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/pkg/response"
)

// timeLayouts are the accepted timestamp formats for query parameters.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// parseTime parses a query timestamp, interpreted as UTC and truncated to
// second precision.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing timestamp parameter")
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// parseTimeRange reads the optional start/end query parameters into a
// half-open [start, end) range.
func parseTimeRange(c *gin.Context) (models.TimeRange, error) {
	var tr models.TimeRange
	if s := c.Query("start"); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return tr, err
		}
		tr.From = t
	}
	if s := c.Query("end"); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return tr, err
		}
		tr.To = t
	}
	return tr, tr.Validate()
}

// writeError maps service errors onto HTTP responses. Ambiguous lookups
// carry their candidate lists so the caller can re-query with a
// disambiguator.
func writeError(c *gin.Context, err error) {
	var ambiguousStat *models.AmbiguousStatisticError
	var ambiguousAct *models.AmbiguousActivityError
	var outOfRange *models.OutOfRangeError

	switch {
	case errors.Is(err, models.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.As(err, &ambiguousStat):
		response.Conflict(c, err.Error(), ambiguousStat.Candidates)
	case errors.As(err, &ambiguousAct):
		response.Conflict(c, err.Error(), ambiguousAct.Candidates)
	case errors.As(err, &outOfRange):
		response.ErrorWithData(c, 422, err.Error(), outOfRange)
	default:
		response.InternalError(c, err.Error())
	}
}
