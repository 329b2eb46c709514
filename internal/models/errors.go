package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a singular lookup that matched nothing. Plural queries
// return empty results instead.
var ErrNotFound = errors.New("not found")

// AmbiguousStatisticError is returned when a singular statistic lookup
// resolves to more than one (owner, constraint) candidate. It carries the
// candidates so the caller can re-query with a disambiguator.
type AmbiguousStatisticError struct {
	Pattern    string      `json:"pattern"`
	Candidates []Statistic `json:"candidates"`
}

func (e *AmbiguousStatisticError) Error() string {
	labels := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		labels[i] = c.Qualified()
	}
	return fmt.Sprintf("statistic %q is ambiguous: %s", e.Pattern, strings.Join(labels, ", "))
}

// AmbiguousActivityError is returned when an activity name plus start time
// identifies more than one journal.
type AmbiguousActivityError struct {
	Pattern    string            `json:"pattern"`
	Candidates []ActivityJournal `json:"candidates"`
}

func (e *AmbiguousActivityError) Error() string {
	labels := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		labels[i] = fmt.Sprintf("%s @ %s", c.ActivityName, c.StartTime.UTC().Format("2006-01-02 15:04:05"))
	}
	return fmt.Sprintf("activity %q is ambiguous: %s", e.Pattern, strings.Join(labels, ", "))
}

// OutOfRangeError reports a geographic coordinate outside the projection
// domain, attributable to a specific sample index.
type OutOfRangeError struct {
	Index    int     `json:"index"`
	Latitude float64 `json:"latitude"`
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("latitude %v at index %d is outside the projectable range (-90, 90)", e.Latitude, e.Index)
}
