package service

import (
	"fmt"
	"time"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
	"github.com/mpendle/fitstore/internal/spatial"
)

// ActivityService exposes per-activity views: definitions, recorded
// sessions and projected waypoint tracks.
type ActivityService struct {
	actRepo *repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(actRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{actRepo: actRepo}
}

// Activities returns all activity definitions, ordered by name for
// determinism.
func (s *ActivityService) Activities() ([]models.Activity, error) {
	activities, err := s.actRepo.Activities()
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// ActivityJournals returns all recorded sessions of activities matching the
// pattern, ordered by start time ascending. No matches is an empty result.
func (s *ActivityService) ActivityJournals(pattern models.NamePattern) ([]models.ActivityJournal, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}

	journals, err := s.actRepo.JournalsByPattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity journals: %w", err)
	}
	return journals, nil
}

// ActivityWaypoints returns the ordered waypoint sequence of the journal
// uniquely identified by activity name and start time, with planar x/y
// populated by the Mercator projector and cumulative track distance in
// meters. Zero matching journals is a NotFound error, several an
// AmbiguousActivity error. In strict mode any unprojectable sample aborts
// the lookup; otherwise bad samples are returned unprojected and listed in
// the series faults.
func (s *ActivityService) ActivityWaypoints(name models.NamePattern, start time.Time, strict bool) (*models.WaypointSeries, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	journals, err := s.actRepo.JournalsAt(name, start)
	if err != nil {
		return nil, fmt.Errorf("failed to look up activity journal: %w", err)
	}
	switch len(journals) {
	case 0:
		return nil, fmt.Errorf("activity %q at %s: %w",
			name, start.UTC().Format("2006-01-02 15:04:05"), models.ErrNotFound)
	case 1:
	default:
		return nil, &models.AmbiguousActivityError{Pattern: string(name), Candidates: journals}
	}
	journal := journals[0]

	waypoints, err := s.actRepo.Waypoints(journal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load waypoints: %w", err)
	}

	points := make([]spatial.Point, len(waypoints))
	for i, w := range waypoints {
		points[i] = spatial.Point{Lat: w.Latitude, Lon: w.Longitude}
	}

	series := &models.WaypointSeries{Journal: journal, Waypoints: waypoints}
	if strict {
		projected, err := spatial.ProjectAllStrict(points)
		if err != nil {
			return nil, err
		}
		applyProjection(series.Waypoints, projected, nil)
	} else {
		projected, faults := spatial.ProjectAll(points)
		applyProjection(series.Waypoints, projected, faults)
		for _, f := range faults {
			series.Faults = append(series.Faults, *f)
		}
	}

	for i, d := range spatial.CumulativeDistance(points) {
		series.Waypoints[i].Distance = d
	}

	return series, nil
}

func applyProjection(waypoints []models.ActivityWaypoint, projected []spatial.PlanarPoint, faults []*models.OutOfRangeError) {
	failed := make(map[int]bool, len(faults))
	for _, f := range faults {
		failed[f.Index] = true
	}
	for i := range waypoints {
		if failed[i] {
			continue
		}
		waypoints[i].X = projected[i].X
		waypoints[i].Y = projected[i].Y
		waypoints[i].Projected = true
	}
}
