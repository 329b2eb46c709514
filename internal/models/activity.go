package models

import "time"

// Activity is a type of recorded activity, e.g. "Bike". Static reference
// data.
type Activity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ActivityJournal is one recorded session of an activity, immutable after
// creation.
type ActivityJournal struct {
	ID           int64     `json:"id"`
	ActivityID   int64     `json:"activityId"`
	ActivityName string    `json:"activityName"`
	StartTime    time.Time `json:"startTime"`
	Notes        string    `json:"notes,omitempty"`
}

// ActivityWaypoint is one spatial sample within an activity journal. X and Y
// are planar spherical-Mercator meters derived from latitude/longitude;
// Distance is the cumulative great-circle distance along the track in
// meters. Projected is false for samples whose coordinates could not be
// projected.
type ActivityWaypoint struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Distance  float64   `json:"distance"`
	Projected bool      `json:"projected"`
}

// WaypointSeries is the ordered waypoint sequence of one activity journal.
// Faults lists per-sample projection failures when the lenient transform
// was requested; in strict mode any failure aborts the whole lookup.
type WaypointSeries struct {
	Journal   ActivityJournal   `json:"journal"`
	Waypoints []ActivityWaypoint `json:"waypoints"`
	Faults    []OutOfRangeError `json:"faults,omitempty"`
}
