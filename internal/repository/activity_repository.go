package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mpendle/fitstore/internal/models"
)

// ActivityRepository handles database operations for activities, activity
// journals and waypoints.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Activities returns all activity definitions ordered by name.
func (r *ActivityRepository) Activities() ([]models.Activity, error) {
	rows, err := r.db.Query(`SELECT id, name FROM activity ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// JournalsByPattern returns all journals of activities whose name matches
// the pattern, ordered by start time ascending.
func (r *ActivityRepository) JournalsByPattern(pattern models.NamePattern) ([]models.ActivityJournal, error) {
	query := `SELECT j.id, j.activity_id, a.name, j.start_time, j.notes
		FROM activity_journal j
		JOIN activity a ON a.id = j.activity_id
		WHERE a.name LIKE ?
		ORDER BY j.start_time`

	rows, err := r.db.Query(query, string(pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to query activity journals: %w", err)
	}
	defer rows.Close()

	return scanJournals(rows)
}

// JournalsAt returns the journals of matching activities that start exactly
// at the given instant. The caller decides whether more than one match is
// an ambiguity.
func (r *ActivityRepository) JournalsAt(pattern models.NamePattern, start time.Time) ([]models.ActivityJournal, error) {
	query := `SELECT j.id, j.activity_id, a.name, j.start_time, j.notes
		FROM activity_journal j
		JOIN activity a ON a.id = j.activity_id
		WHERE a.name LIKE ? AND j.start_time = ?
		ORDER BY a.name, j.start_time`

	rows, err := r.db.Query(query, string(pattern), start.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query activity journals: %w", err)
	}
	defer rows.Close()

	return scanJournals(rows)
}

// Waypoints returns the ordered waypoint sequence of one journal. Planar
// coordinates and distances are left for the caller to derive.
func (r *ActivityRepository) Waypoints(journalID int64) ([]models.ActivityWaypoint, error) {
	query := `SELECT time, latitude, longitude FROM activity_waypoint
		WHERE activity_journal_id = ?
		ORDER BY time`

	rows, err := r.db.Query(query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query waypoints: %w", err)
	}
	defer rows.Close()

	var waypoints []models.ActivityWaypoint
	for rows.Next() {
		var w models.ActivityWaypoint
		var unix int64
		if err := rows.Scan(&unix, &w.Latitude, &w.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan waypoint: %w", err)
		}
		w.Time = time.Unix(unix, 0).UTC()
		waypoints = append(waypoints, w)
	}

	return waypoints, rows.Err()
}

func scanJournals(rows *sql.Rows) ([]models.ActivityJournal, error) {
	var journals []models.ActivityJournal
	for rows.Next() {
		var j models.ActivityJournal
		var unix int64
		if err := rows.Scan(&j.ID, &j.ActivityID, &j.ActivityName, &unix, &j.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan activity journal: %w", err)
		}
		j.StartTime = time.Unix(unix, 0).UTC()
		journals = append(journals, j)
	}
	return journals, rows.Err()
}
