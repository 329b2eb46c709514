package testsupport

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mpendle/fitstore/internal/database"
)

// OpenFixture opens an empty in-memory datastore with the full schema
// applied. The handle is closed when the test finishes.
func OpenFixture(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(database.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open fixture datastore: %v", err)
	}
	// database/sql would otherwise hand each connection its own empty
	// in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("ensure fixture schema: %v", err)
	}
	return db
}

// InsertStatistic seeds one statistic definition and returns its id.
func InsertStatistic(t *testing.T, db *sql.DB, name, owner, constraint, units string) int64 {
	t.Helper()
	res, err := db.Exec(
		`INSERT INTO statistic (name, owner, constraint_key, units) VALUES (?, ?, ?, ?)`,
		name, owner, constraint, units)
	if err != nil {
		t.Fatalf("insert statistic %s: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// InsertJournal seeds one statistic journal row.
func InsertJournal(t *testing.T, db *sql.DB, statisticID int64, at time.Time, value float64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO statistic_journal (statistic_id, time, value) VALUES (?, ?, ?)`,
		statisticID, at.Unix(), value)
	if err != nil {
		t.Fatalf("insert journal row: %v", err)
	}
}

// InsertActivity seeds one activity definition and returns its id.
func InsertActivity(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO activity (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("insert activity %s: %v", name, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// InsertActivityJournal seeds one activity session and returns its id.
func InsertActivityJournal(t *testing.T, db *sql.DB, activityID int64, start time.Time) int64 {
	t.Helper()
	res, err := db.Exec(
		`INSERT INTO activity_journal (activity_id, start_time) VALUES (?, ?)`,
		activityID, start.Unix())
	if err != nil {
		t.Fatalf("insert activity journal: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// InsertWaypoint seeds one activity waypoint.
func InsertWaypoint(t *testing.T, db *sql.DB, journalID int64, at time.Time, lat, lon float64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO activity_waypoint (activity_journal_id, time, latitude, longitude) VALUES (?, ?, ?, ?)`,
		journalID, at.Unix(), lat, lon)
	if err != nil {
		t.Fatalf("insert waypoint: %v", err)
	}
}

// InsertMonitorJournal seeds one monitor recording session.
func InsertMonitorJournal(t *testing.T, db *sql.DB, date, source string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO monitor_journal (date, source) VALUES (?, ?)`, date, source)
	if err != nil {
		t.Fatalf("insert monitor journal %s: %v", date, err)
	}
	id, _ := res.LastInsertId()
	return id
}

// InsertSteps seeds one raw step sample.
func InsertSteps(t *testing.T, db *sql.DB, at time.Time, steps int64) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO monitor_step (time, steps) VALUES (?, ?)`, at.Unix(), steps); err != nil {
		t.Fatalf("insert step sample: %v", err)
	}
}

// InsertHeartRate seeds one raw heart-rate sample.
func InsertHeartRate(t *testing.T, db *sql.DB, at time.Time, bpm int64) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO monitor_heart_rate (time, bpm) VALUES (?, ?)`, at.Unix(), bpm); err != nil {
		t.Fatalf("insert heart rate sample: %v", err)
	}
}
