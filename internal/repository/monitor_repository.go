package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mpendle/fitstore/internal/models"
)

// MonitorRepository handles database operations for monitor recording
// sessions and their raw samples.
type MonitorRepository struct {
	db *sql.DB
}

// NewMonitorRepository creates a new monitor repository
func NewMonitorRepository(db *sql.DB) *MonitorRepository {
	return &MonitorRepository{db: db}
}

// Journals returns all monitor journals ordered by date ascending.
func (r *MonitorRepository) Journals() ([]models.MonitorJournal, error) {
	rows, err := r.db.Query(`SELECT id, date, source FROM monitor_journal ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monitor journals: %w", err)
	}
	defer rows.Close()

	var journals []models.MonitorJournal
	for rows.Next() {
		var j models.MonitorJournal
		if err := rows.Scan(&j.ID, &j.Date, &j.Source); err != nil {
			return nil, fmt.Errorf("failed to scan monitor journal: %w", err)
		}
		journals = append(journals, j)
	}

	return journals, rows.Err()
}

// JournalByDate returns the journal for one date, or nil when the date has
// no recording session.
func (r *MonitorRepository) JournalByDate(date string) (*models.MonitorJournal, error) {
	var j models.MonitorJournal
	err := r.db.QueryRow(`SELECT id, date, source FROM monitor_journal WHERE date = ?`, date).
		Scan(&j.ID, &j.Date, &j.Source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read monitor journal: %w", err)
	}
	return &j, nil
}

// Steps returns the raw step samples within [from, to), ordered by time.
func (r *MonitorRepository) Steps(from, to time.Time) ([]models.MonitorStep, error) {
	rows, err := r.db.Query(
		`SELECT time, steps FROM monitor_step WHERE time >= ? AND time < ? ORDER BY time`,
		from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query monitor steps: %w", err)
	}
	defer rows.Close()

	var samples []models.MonitorStep
	for rows.Next() {
		var s models.MonitorStep
		var unix int64
		if err := rows.Scan(&unix, &s.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan monitor step: %w", err)
		}
		s.Time = time.Unix(unix, 0).UTC()
		samples = append(samples, s)
	}

	return samples, rows.Err()
}

// HeartRates returns the raw heart-rate samples within [from, to), ordered
// by time.
func (r *MonitorRepository) HeartRates(from, to time.Time) ([]models.MonitorHeartRate, error) {
	rows, err := r.db.Query(
		`SELECT time, bpm FROM monitor_heart_rate WHERE time >= ? AND time < ? ORDER BY time`,
		from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query heart rate samples: %w", err)
	}
	defer rows.Close()

	var samples []models.MonitorHeartRate
	for rows.Next() {
		var s models.MonitorHeartRate
		var unix int64
		if err := rows.Scan(&unix, &s.BPM); err != nil {
			return nil, fmt.Errorf("failed to scan heart rate sample: %w", err)
		}
		s.Time = time.Unix(unix, 0).UTC()
		samples = append(samples, s)
	}

	return samples, rows.Err()
}
