package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mpendle/fitstore/internal/database"
	"github.com/mpendle/fitstore/internal/models"
)

// StatisticRepository handles database operations for the statistic catalog,
// journal and quartile tables.
type StatisticRepository struct {
	db *sql.DB
}

// NewStatisticRepository creates a new statistic repository
func NewStatisticRepository(db *sql.DB) *StatisticRepository {
	return &StatisticRepository{db: db}
}

// Resolve returns all statistics whose name matches the pattern under LIKE
// semantics, optionally narrowed by owner and constraint. Zero matches is an
// empty result, not an error. Results are ordered by name, owner, constraint
// for determinism.
func (r *StatisticRepository) Resolve(pattern models.NamePattern, owner, constraint string) ([]models.Statistic, error) {
	query := `SELECT id, name, owner, constraint_key, units FROM statistic WHERE name LIKE ?`
	args := []interface{}{string(pattern)}

	if owner != "" {
		query += " AND owner = ?"
		args = append(args, owner)
	}
	if constraint != "" {
		query += " AND constraint_key = ?"
		args = append(args, constraint)
	}
	query += " ORDER BY name, owner, constraint_key"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve statistics: %w", err)
	}
	defer rows.Close()

	var statistics []models.Statistic
	for rows.Next() {
		var s models.Statistic
		if err := rows.Scan(&s.ID, &s.Name, &s.Owner, &s.Constraint, &s.Units); err != nil {
			return nil, fmt.Errorf("failed to scan statistic: %w", err)
		}
		statistics = append(statistics, s)
	}

	return statistics, rows.Err()
}

// JournalRows retrieves all journal rows for the given statistic ids within
// [tr.From, tr.To), ordered by timestamp ascending. Timestamps are truncated
// to second precision.
func (r *StatisticRepository) JournalRows(ids []int64, tr models.TimeRange) ([]models.StatisticJournalRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `SELECT statistic_id, time, value FROM statistic_journal
		WHERE statistic_id IN (` + placeholders + `)`

	args := make([]interface{}, 0, len(ids)+2)
	for _, id := range ids {
		args = append(args, id)
	}
	if !tr.From.IsZero() {
		query += " AND time >= ?"
		args = append(args, tr.From.Unix())
	}
	if !tr.To.IsZero() {
		query += " AND time < ?"
		args = append(args, tr.To.Unix())
	}
	query += " ORDER BY time, statistic_id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal rows: %w", err)
	}
	defer rows.Close()

	var journal []models.StatisticJournalRow
	for rows.Next() {
		var row models.StatisticJournalRow
		var unix int64
		if err := rows.Scan(&row.StatisticID, &unix, &row.Value); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		row.Time = time.Unix(unix, 0).UTC()
		journal = append(journal, row)
	}

	return journal, rows.Err()
}

// Quartile reads one precomputed summary, or nil when none is stored.
func (r *StatisticRepository) Quartile(statisticID int64, period models.Period, periodKey string) (*models.QuartileSummary, error) {
	query := `SELECT sample_count, min, q1, median, q3, max, computed_at
		FROM statistic_quartile
		WHERE statistic_id = ? AND granularity = ? AND period_key = ?`

	var (
		q                     models.QuartileSummary
		min, q1, med, q3, max sql.NullFloat64
		computedAt            int64
	)
	err := r.db.QueryRow(query, statisticID, string(period), periodKey).
		Scan(&q.Count, &min, &q1, &med, &q3, &max, &computedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read quartile: %w", err)
	}

	q.PeriodKey = periodKey
	q.ComputedAt = time.Unix(computedAt, 0).UTC()
	q.Min = nullFloat(min)
	q.Q1 = nullFloat(q1)
	q.Median = nullFloat(med)
	q.Q3 = nullFloat(q3)
	q.Max = nullFloat(max)
	return &q, nil
}

// ReplaceQuartiles atomically replaces the stored summaries for the given
// periods of one statistic. Readers never observe a half-updated period.
func (r *StatisticRepository) ReplaceQuartiles(statisticID int64, period models.Period, summaries []models.QuartileSummary) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		for _, q := range summaries {
			_, err := tx.Exec(`INSERT INTO statistic_quartile
				(statistic_id, granularity, period_key, sample_count, min, q1, median, q3, max, computed_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(statistic_id, granularity, period_key) DO UPDATE SET
					sample_count = excluded.sample_count,
					min = excluded.min,
					q1 = excluded.q1,
					median = excluded.median,
					q3 = excluded.q3,
					max = excluded.max,
					computed_at = excluded.computed_at`,
				statisticID, string(period), q.PeriodKey, q.Count,
				floatArg(q.Min), floatArg(q.Q1), floatArg(q.Median), floatArg(q.Q3), floatArg(q.Max),
				q.ComputedAt.Unix())
			if err != nil {
				return fmt.Errorf("failed to replace quartile %s/%s: %w", period, q.PeriodKey, err)
			}
		}
		return nil
	})
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func floatArg(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
