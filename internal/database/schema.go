package database

import (
	"database/sql"
	"fmt"
)

// schemaDDL creates the datastore tables when absent. Ingestion and version
// migration are the producer's responsibility; this bootstrap only covers a
// fresh or test datastore.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS statistic (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		owner TEXT NOT NULL,
		constraint_key TEXT NOT NULL DEFAULT '',
		units TEXT NOT NULL DEFAULT '',
		UNIQUE(name, owner, constraint_key)
	)`,
	`CREATE TABLE IF NOT EXISTS statistic_journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		statistic_id INTEGER NOT NULL REFERENCES statistic(id),
		time INTEGER NOT NULL,
		value REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_statistic_journal_stat_time
		ON statistic_journal(statistic_id, time)`,
	`CREATE TABLE IF NOT EXISTS statistic_quartile (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		statistic_id INTEGER NOT NULL REFERENCES statistic(id),
		granularity TEXT NOT NULL,
		period_key TEXT NOT NULL,
		sample_count INTEGER NOT NULL,
		min REAL,
		q1 REAL,
		median REAL,
		q3 REAL,
		max REAL,
		computed_at INTEGER NOT NULL,
		UNIQUE(statistic_id, granularity, period_key)
	)`,
	`CREATE TABLE IF NOT EXISTS activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS activity_journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_id INTEGER NOT NULL REFERENCES activity(id),
		start_time INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		UNIQUE(activity_id, start_time)
	)`,
	`CREATE TABLE IF NOT EXISTS activity_waypoint (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_journal_id INTEGER NOT NULL REFERENCES activity_journal(id),
		time INTEGER NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_waypoint_journal_time
		ON activity_waypoint(activity_journal_id, time)`,
	`CREATE TABLE IF NOT EXISTS monitor_journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL UNIQUE,
		source TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS monitor_step (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		time INTEGER NOT NULL,
		steps INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_monitor_step_time ON monitor_step(time)`,
	`CREATE TABLE IF NOT EXISTS monitor_heart_rate (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		time INTEGER NOT NULL,
		bpm INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_monitor_heart_rate_time ON monitor_heart_rate(time)`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
