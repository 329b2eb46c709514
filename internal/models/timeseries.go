package models

import "time"

// TimeTable is an ordered, time-indexed result table: one row per distinct
// timestamp, one value column per requested statistic. Rows are ascending by
// timestamp; a nil value means the series has no sample at that instant.
// Tables are snapshots — they never refresh as new data arrives.
type TimeTable struct {
	Columns []string  `json:"columns"`
	Rows    []TimeRow `json:"rows"`
}

// TimeRow is one row of a TimeTable. Values is parallel to the table's
// Columns slice.
type TimeRow struct {
	Time   time.Time  `json:"time"`
	Values []*float64 `json:"values"`
}
