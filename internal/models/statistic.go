package models

import "time"

// Statistic is a named metric definition. A name alone is not unique;
// identity is the composite (Name, Owner, Constraint).
type Statistic struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Owner      string `json:"owner"`
	Constraint string `json:"constraint,omitempty"`
	Units      string `json:"units,omitempty"`
}

// Ref returns the resolved reference for this statistic.
func (s Statistic) Ref() StatisticRef {
	return StatisticRef{
		ID:         s.ID,
		Name:       s.Name,
		Owner:      s.Owner,
		Constraint: s.Constraint,
	}
}

// Qualified returns the statistic name qualified with owner and constraint,
// used to keep column labels distinct when several statistics share a name.
func (s Statistic) Qualified() string {
	label := s.Name + " (" + s.Owner
	if s.Constraint != "" {
		label += "/" + s.Constraint
	}
	return label + ")"
}

// StatisticRef identifies a single, already-resolved statistic. Query
// components accept refs rather than raw names so that ambiguity is settled
// at resolution time.
type StatisticRef struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Owner      string `json:"owner"`
	Constraint string `json:"constraint,omitempty"`
}

// StatisticJournalRow is one timestamped observation of a statistic.
// Journal rows are append-only; timestamps are second precision.
type StatisticJournalRow struct {
	StatisticID int64     `json:"statisticId"`
	Time        time.Time `json:"time"`
	Value       float64   `json:"value"`
}
