package models

import "time"

// QuartileSummary is the five-number summary of one period's journal values.
// A period with no samples is present with Count zero and nil fields, so
// box-plot consumers always see a continuous period axis.
type QuartileSummary struct {
	PeriodKey  string    `json:"period"`
	Count      int       `json:"count"`
	Min        *float64  `json:"min,omitempty"`
	Q1         *float64  `json:"q1,omitempty"`
	Median     *float64  `json:"median,omitempty"`
	Q3         *float64  `json:"q3,omitempty"`
	Max        *float64  `json:"max,omitempty"`
	ComputedAt time.Time `json:"computedAt"`
	// Stale marks a summary served from cache after a write was reported
	// for its period. Not an error; force recomputation for exactness.
	Stale bool `json:"stale,omitempty"`
}

// QuartileResult carries the per-period summaries for one statistic along
// with cache metadata for the whole answer.
type QuartileResult struct {
	Statistic StatisticRef      `json:"statistic"`
	Period    Period            `json:"granularity"`
	Summaries []QuartileSummary `json:"summaries"`
	// AsOf is the oldest computation time among the returned summaries.
	AsOf  time.Time `json:"asOf"`
	Stale bool      `json:"stale"`
}
