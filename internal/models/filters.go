package models

import (
	"fmt"
	"time"
)

// NamePattern is a statistic or activity name pattern using SQL LIKE
// semantics: `%` matches any sequence, `_` a single character. Matching is
// case-sensitive. A plain name with no wildcards is also a valid pattern.
type NamePattern string

// Validate rejects patterns that cannot match anything meaningful, so that
// malformed input is distinguishable from a legitimate empty result.
func (p NamePattern) Validate() error {
	if p == "" {
		return fmt.Errorf("empty name pattern")
	}
	return nil
}

// HasWildcards reports whether the pattern contains LIKE metacharacters.
func (p NamePattern) HasWildcards() bool {
	for _, c := range p {
		if c == '%' || c == '_' {
			return true
		}
	}
	return false
}

// TimeRange is a half-open interval [From, To): inclusive on the lower
// bound, exclusive on the upper, so period boundaries are never counted
// twice. A zero From or To leaves that end unbounded.
type TimeRange struct {
	From time.Time `json:"from,omitempty"`
	To   time.Time `json:"to,omitempty"`
}

// Validate rejects inverted ranges.
func (r TimeRange) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return fmt.Errorf("time range end %s before start %s",
			r.To.Format(time.RFC3339), r.From.Format(time.RFC3339))
	}
	return nil
}

// Bounded reports whether both ends of the range are set.
func (r TimeRange) Bounded() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Contains reports whether t falls within [From, To).
func (r TimeRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// Period is the granularity at which quartile summaries are aggregated.
// The set is fixed; arbitrary caller-defined periods would need their own
// dirty-tracking scheme.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod converts a query parameter into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodMonthly:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q (want daily or monthly)", s)
}

// Key returns the UTC period key containing t, e.g. "2018-02-18" for daily
// or "2018-02" for monthly.
func (p Period) Key(t time.Time) string {
	t = t.UTC()
	if p == PeriodMonthly {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// Start returns the UTC start of the period identified by key.
func (p Period) Start(key string) (time.Time, error) {
	layout := "2006-01-02"
	if p == PeriodMonthly {
		layout = "2006-01"
	}
	t, err := time.ParseInLocation(layout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s period key %q: %w", p, key, err)
	}
	return t, nil
}

// Next returns the start of the period following the one starting at t.
func (p Period) Next(t time.Time) time.Time {
	if p == PeriodMonthly {
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

// Keys returns the continuous sequence of period keys covering [from, to].
// Both bounds are instants inside the first and last period respectively.
func (p Period) Keys(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil
	}
	var keys []string
	start, _ := p.Start(p.Key(from))
	last := p.Key(to)
	for t := start; ; t = p.Next(t) {
		key := p.Key(t)
		keys = append(keys, key)
		if key == last {
			break
		}
	}
	return keys
}
