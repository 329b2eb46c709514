package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
	"github.com/mpendle/fitstore/internal/stats"
)

type quartileKey struct {
	statisticID int64
	period      models.Period
	periodKey   string
}

// QuartileService computes five-number summaries per statistic per period.
// Summaries are cached per (statistic, granularity, period) with an explicit
// dirty set: a write reported through MarkDirty does not trigger eager
// recomputation, it makes subsequent cached reads observably stale until the
// period is recomputed (on force, or on a cache miss). Cache entries are
// replaced whole, never updated in place.
type QuartileService struct {
	statRepo *repository.StatisticRepository

	mu    sync.Mutex
	cache map[quartileKey]*models.QuartileSummary
	dirty map[quartileKey]bool

	now func() time.Time
}

// NewQuartileService creates a new quartile service
func NewQuartileService(statRepo *repository.StatisticRepository) *QuartileService {
	return &QuartileService{
		statRepo: statRepo,
		cache:    make(map[quartileKey]*models.QuartileSummary),
		dirty:    make(map[quartileKey]bool),
		now:      time.Now,
	}
}

// MarkDirty records that a journal row for the statistic was inserted or
// changed at instant t. The periods containing t are invalidated for every
// granularity; nothing is recomputed until the next forced or uncached read.
func (s *QuartileService) MarkDirty(statisticID int64, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, period := range []models.Period{models.PeriodDaily, models.PeriodMonthly} {
		s.dirty[quartileKey{statisticID, period, period.Key(t)}] = true
	}
}

// Quartiles returns the five-number summary of every period in range for
// one resolved statistic. Periods without samples are present with null
// fields, never omitted, so the period axis is continuous. With force set,
// every period is recomputed from the journal; otherwise cached summaries
// are served, flagged stale when a write was reported after they were
// computed.
func (s *QuartileService) Quartiles(ref models.StatisticRef, period models.Period, tr models.TimeRange, force bool) (*models.QuartileResult, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	// Widen the load range to whole periods so edge periods are summarized
	// over their full extent rather than the clipped request range.
	load := tr
	if !load.From.IsZero() {
		load.From, _ = period.Start(period.Key(load.From))
	}
	if !load.To.IsZero() {
		start, _ := period.Start(period.Key(load.To.Add(-time.Second)))
		load.To = period.Next(start)
	}

	rows, err := s.statRepo.JournalRows([]int64{ref.ID}, load)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal for quartiles: %w", err)
	}

	values := make(map[string][]float64)
	for _, row := range rows {
		key := period.Key(row.Time)
		values[key] = append(values[key], row.Value)
	}

	axisFrom, axisTo := tr.From, tr.To
	if !axisTo.IsZero() {
		axisTo = axisTo.Add(-time.Second)
	}
	if len(rows) > 0 {
		if axisFrom.IsZero() {
			axisFrom = rows[0].Time
		}
		if axisTo.IsZero() {
			axisTo = rows[len(rows)-1].Time
		}
	}

	result := &models.QuartileResult{Statistic: ref, Period: period}
	var recomputed []models.QuartileSummary

	for _, key := range period.Keys(axisFrom, axisTo) {
		k := quartileKey{ref.ID, period, key}
		summary, fresh := s.lookup(k, force)
		if summary == nil {
			computed := s.compute(key, values[key])
			s.store(k, computed)
			recomputed = append(recomputed, computed)
			summary, fresh = &computed, true
		}
		out := *summary
		out.Stale = !fresh
		result.Summaries = append(result.Summaries, out)
		if out.Stale {
			result.Stale = true
		}
		if result.AsOf.IsZero() || out.ComputedAt.Before(result.AsOf) {
			result.AsOf = out.ComputedAt
		}
	}

	if len(recomputed) > 0 {
		if err := s.statRepo.ReplaceQuartiles(ref.ID, period, recomputed); err != nil {
			return nil, fmt.Errorf("failed to persist quartiles: %w", err)
		}
	}

	return result, nil
}

// lookup returns a cached or persisted summary for k, or nil when the
// period must be recomputed. fresh is false when the summary predates a
// reported write.
func (s *QuartileService) lookup(k quartileKey, force bool) (*models.QuartileSummary, bool) {
	if force {
		return nil, false
	}

	s.mu.Lock()
	summary, cached := s.cache[k]
	dirty := s.dirty[k]
	s.mu.Unlock()

	if cached {
		return summary, !dirty
	}
	if dirty {
		// Invalidated before it was ever cached this session.
		return nil, false
	}

	persisted, err := s.statRepo.Quartile(k.statisticID, k.period, k.periodKey)
	if err != nil || persisted == nil {
		return nil, false
	}
	s.store(k, *persisted)
	return persisted, true
}

// store atomically replaces the cached entry for k and clears its dirty
// marker.
func (s *QuartileService) store(k quartileKey, summary models.QuartileSummary) {
	s.mu.Lock()
	s.cache[k] = &summary
	delete(s.dirty, k)
	s.mu.Unlock()
}

func (s *QuartileService) compute(periodKey string, values []float64) models.QuartileSummary {
	summary := models.QuartileSummary{
		PeriodKey:  periodKey,
		Count:      len(values),
		ComputedAt: s.now().UTC().Truncate(time.Second),
	}
	if len(values) == 0 {
		return summary
	}

	min, q1, median, q3, max := stats.FiveNumberSummary(values)
	summary.Min = &min
	summary.Q1 = &q1
	summary.Median = &median
	summary.Q3 = &q3
	summary.Max = &max
	return summary
}
