package service

import (
	"fmt"
	"time"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
)

// MonitorService exposes per-day monitor recording sessions and their raw
// samples. The raw sequences are rarely needed directly — daily statistic
// aggregates derived from them are the intended consumption path — but they
// are available for drill-down.
type MonitorService struct {
	monRepo *repository.MonitorRepository
}

// NewMonitorService creates a new monitor service
func NewMonitorService(monRepo *repository.MonitorRepository) *MonitorService {
	return &MonitorService{monRepo: monRepo}
}

// MonitorJournals returns all known recording dates, ordered ascending.
// Callers use these to drive subsequent per-date queries.
func (s *MonitorService) MonitorJournals() ([]models.MonitorJournal, error) {
	journals, err := s.monRepo.Journals()
	if err != nil {
		return nil, fmt.Errorf("failed to list monitor journals: %w", err)
	}
	return journals, nil
}

// MonitorSteps returns the raw ordered step samples for one UTC date.
// A date without a recording session is a NotFound error.
func (s *MonitorService) MonitorSteps(date string) ([]models.MonitorStep, error) {
	from, to, err := s.dayWindow(date)
	if err != nil {
		return nil, err
	}

	samples, err := s.monRepo.Steps(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load step samples: %w", err)
	}
	return samples, nil
}

// MonitorHeartRate returns the raw ordered heart-rate samples for one UTC
// date. A date without a recording session is a NotFound error.
func (s *MonitorService) MonitorHeartRate(date string) ([]models.MonitorHeartRate, error) {
	from, to, err := s.dayWindow(date)
	if err != nil {
		return nil, err
	}

	samples, err := s.monRepo.HeartRates(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load heart rate samples: %w", err)
	}
	return samples, nil
}

// dayWindow validates the date, checks a recording session exists and
// returns the [00:00, next 00:00) UTC window.
func (s *MonitorService) dayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}

	journal, err := s.monRepo.JournalByDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to look up monitor journal: %w", err)
	}
	if journal == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("monitor journal %s: %w", date, models.ErrNotFound)
	}

	return day, day.AddDate(0, 0, 1), nil
}
