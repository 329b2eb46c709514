package service

import (
	"fmt"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
)

// ResolverService resolves human-readable statistic name patterns into
// concrete statistics. Resolution is a pure function of the catalog; there
// is no "first match wins" behavior.
type ResolverService struct {
	statRepo *repository.StatisticRepository
}

// NewResolverService creates a new resolver service
func NewResolverService(statRepo *repository.StatisticRepository) *ResolverService {
	return &ResolverService{statRepo: statRepo}
}

// Resolve returns every statistic matching the pattern, optionally narrowed
// by owner and constraint. An empty result is not an error; callers decide
// whether that is fatal.
func (s *ResolverService) Resolve(pattern models.NamePattern, owner, constraint string) ([]models.Statistic, error) {
	if err := pattern.Validate(); err != nil {
		return nil, err
	}

	statistics, err := s.statRepo.Resolve(pattern, owner, constraint)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", pattern, err)
	}
	return statistics, nil
}

// ResolveOne resolves a pattern that must identify exactly one statistic.
// Zero matches is a NotFound error; more than one distinct
// (owner, constraint) candidate is an AmbiguousStatistic error carrying the
// candidates so the caller can re-query with a disambiguator.
func (s *ResolverService) ResolveOne(pattern models.NamePattern, owner, constraint string) (*models.Statistic, error) {
	statistics, err := s.Resolve(pattern, owner, constraint)
	if err != nil {
		return nil, err
	}

	switch len(statistics) {
	case 0:
		return nil, fmt.Errorf("statistic %q: %w", pattern, models.ErrNotFound)
	case 1:
		return &statistics[0], nil
	}
	return nil, &models.AmbiguousStatisticError{Pattern: string(pattern), Candidates: statistics}
}
