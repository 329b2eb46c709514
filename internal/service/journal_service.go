package service

import (
	"fmt"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
)

// JournalService retrieves raw time-series values for resolved statistics
// and merges multiple series into one time-indexed table.
type JournalService struct {
	statRepo *repository.StatisticRepository
	resolver *ResolverService
}

// NewJournalService creates a new journal service
func NewJournalService(statRepo *repository.StatisticRepository, resolver *ResolverService) *JournalService {
	return &JournalService{statRepo: statRepo, resolver: resolver}
}

// Query retrieves the journal rows of one or more resolved statistics
// within [tr.From, tr.To). When several statistics are requested the result
// is an outer join on timestamp: one row per distinct timestamp appearing
// in any series, with nil for series that have no sample there. Gaps stay
// explicit; nothing is interpolated. The returned table is a snapshot.
func (s *JournalService) Query(refs []models.StatisticRef, tr models.TimeRange) (*models.TimeTable, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no statistics requested")
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	ids := make([]int64, len(refs))
	column := make(map[int64]int, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
		column[ref.ID] = i
	}

	rows, err := s.statRepo.JournalRows(ids, tr)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}

	table := &models.TimeTable{Columns: columnLabels(refs)}
	for _, row := range rows {
		n := len(table.Rows)
		if n == 0 || !table.Rows[n-1].Time.Equal(row.Time) {
			table.Rows = append(table.Rows, models.TimeRow{
				Time:   row.Time,
				Values: make([]*float64, len(refs)),
			})
			n++
		}
		v := row.Value
		table.Rows[n-1].Values[column[row.StatisticID]] = &v
	}

	return table, nil
}

// QueryByName resolves each name to exactly one statistic, then queries.
// Names that resolve to more than one (owner, constraint) pair surface an
// AmbiguousStatistic error; owner and constraint apply to every name.
func (s *JournalService) QueryByName(tr models.TimeRange, owner, constraint string, names ...models.NamePattern) (*models.TimeTable, error) {
	refs := make([]models.StatisticRef, len(names))
	for i, name := range names {
		statistic, err := s.resolver.ResolveOne(name, owner, constraint)
		if err != nil {
			return nil, err
		}
		refs[i] = statistic.Ref()
	}
	return s.Query(refs, tr)
}

// columnLabels derives distinct column labels, qualifying with owner and
// constraint only when several requested statistics share a name.
func columnLabels(refs []models.StatisticRef) []string {
	counts := make(map[string]int, len(refs))
	for _, ref := range refs {
		counts[ref.Name]++
	}

	labels := make([]string, len(refs))
	for i, ref := range refs {
		if counts[ref.Name] > 1 {
			labels[i] = models.Statistic{Name: ref.Name, Owner: ref.Owner, Constraint: ref.Constraint}.Qualified()
		} else {
			labels[i] = ref.Name
		}
	}
	return labels
}
